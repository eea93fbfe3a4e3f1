package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomlworks/tomledit/diff"
	"github.com/tomlworks/tomledit/tree"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Diff two files holding TOML values",
	Long: "diff parses both files as TOML values and prints a text diff of " +
		"their renderings, plus key changes when both are tables.",
	Args: cobra.ExactArgs(2),
	RunE: diffRun,
}

func diffRun(cmd *cobra.Command, args []string) error {
	before, err := readInput(args[0])
	if err != nil {
		return err
	}
	after, err := readInput(args[1])
	if err != nil {
		return err
	}
	a, err := tree.ParseValue(string(before))
	if err != nil {
		return err
	}
	b, err := tree.ParseValue(string(after))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), diff.Values(a, b))
	fmt.Fprintln(cmd.OutOrStdout())
	at, bt := a.AsInlineTable(), b.AsInlineTable()
	if at == nil || bt == nil {
		return nil
	}
	kc := diff.Keys(at, bt)
	for _, k := range kc.Removed {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", k)
	}
	for _, k := range kc.Added {
		fmt.Fprintf(cmd.OutOrStdout(), "+ %s\n", k)
	}
	return nil
}
