package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomlworks/tomledit/tree"
)

type CheckParams struct {
	Input string
}

var checkParams *CheckParams

var checkCmd = &cobra.Command{
	Use:   "check [value...]",
	Short: "Parse TOML values and report errors",
	Long: "check parses each argument (or the input file) as a TOML value and " +
		"reports the first parse error, with its offset and line.",
	RunE: checkRun,
}

func init() {
	checkParams = &CheckParams{}
	checkCmd.Flags().StringVarP(&checkParams.Input, "input", "i", "", "input file path ('-' for stdin)")
}

func checkRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		data, err := readInput(checkParams.Input)
		if err != nil {
			return err
		}
		args = []string{string(data)}
	}
	for _, arg := range args {
		v, err := tree.ParseValue(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", v.TypeName(), strings.TrimSpace(v.String()))
	}
	return nil
}
