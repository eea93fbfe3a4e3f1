package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomlworks/tomledit/format"
	"github.com/tomlworks/tomledit/interop"
)

type ConvertParams struct {
	Input string
	From  string
	To    string
}

var convertParams *ConvertParams

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a value between TOML, JSON, and YAML",
	Long: "convert decodes the input in one format and re-encodes it in another. " +
		"When --from is omitted the input file suffix picks the format.",
	RunE: convertRun,
}

func init() {
	convertParams = &ConvertParams{}
	convertCmd.Flags().StringVarP(&convertParams.Input, "input", "i", "", "input file path ('-' for stdin)")
	convertCmd.Flags().StringVarP(&convertParams.From, "from", "f", "", "input format (toml|json|yaml)")
	convertCmd.Flags().StringVarP(&convertParams.To, "to", "t", "json", "output format (toml|json|yaml)")
}

func convertRun(cmd *cobra.Command, args []string) error {
	data, err := readInput(convertParams.Input)
	if err != nil {
		return err
	}
	from, err := pickFormat(convertParams.From, convertParams.Input)
	if err != nil {
		return err
	}
	to, err := format.ParseFormat(convertParams.To)
	if err != nil {
		return err
	}
	v, err := interop.Decode(data, from)
	if err != nil {
		return err
	}
	out, err := interop.Encode(v, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strings.TrimRight(string(out), "\n"))
	return nil
}

func pickFormat(flag, path string) (format.Format, error) {
	if flag != "" {
		return format.ParseFormat(flag)
	}
	suffix := filepath.Ext(path)
	for _, f := range format.AllFormats() {
		if f.Suffix() == suffix {
			return f, nil
		}
	}
	return format.TOMLFormat, nil
}
