package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomledit",
	Short: "tomledit inspects and rewrites TOML values without losing their formatting.",
	Long: "tomledit parses TOML values into a format-preserving tree, so checks, " +
		"conversions, and edits keep the whitespace and comments of the input.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(diffCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
