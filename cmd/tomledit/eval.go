package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tomlworks/tomledit/eval"
	"github.com/tomlworks/tomledit/tree"
)

type EvalParams struct {
	Input string
	Env   []string
	Color bool
}

var evalParams *EvalParams

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate an expression, or expand expressions in a TOML value",
	Long: "eval runs an expression against --env variables and prints the " +
		"resulting TOML value. With --input it parses the file as a TOML value " +
		"and expands the .[expr] and $[...] strings inside it in place.",
	RunE: evalRun,
}

func init() {
	evalParams = &EvalParams{}
	evalCmd.Flags().StringVarP(&evalParams.Input, "input", "i", "", "input file path ('-' for stdin)")
	evalCmd.Flags().StringArrayVarP(&evalParams.Env, "env", "e", nil, "environment entry key=value (repeatable)")
	evalCmd.Flags().BoolVarP(&evalParams.Color, "color", "c", isatty.IsTerminal(os.Stdout.Fd()), "colorize output")
}

func evalRun(cmd *cobra.Command, args []string) error {
	env, err := parseEnv(evalParams.Env)
	if err != nil {
		return err
	}
	var v *tree.Value
	switch {
	case len(args) == 1:
		v, err = eval.Eval(args[0], env)
		if err != nil {
			return err
		}
	case len(args) == 0 && evalParams.Input != "":
		data, err := readInput(evalParams.Input)
		if err != nil {
			return err
		}
		v, err = tree.ParseValue(string(data))
		if err != nil {
			return err
		}
		if err := eval.ExpandValue(v, env); err != nil {
			return err
		}
	default:
		return fmt.Errorf("eval takes one expression or --input, got %d args", len(args))
	}
	return printValue(cmd, v, evalParams.Color)
}

func printValue(cmd *cobra.Command, v *tree.Value, colorize bool) error {
	var opts []tree.EncodeOption
	if colorize {
		opts = append(opts, tree.EncodeColors(tree.NewColors()))
	}
	it := tree.ValueItem(v)
	if err := tree.Encode(it, cmd.OutOrStdout(), opts...); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// parseEnv turns key=value flags into an evaluation environment. Values
// that parse as TOML scalars keep their type; anything else stays a string.
func parseEnv(entries []string) (eval.Env, error) {
	env := eval.Env{}
	for _, e := range entries {
		k, val, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("bad env entry %q, want key=value", e)
		}
		if v, err := tree.ParseValue(val); err == nil && !v.IsInlineTable() {
			var x any
			switch {
			case v.IsString():
				x, _ = v.AsString()
			case v.IsInteger():
				x, _ = v.AsInteger()
			case v.IsFloat():
				x, _ = v.AsFloat()
			case v.IsBool():
				x, _ = v.AsBool()
			default:
				x = val
			}
			env[k] = x
			continue
		}
		env[k] = val
	}
	return env, nil
}
