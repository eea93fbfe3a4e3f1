// Package eval evaluates expressions embedded in document values against an
// environment of variables.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tomlworks/tomledit/debug"
	"github.com/tomlworks/tomledit/interop"
	"github.com/tomlworks/tomledit/tree"
)

// Env is the variable environment expressions are evaluated against.
type Env map[string]any

// Eval compiles and runs a single expression and lifts the result into a
// value.
func Eval(input string, env Env) (*tree.Value, error) {
	x, err := evalAny(input, env)
	if err != nil {
		return nil, err
	}
	v, err := interop.FromAny(x)
	if err != nil {
		return nil, fmt.Errorf("could not translate evaluation result: %w", err)
	}
	return v, nil
}

func evalAny(input string, env Env) (any, error) {
	program, err := expr.Compile(input)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	x, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, x)
	}
	return x, nil
}

// GetRaw extracts the expression from a .[expr] reference. It returns ""
// when v is not in that form.
func GetRaw(v string) string {
	if !isRawRef(v) {
		return ""
	}
	return v[2 : len(v)-1]
}

func isRawRef(v string) bool {
	return len(v) > 3 && v[0] == '.' && v[1] == '[' && v[len(v)-1] == ']'
}
