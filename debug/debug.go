package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Eval    bool
	Interop bool
	Diff    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOMLEDIT_DEBUG_PARSE")
	d.Eval = boolEnv("TOMLEDIT_DEBUG_EVAL")
	d.Interop = boolEnv("TOMLEDIT_DEBUG_INTEROP")
	d.Diff = boolEnv("TOMLEDIT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Interop() bool {
	return d.Interop
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
