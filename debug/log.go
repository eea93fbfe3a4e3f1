package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Stringish is anything that can render itself as source text, like a value
// or item from the document tree.
type Stringish interface {
	String() string
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case Stringish:
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
