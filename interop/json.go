package interop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tomlworks/tomledit/debug"
	"github.com/tomlworks/tomledit/tree"
)

type jsonNumber = json.Number

// MarshalJSON renders a value as JSON. Formatting trivia is not carried
// over.
func MarshalJSON(v *tree.Value) ([]byte, error) {
	return json.Marshal(ToAny(v))
}

// UnmarshalJSON lifts a JSON document into a value tree. Numbers become
// integers when they read as one, floats otherwise.
func UnmarshalJSON(data []byte) (*tree.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if debug.Interop() {
		debug.Logf("json decode: %v\n", raw)
	}
	return FromAny(raw)
}

func numberValue(n json.Number) (*tree.Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return tree.FromInteger(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrConvert, n.String())
	}
	return tree.FromFloat(f), nil
}
