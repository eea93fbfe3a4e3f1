package interop

import (
	"github.com/tomlworks/tomledit/format"
	"github.com/tomlworks/tomledit/tree"
)

// Decode reads a value from data in the given format.
func Decode(data []byte, f format.Format) (*tree.Value, error) {
	switch {
	case f.IsTOML():
		return tree.ParseValue(string(data))
	case f.IsJSON():
		return UnmarshalJSON(data)
	default:
		return UnmarshalYAML(data)
	}
}

// Encode writes a value in the given format. TOML output keeps the value's
// recorded formatting; the other formats render canonically.
func Encode(v *tree.Value, f format.Format) ([]byte, error) {
	switch {
	case f.IsTOML():
		return []byte(v.String()), nil
	case f.IsJSON():
		return MarshalJSON(v)
	default:
		return MarshalYAML(v)
	}
}
