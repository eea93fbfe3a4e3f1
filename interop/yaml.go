package interop

import (
	"github.com/goccy/go-yaml"

	"github.com/tomlworks/tomledit/tree"
)

// MarshalYAML renders a value as YAML. Formatting trivia is not carried
// over.
func MarshalYAML(v *tree.Value) ([]byte, error) {
	return yaml.Marshal(ToAny(v))
}

// UnmarshalYAML lifts a YAML document into a value tree.
func UnmarshalYAML(data []byte) (*tree.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromAny(raw)
}
