package interop

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tomlworks/tomledit/debug"
	"github.com/tomlworks/tomledit/tree"
)

// ApplyPatch applies an RFC 6902 JSON patch to a value tree by lowering it
// to JSON, patching, and lifting the result back. The patched tree renders
// with default formatting.
func ApplyPatch(v *tree.Value, patch []byte) (*tree.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	doc, err := MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	if debug.Interop() {
		debug.Logf("patching %s with %s\n", string(doc), string(patch))
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, err
	}
	return UnmarshalJSON(out)
}
