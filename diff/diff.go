// Package diff reports differences between document values, both as
// rendered text and as table key changes.
package diff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tomlworks/tomledit/debug"
	"github.com/tomlworks/tomledit/tree"
)

// Render produces a human-readable diff between two pieces of source text.
func Render(before, after string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(before, after, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if debug.Diff() {
		debug.Logf("diff produced %d segments\n", len(diffs))
	}
	return diffCfg.DiffPrettyText(diffs)
}

// Values renders both values and diffs the results.
func Values(a, b *tree.Value) string {
	return Render(a.String(), b.String())
}

// KeyChanges is the key-level difference between two tables.
type KeyChanges struct {
	Removed []string
	Added   []string
	Common  []string
}

// Keys diffs the ordered key sequences of two tables, aligning common keys
// the way a text diff aligns characters.
func Keys(from, to tree.TableLike) KeyChanges {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, from.Keys())
	toRunes := mapKeysTo(keyMap, runeMap, to.Keys())
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var kc KeyChanges
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			switch d.Type {
			case diffpatch.DiffDelete:
				kc.Removed = append(kc.Removed, runeMap[r])
			case diffpatch.DiffInsert:
				kc.Added = append(kc.Added, runeMap[r])
			case diffpatch.DiffEqual:
				kc.Common = append(kc.Common, runeMap[r])
			}
		}
	}
	return kc
}

func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}
