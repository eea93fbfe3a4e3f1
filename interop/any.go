// Package interop bridges the document tree to plain Go values and to the
// JSON and YAML ecosystems.
package interop

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomlworks/tomledit/datetime"
	"github.com/tomlworks/tomledit/tree"
)

var ErrConvert = errors.New("cannot convert")

// ToAny lowers a value to plain Go data: scalars, []any, and
// map[string]any. Date-times lower to their source text.
func ToAny(v *tree.Value) any {
	switch v.Kind() {
	case tree.StringKind:
		s, _ := v.AsString()
		return s
	case tree.IntegerKind:
		i, _ := v.AsInteger()
		return i
	case tree.FloatKind:
		f, _ := v.AsFloat()
		return f
	case tree.BooleanKind:
		b, _ := v.AsBool()
		return b
	case tree.DatetimeKind:
		dt, _ := v.AsDatetime()
		return dt.String()
	case tree.ArrayKind:
		arr := v.AsArray()
		out := make([]any, 0, arr.Len())
		for _, el := range arr.Values() {
			out = append(out, ToAny(el))
		}
		return out
	default:
		tbl := v.AsInlineTable()
		out := make(map[string]any, tbl.Len())
		for _, k := range tbl.Keys() {
			out[k] = ToAny(tbl.Get(k))
		}
		return out
	}
}

// ItemToAny lowers any item form, collapsing tables and arrays of tables to
// their inline shapes first.
func ItemToAny(it *tree.Item) any {
	if it.IsNone() {
		return nil
	}
	v, _ := it.Clone().IntoValue()
	return ToAny(v)
}

// FromAny lifts plain Go data into a value tree. Map keys are ordered so the
// result is deterministic. Strings that read as a TOML date-time become
// date-time values.
func FromAny(v any) (*tree.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null has no value form", ErrConvert)
	case string:
		if looksLikeDatetime(x) {
			if dt, err := datetime.Parse(x); err == nil {
				return tree.FromDatetime(dt), nil
			}
		}
		return tree.FromString(x), nil
	case bool:
		return tree.FromBool(x), nil
	case int:
		return tree.FromInteger(int64(x)), nil
	case int64:
		return tree.FromInteger(x), nil
	case uint64:
		return tree.FromInteger(int64(x)), nil
	case float64:
		return tree.FromFloat(x), nil
	case jsonNumber:
		return numberValue(x)
	case []any:
		arr := tree.NewArray()
		for _, el := range x {
			ev, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			arr.Push(ev)
		}
		return tree.FromArray(arr), nil
	case map[string]any:
		tbl := tree.NewInlineTable()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ev, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			tbl.Insert(k, ev)
		}
		return tree.FromInlineTable(tbl), nil
	case map[any]any:
		tbl := tree.NewInlineTable()
		keys := make([]string, 0, len(x))
		for k := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v", ErrConvert, k)
			}
			keys = append(keys, ks)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ev, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			tbl.Insert(k, ev)
		}
		return tree.FromInlineTable(tbl), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrConvert, v)
	}
}

func looksLikeDatetime(s string) bool {
	if len(s) < 8 {
		return false
	}
	if s[4] == '-' && s[7] == '-' {
		return true
	}
	return s[2] == ':' && s[5] == ':'
}
