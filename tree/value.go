package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomlworks/tomledit/datetime"
	"github.com/tomlworks/tomledit/token"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	StringKind ValueKind = iota
	IntegerKind
	FloatKind
	BooleanKind
	DatetimeKind
	ArrayKind
	InlineTableKind
)

var valueKindNames = map[ValueKind]string{
	StringKind:      "string",
	IntegerKind:     "integer",
	FloatKind:       "float",
	BooleanKind:     "boolean",
	DatetimeKind:    "datetime",
	ArrayKind:       "array",
	InlineTableKind: "inline table",
}

func (k ValueKind) String() string {
	if s, ok := valueKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Default trivia applied by the encoder when a node carries none.
var (
	// DefaultValueDecor surrounds a value on the right side of an assignment.
	DefaultValueDecor = [2]string{" ", ""}
	// DefaultTrailingValueDecor surrounds the last value of an inline table.
	DefaultTrailingValueDecor = [2]string{" ", " "}
	// DefaultLeadingValueDecor surrounds the first array element.
	DefaultLeadingValueDecor = [2]string{"", ""}
)

// Value is an inline TOML value: a scalar, an array, or an inline table.
// Exactly one payload field is populated, selected by kind.
type Value struct {
	kind ValueKind
	str  *Formatted[string]
	i    *Formatted[int64]
	f    *Formatted[float64]
	b    *Formatted[bool]
	dt   *Formatted[datetime.Datetime]
	arr  *Array
	tbl  *InlineTable
}

func FromString(s string) *Value {
	return &Value{kind: StringKind, str: NewFormatted(s)}
}

func FromInteger(i int64) *Value {
	return &Value{kind: IntegerKind, i: NewFormatted(i)}
}

func FromFloat(f float64) *Value {
	return &Value{kind: FloatKind, f: NewFormatted(f)}
}

func FromBool(b bool) *Value {
	return &Value{kind: BooleanKind, b: NewFormatted(b)}
}

func FromDatetime(dt datetime.Datetime) *Value {
	return &Value{kind: DatetimeKind, dt: NewFormatted(dt)}
}

func FromDate(d datetime.Date) *Value {
	return FromDatetime(datetime.FromDate(d))
}

func FromTime(t datetime.Time) *Value {
	return FromDatetime(datetime.FromTime(t))
}

func FromArray(a *Array) *Value {
	if a == nil {
		a = NewArray()
	}
	return &Value{kind: ArrayKind, arr: a}
}

func FromInlineTable(t *InlineTable) *Value {
	if t == nil {
		t = NewInlineTable()
	}
	return &Value{kind: InlineTableKind, tbl: t}
}

// ValueOf converts a native Go value. It accepts the scalar kinds (with the
// usual integer widths), datetime values, *Value passthrough, *Array,
// *InlineTable, []any, and map[string]any. It panics on anything else.
func ValueOf(v any) *Value {
	switch x := v.(type) {
	case *Value:
		return x
	case string:
		return FromString(x)
	case int:
		return FromInteger(int64(x))
	case int8:
		return FromInteger(int64(x))
	case int16:
		return FromInteger(int64(x))
	case int32:
		return FromInteger(int64(x))
	case int64:
		return FromInteger(x)
	case uint:
		return FromInteger(int64(x))
	case uint8:
		return FromInteger(int64(x))
	case uint16:
		return FromInteger(int64(x))
	case uint32:
		return FromInteger(int64(x))
	case float32:
		return FromFloat(float64(x))
	case float64:
		return FromFloat(x)
	case bool:
		return FromBool(x)
	case datetime.Datetime:
		return FromDatetime(x)
	case datetime.Date:
		return FromDate(x)
	case datetime.Time:
		return FromTime(x)
	case *Array:
		return FromArray(x)
	case *InlineTable:
		return FromInlineTable(x)
	case []any:
		a := NewArray()
		for _, e := range x {
			a.Push(e)
		}
		return FromArray(a)
	case map[string]any:
		t := NewInlineTable()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.Insert(k, x[k])
		}
		return FromInlineTable(t)
	default:
		panic(fmt.Sprintf("tree: cannot build a value from %T", v))
	}
}

// CollectValues builds an array value from a slice of convertible elements.
func CollectValues[T any](elems []T) *Value {
	a := NewArray()
	for _, e := range elems {
		a.Push(e)
	}
	return FromArray(a)
}

// KV is one key/value entry for CollectPairs.
type KV struct {
	Key string
	Val any
}

// CollectPairs builds an inline table value from ordered entries.
func CollectPairs(kvs []KV) *Value {
	t := NewInlineTable()
	for _, kv := range kvs {
		t.Insert(kv.Key, kv.Val)
	}
	return FromInlineTable(t)
}

// Kind returns the variant tag.
func (v *Value) Kind() ValueKind {
	return v.kind
}

// TypeName names the variant for error messages.
func (v *Value) TypeName() string {
	return v.kind.String()
}

func (v *Value) IsString() bool      { return v.kind == StringKind }
func (v *Value) IsInteger() bool     { return v.kind == IntegerKind }
func (v *Value) IsFloat() bool       { return v.kind == FloatKind }
func (v *Value) IsBool() bool        { return v.kind == BooleanKind }
func (v *Value) IsDatetime() bool    { return v.kind == DatetimeKind }
func (v *Value) IsArray() bool       { return v.kind == ArrayKind }
func (v *Value) IsInlineTable() bool { return v.kind == InlineTableKind }

func (v *Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.str.Value(), true
}

func (v *Value) AsInteger() (int64, bool) {
	if v.kind != IntegerKind {
		return 0, false
	}
	return v.i.Value(), true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.kind != FloatKind {
		return 0, false
	}
	return v.f.Value(), true
}

func (v *Value) AsBool() (bool, bool) {
	if v.kind != BooleanKind {
		return false, false
	}
	return v.b.Value(), true
}

func (v *Value) AsDatetime() (datetime.Datetime, bool) {
	if v.kind != DatetimeKind {
		return datetime.Datetime{}, false
	}
	return v.dt.Value(), true
}

// AsArray returns the array payload, or nil for other kinds.
func (v *Value) AsArray() *Array {
	if v.kind != ArrayKind {
		return nil
	}
	return v.arr
}

// AsInlineTable returns the inline table payload, or nil for other kinds.
func (v *Value) AsInlineTable() *InlineTable {
	if v.kind != InlineTableKind {
		return nil
	}
	return v.tbl
}

// FormattedString returns the string payload with its rendering, or nil.
func (v *Value) FormattedString() *Formatted[string] {
	if v.kind != StringKind {
		return nil
	}
	return v.str
}

// FormattedInteger returns the integer payload with its rendering, or nil.
func (v *Value) FormattedInteger() *Formatted[int64] {
	if v.kind != IntegerKind {
		return nil
	}
	return v.i
}

// FormattedFloat returns the float payload with its rendering, or nil.
func (v *Value) FormattedFloat() *Formatted[float64] {
	if v.kind != FloatKind {
		return nil
	}
	return v.f
}

// FormattedBool returns the boolean payload with its rendering, or nil.
func (v *Value) FormattedBool() *Formatted[bool] {
	if v.kind != BooleanKind {
		return nil
	}
	return v.b
}

// FormattedDatetime returns the datetime payload with its rendering, or nil.
func (v *Value) FormattedDatetime() *Formatted[datetime.Datetime] {
	if v.kind != DatetimeKind {
		return nil
	}
	return v.dt
}

// Decor returns the trivia around the value, whichever variant holds it.
func (v *Value) Decor() *Decor {
	switch v.kind {
	case StringKind:
		return v.str.Decor()
	case IntegerKind:
		return v.i.Decor()
	case FloatKind:
		return v.f.Decor()
	case BooleanKind:
		return v.b.Decor()
	case DatetimeKind:
		return v.dt.Decor()
	case ArrayKind:
		return v.arr.Decor()
	default:
		return v.tbl.Decor()
	}
}

// Decorate overwrites both trivia sides.
func (v *Value) Decorate(prefix, suffix string) {
	d := v.Decor()
	d.SetPrefix(prefix)
	d.SetSuffix(suffix)
}

// Decorated overwrites both trivia sides and returns the value.
func (v *Value) Decorated(prefix, suffix string) *Value {
	v.Decorate(prefix, suffix)
	return v
}

// Span reports where the value came from in the original input.
func (v *Value) Span() *token.Span {
	switch v.kind {
	case StringKind:
		return v.str.Span()
	case IntegerKind:
		return v.i.Span()
	case FloatKind:
		return v.f.Span()
	case BooleanKind:
		return v.b.Span()
	case DatetimeKind:
		return v.dt.Span()
	case ArrayKind:
		return v.arr.Span()
	default:
		return v.tbl.Span()
	}
}

// Despan resolves every recorded span against the input it was parsed from.
func (v *Value) Despan(input string) {
	switch v.kind {
	case StringKind:
		v.str.Despan(input)
	case IntegerKind:
		v.i.Despan(input)
	case FloatKind:
		v.f.Despan(input)
	case BooleanKind:
		v.b.Despan(input)
	case DatetimeKind:
		v.dt.Despan(input)
	case ArrayKind:
		v.arr.Despan(input)
	default:
		v.tbl.Despan(input)
	}
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	c := &Value{kind: v.kind}
	switch v.kind {
	case StringKind:
		c.str = v.str.clone()
	case IntegerKind:
		c.i = v.i.clone()
	case FloatKind:
		c.f = v.f.clone()
	case BooleanKind:
		c.b = v.b.clone()
	case DatetimeKind:
		c.dt = v.dt.clone()
	case ArrayKind:
		c.arr = v.arr.clone()
	default:
		c.tbl = v.tbl.clone()
	}
	return c
}

// String renders the value as source text, emitting recorded trivia and
// falling back to bare defaults where none is set.
func (v *Value) String() string {
	var b strings.Builder
	encodeValue(&b, v, DefaultLeadingValueDecor)
	return b.String()
}
