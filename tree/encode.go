package tree

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomlworks/tomledit/token"
)

// DefaultKeyDecor surrounds a key on the left side of an assignment.
var DefaultKeyDecor = [2]string{"", " "}

// DefaultInlineKeyDecor surrounds a key inside an inline table.
var DefaultInlineKeyDecor = [2]string{" ", " "}

type EncState struct {
	color func(ValueKind, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.color = c.Color }
}

func (es *EncState) paint(k ValueKind, a ColorAttr, s string) string {
	if es == nil || es.color == nil {
		return s
	}
	return es.color(k, a, s)
}

// Encode renders an item as source text. A value renders inline; a table or
// array of tables renders as header sections with their bodies.
func Encode(it *Item, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var b strings.Builder
	switch it.kind {
	case ItemValue:
		encodeValueState(&b, it.value, DefaultLeadingValueDecor, es)
	case ItemTable:
		encodeTableState(&b, it.table, nil, es)
	case ItemArrayOfTables:
		for _, el := range it.tables.values {
			encodeTableState(&b, el.table, nil, es)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func encodeValue(b *strings.Builder, v *Value, def [2]string) {
	encodeValueState(b, v, def, nil)
}

func encodeValueState(b *strings.Builder, v *Value, def [2]string, es *EncState) {
	d := v.Decor()
	b.WriteString(d.prefixOr(def[0]))
	switch v.kind {
	case StringKind:
		b.WriteString(es.paint(StringKind, ValueColor,
			reprText(v.str.repr, func() string { return token.Quote(v.str.value) })))
	case IntegerKind:
		b.WriteString(es.paint(IntegerKind, ValueColor,
			reprText(v.i.repr, func() string { return strconv.FormatInt(v.i.value, 10) })))
	case FloatKind:
		b.WriteString(es.paint(FloatKind, ValueColor,
			reprText(v.f.repr, func() string { return floatRepr(v.f.value) })))
	case BooleanKind:
		b.WriteString(es.paint(BooleanKind, ValueColor,
			reprText(v.b.repr, func() string { return strconv.FormatBool(v.b.value) })))
	case DatetimeKind:
		b.WriteString(es.paint(DatetimeKind, ValueColor,
			reprText(v.dt.repr, func() string { return v.dt.value.String() })))
	case ArrayKind:
		encodeArray(b, v.arr, es)
	case InlineTableKind:
		encodeInlineTable(b, v.tbl, es)
	}
	b.WriteString(d.suffixOr(def[1]))
}

func encodeArray(b *strings.Builder, a *Array, es *EncState) {
	b.WriteString(es.paint(ArrayKind, SepColor, "["))
	for i, it := range a.values {
		if i > 0 {
			b.WriteString(es.paint(ArrayKind, SepColor, ","))
		}
		def := DefaultValueDecor
		if i == 0 {
			def = DefaultLeadingValueDecor
		}
		encodeValueState(b, it.value, def, es)
	}
	if a.trailingComma && len(a.values) > 0 {
		b.WriteString(es.paint(ArrayKind, SepColor, ","))
	}
	b.WriteString(a.trailing.OrDefault(""))
	b.WriteString(es.paint(ArrayKind, SepColor, "]"))
}

func encodeInlineTable(b *strings.Builder, t *InlineTable, es *EncState) {
	b.WriteString(es.paint(InlineTableKind, SepColor, "{"))
	var kvs []flatKV
	t.items.appendValues(nil, &kvs)
	if len(kvs) == 0 {
		b.WriteString(t.preamble.OrDefault(""))
	}
	for i, kv := range kvs {
		if i > 0 {
			b.WriteString(es.paint(InlineTableKind, SepColor, ","))
		}
		encodeKeyPath(b, kv.path, DefaultInlineKeyDecor, es)
		b.WriteString(es.paint(InlineTableKind, SepColor, "="))
		def := DefaultValueDecor
		if i == len(kvs)-1 {
			def = DefaultTrailingValueDecor
		}
		encodeValueState(b, kv.value, def, es)
	}
	b.WriteString(es.paint(InlineTableKind, SepColor, "}"))
}

// flatKV is one assignment after dotted tables are flattened into key paths.
type flatKV struct {
	path  []*Key
	value *Value
}

func (p *pairs) appendValues(path []*Key, out *[]flatKV) {
	for _, pr := range p.list {
		kp := make([]*Key, len(path), len(path)+1)
		copy(kp, path)
		kp = append(kp, &pr.key)
		switch pr.value.kind {
		case ItemValue:
			if sub := pr.value.value.AsInlineTable(); sub != nil && sub.IsDotted() {
				sub.items.appendValues(kp, out)
			} else {
				*out = append(*out, flatKV{path: kp, value: pr.value.value})
			}
		case ItemTable:
			if pr.value.table.dotted {
				pr.value.table.items.appendValues(kp, out)
			}
		}
	}
}

func encodeKeyPath(b *strings.Builder, path []*Key, def [2]string, es *EncState) {
	for i, k := range path {
		if i > 0 {
			b.WriteByte('.')
		}
		pre, suf := "", ""
		if i == 0 {
			pre = def[0]
		}
		if i == len(path)-1 {
			suf = def[1]
		}
		b.WriteString(k.decor.prefixOr(pre))
		b.WriteString(es.paint(InlineTableKind, KeyColor, k.render()))
		b.WriteString(k.decor.suffixOr(suf))
	}
}

func encodeTable(b *strings.Builder, t *Table, path []string) {
	encodeTableState(b, t, path, nil)
}

// encodeTableState renders a table section: its header when it has a path
// and holds assignments of its own (implicit tables exist only because a
// child header named them), then its body.
func encodeTableState(b *strings.Builder, t *Table, path []string, es *EncState) {
	var kvs []flatKV
	t.items.appendValues(nil, &kvs)
	if len(path) > 0 && !t.dotted && (!t.implicit || len(kvs) > 0) {
		writeHeader(b, t, path, "[", "]", es)
	}
	encodeTableBody(b, t, kvs, path, es)
}

// encodeTableBody renders a table's assignments and child sections. path is
// where the table lives, so child headers render with their full key path.
func encodeTableBody(b *strings.Builder, t *Table, kvs []flatKV, path []string, es *EncState) {
	for _, kv := range kvs {
		encodeKeyPath(b, kv.path, DefaultKeyDecor, es)
		b.WriteString(es.paint(InlineTableKind, SepColor, "="))
		encodeValueState(b, kv.value, DefaultValueDecor, es)
		b.WriteByte('\n')
	}
	for _, pr := range t.items.list {
		if pr.value.kind != ItemTable && pr.value.kind != ItemArrayOfTables {
			continue
		}
		sub := make([]string, len(path)+1)
		copy(sub, path)
		sub[len(path)] = pr.key.render()
		switch pr.value.kind {
		case ItemTable:
			if pr.value.table.dotted {
				continue
			}
			encodeTableState(b, pr.value.table, sub, es)
		case ItemArrayOfTables:
			for _, el := range pr.value.tables.values {
				writeHeader(b, el.table, sub, "[[", "]]", es)
				var elKVs []flatKV
				el.table.items.appendValues(nil, &elKVs)
				encodeTableBody(b, el.table, elKVs, sub, es)
			}
		}
	}
}

func writeHeader(b *strings.Builder, t *Table, path []string, lb, rb string, es *EncState) {
	def := ""
	if b.Len() > 0 {
		def = "\n"
	}
	b.WriteString(t.decor.prefixOr(def))
	b.WriteString(es.paint(InlineTableKind, SepColor, lb))
	b.WriteString(es.paint(InlineTableKind, HeaderColor, strings.Join(path, ".")))
	b.WriteString(es.paint(InlineTableKind, SepColor, rb))
	b.WriteString(t.decor.suffixOr(""))
	b.WriteByte('\n')
}

func reprText(r *Repr, def func() string) string {
	if r != nil {
		if s, ok := r.raw.Get(); ok {
			return s
		}
	}
	return def()
}

// floatRepr renders a float so it reads back as a float, never an integer.
func floatRepr(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
