package tree

import (
	"fmt"
	"strings"

	"github.com/tomlworks/tomledit/token"
)

// ItemKind tags the variant held by an Item.
type ItemKind int

const (
	// ItemNone is the zero item, a placeholder that renders as nothing.
	ItemNone ItemKind = iota
	ItemValue
	ItemTable
	ItemArrayOfTables
)

var itemKindNames = map[ItemKind]string{
	ItemNone:          "none",
	ItemValue:         "value",
	ItemTable:         "table",
	ItemArrayOfTables: "array of tables",
}

func (k ItemKind) String() string {
	if s, ok := itemKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// Item is one slot in a table: empty, an inline value, a standard table, or
// an array of tables. The zero Item is None.
type Item struct {
	kind   ItemKind
	value  *Value
	table  *Table
	tables *ArrayOfTables
}

func valueItem(v *Value) *Item {
	return &Item{kind: ItemValue, value: v}
}

func tableItem(t *Table) *Item {
	return &Item{kind: ItemTable, table: t}
}

// ValueItem wraps v, converted via ValueOf, as an item.
func ValueItem(v any) *Item {
	return valueItem(ValueOf(v))
}

// TableItem wraps an empty standard table as an item.
func TableItem() *Item {
	return tableItem(NewTable())
}

// ArrayOfTablesItem wraps an empty array of tables as an item.
func ArrayOfTablesItem() *Item {
	return &Item{kind: ItemArrayOfTables, tables: NewArrayOfTables()}
}

// Kind returns the variant tag.
func (it *Item) Kind() ItemKind {
	return it.kind
}

// TypeName names the variant for error messages. For a value item it names
// the value's own kind.
func (it *Item) TypeName() string {
	if it.kind == ItemValue {
		return it.value.TypeName()
	}
	return it.kind.String()
}

func (it *Item) IsNone() bool {
	return it.kind == ItemNone
}

// AsValue returns the inline value, or nil for other kinds.
func (it *Item) AsValue() *Value {
	if it.kind != ItemValue {
		return nil
	}
	return it.value
}

// AsTable returns the standard table, or nil for other kinds.
func (it *Item) AsTable() *Table {
	if it.kind != ItemTable {
		return nil
	}
	return it.table
}

// AsArrayOfTables returns the array of tables, or nil for other kinds.
func (it *Item) AsArrayOfTables() *ArrayOfTables {
	if it.kind != ItemArrayOfTables {
		return nil
	}
	return it.tables
}

// AsTableLike returns either table form through the shared interface, or
// nil when the item is neither.
func (it *Item) AsTableLike() TableLike {
	switch it.kind {
	case ItemTable:
		return it.table
	case ItemValue:
		if t := it.value.AsInlineTable(); t != nil {
			return t
		}
	}
	return nil
}

func (it *Item) AsString() (string, bool) {
	if it.kind != ItemValue {
		return "", false
	}
	return it.value.AsString()
}

func (it *Item) AsInteger() (int64, bool) {
	if it.kind != ItemValue {
		return 0, false
	}
	return it.value.AsInteger()
}

func (it *Item) AsFloat() (float64, bool) {
	if it.kind != ItemValue {
		return 0, false
	}
	return it.value.AsFloat()
}

func (it *Item) AsBool() (bool, bool) {
	if it.kind != ItemValue {
		return false, false
	}
	return it.value.AsBool()
}

// AsArray returns the inline array, or nil.
func (it *Item) AsArray() *Array {
	if it.kind != ItemValue {
		return nil
	}
	return it.value.AsArray()
}

// AsInlineTable returns the inline table, or nil.
func (it *Item) AsInlineTable() *InlineTable {
	if it.kind != ItemValue {
		return nil
	}
	return it.value.AsInlineTable()
}

// IntoValue converts the item into an inline value: a value passes through,
// a table becomes an inline table, and an array of tables becomes an array.
// On success the item is reset to None; on failure it is left untouched.
func (it *Item) IntoValue() (*Value, bool) {
	switch it.kind {
	case ItemValue:
		v := it.value
		*it = Item{}
		return v, true
	case ItemTable:
		v := FromInlineTable(it.table.IntoInlineTable())
		*it = Item{}
		return v, true
	case ItemArrayOfTables:
		v := FromArray(it.tables.IntoArray())
		*it = Item{}
		return v, true
	default:
		return nil, false
	}
}

// MakeValue rewrites a table or array of tables into its inline value form
// in place. None and value items are left alone.
func (it *Item) MakeValue() {
	if it.kind == ItemTable || it.kind == ItemArrayOfTables {
		v, _ := it.IntoValue()
		*it = *valueItem(v)
	}
}

// IntoTable converts the item into a standard table: a table passes through
// and an inline table is upgraded. On success the item is reset to None; on
// failure it is left untouched.
func (it *Item) IntoTable() (*Table, bool) {
	switch it.kind {
	case ItemTable:
		t := it.table
		*it = Item{}
		return t, true
	case ItemValue:
		inline := it.value.AsInlineTable()
		if inline == nil {
			return nil, false
		}
		t := inline.IntoTable()
		*it = Item{}
		return t, true
	default:
		return nil, false
	}
}

// IntoArrayOfTables converts the item into an array of tables: an array of
// tables passes through, and a non-empty array whose elements are all inline
// tables is upgraded. An empty array always fails, since nothing marks it as
// an array of tables rather than an array of anything else. On success the
// item is reset to None; on failure it is left untouched.
func (it *Item) IntoArrayOfTables() (*ArrayOfTables, bool) {
	switch it.kind {
	case ItemArrayOfTables:
		a := it.tables
		*it = Item{}
		return a, true
	case ItemValue:
		arr := it.value.AsArray()
		if arr == nil || arr.IsEmpty() {
			return nil, false
		}
		for _, el := range arr.values {
			if el.AsInlineTable() == nil {
				return nil, false
			}
		}
		out := NewArrayOfTables()
		out.values = arr.values
		for _, el := range out.values {
			t, _ := el.IntoTable()
			*el = *tableItem(t)
		}
		*it = Item{}
		return out, true
	default:
		return nil, false
	}
}

// OrInsert replaces a None item with other and returns the item, so a chain
// of lookups can materialize missing slots.
func (it *Item) OrInsert(other *Item) *Item {
	if it.kind == ItemNone {
		*it = *other
	}
	return it
}

// Get descends one step: a string index looks up a key in either table
// form, and an int index selects an element of an array or array of tables.
// It returns nil when the step does not apply.
func (it *Item) Get(index any) *Item {
	switch idx := index.(type) {
	case string:
		switch it.kind {
		case ItemTable:
			return it.table.Get(idx)
		case ItemValue:
			if t := it.value.AsInlineTable(); t != nil {
				if pr := t.items.get(idx); pr != nil {
					return &pr.value
				}
			}
		}
	case int:
		switch it.kind {
		case ItemArrayOfTables:
			if idx >= 0 && idx < len(it.tables.values) {
				return it.tables.values[idx]
			}
		case ItemValue:
			if a := it.value.AsArray(); a != nil {
				if idx >= 0 && idx < len(a.values) {
					return a.values[idx]
				}
			}
		}
	}
	return nil
}

// Span reports where the item came from in the original input.
func (it *Item) Span() *token.Span {
	switch it.kind {
	case ItemValue:
		return it.value.Span()
	case ItemTable:
		return it.table.Span()
	case ItemArrayOfTables:
		return it.tables.Span()
	default:
		return nil
	}
}

// Despan resolves every recorded span against the input it was parsed from.
func (it *Item) Despan(input string) {
	switch it.kind {
	case ItemValue:
		it.value.Despan(input)
	case ItemTable:
		it.table.Despan(input)
	case ItemArrayOfTables:
		it.tables.Despan(input)
	}
}

// Clone returns a deep copy.
func (it *Item) Clone() *Item {
	c := &Item{kind: it.kind}
	switch it.kind {
	case ItemValue:
		c.value = it.value.Clone()
	case ItemTable:
		c.table = it.table.Clone()
	case ItemArrayOfTables:
		c.tables = it.tables.clone()
	}
	return c
}

// String renders the item as source text. A None item renders as nothing.
func (it *Item) String() string {
	switch it.kind {
	case ItemValue:
		return it.value.String()
	case ItemTable:
		var b strings.Builder
		encodeTable(&b, it.table, nil)
		return b.String()
	case ItemArrayOfTables:
		var b strings.Builder
		for _, el := range it.tables.values {
			encodeTable(&b, el.table, nil)
		}
		return b.String()
	default:
		return ""
	}
}

// ParseItem decodes source text holding a single inline value.
func ParseItem(text string) (*Item, error) {
	v, err := ParseValue(text)
	if err != nil {
		return nil, err
	}
	return valueItem(v), nil
}
