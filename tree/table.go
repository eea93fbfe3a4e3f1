package tree

import "github.com/tomlworks/tomledit/token"

// Table is a standard TOML table written with a [header] line. Entries may
// be plain values, nested tables, or arrays of tables.
type Table struct {
	decor    Decor
	implicit bool
	dotted   bool
	pos      *int
	span     *token.Span
	items    pairs
}

// NewTable returns an empty explicit table.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) Len() int {
	return t.items.len()
}

func (t *Table) IsEmpty() bool {
	return t.items.len() == 0
}

// Clear drops every entry but keeps the table's own trivia.
func (t *Table) Clear() {
	t.items.clear()
}

// Get returns the item bound to key, or nil.
func (t *Table) Get(key string) *Item {
	pr := t.items.get(key)
	if pr == nil {
		return nil
	}
	return &pr.value
}

// ContainsKey reports whether key is bound to a non-table item.
func (t *Table) ContainsKey(key string) bool {
	pr := t.items.get(key)
	return pr != nil && pr.value.kind == ItemValue
}

// ContainsTable reports whether key is bound to a standard table.
func (t *Table) ContainsTable(key string) bool {
	pr := t.items.get(key)
	return pr != nil && pr.value.kind == ItemTable
}

// ContainsArrayOfTables reports whether key is bound to an array of tables.
func (t *Table) ContainsArrayOfTables(key string) bool {
	pr := t.items.get(key)
	return pr != nil && pr.value.kind == ItemArrayOfTables
}

// Keys returns the key names in order.
func (t *Table) Keys() []string {
	return t.items.keys()
}

// Insert binds key to item. An existing binding keeps its position and key
// rendering; the old item is returned, or nil.
func (t *Table) Insert(key string, item *Item) *Item {
	if pr := t.items.get(key); pr != nil {
		old := pr.value
		pr.value = *item
		return &old
	}
	t.items.insert(NewKey(key), *item)
	return nil
}

// InsertFormatted binds key to item keeping the key's trivia.
func (t *Table) InsertFormatted(key Key, item *Item) *Item {
	if pr := t.items.get(key.name); pr != nil {
		old := pr.value
		pr.key = key
		pr.value = *item
		return &old
	}
	t.items.insert(key, *item)
	return nil
}

// Remove unbinds key and returns its item, or nil.
func (t *Table) Remove(key string) *Item {
	pr := t.items.remove(key)
	if pr == nil {
		return nil
	}
	return &pr.value
}

// GetOrInsert returns the item bound to key, binding item first when absent.
func (t *Table) GetOrInsert(key string, item *Item) *Item {
	pr := t.items.get(key)
	if pr == nil {
		pr = t.items.insert(NewKey(key), *item)
	}
	return &pr.value
}

// KeyDecor returns the trivia around key's rendering, or nil when unbound.
func (t *Table) KeyDecor(key string) *Decor {
	pr := t.items.get(key)
	if pr == nil {
		return nil
	}
	return pr.key.Decor()
}

// Key returns the stored key for name, or nil when unbound.
func (t *Table) Key(name string) *Key {
	pr := t.items.get(name)
	if pr == nil {
		return nil
	}
	return &pr.key
}

// IsImplicit reports whether the table exists only because a child header
// named it, so no [header] line of its own is emitted while it stays empty
// of direct values.
func (t *Table) IsImplicit() bool {
	return t.implicit
}

func (t *Table) SetImplicit(implicit bool) {
	t.implicit = implicit
}

// IsDotted reports whether this table renders as dotted keys rather than a
// header.
func (t *Table) IsDotted() bool {
	return t.dotted
}

func (t *Table) SetDotted(dotted bool) {
	t.dotted = dotted
}

// Position returns the table's ordinal among headers in the document, or
// nil when it was built programmatically.
func (t *Table) Position() *int {
	return t.pos
}

func (t *Table) SetPosition(pos int) {
	t.pos = &pos
}

// SortValues reorders the entries by key name, recursing into nested tables.
func (t *Table) SortValues() {
	t.items.sortByKey()
	for _, pr := range t.items.list {
		switch pr.value.kind {
		case ItemTable:
			pr.value.table.SortValues()
		case ItemValue:
			if sub := pr.value.value.AsInlineTable(); sub != nil {
				sub.SortValues()
			}
		}
	}
}

// Fmt drops the recorded trivia of every key and directly held value so
// they render with the default layout.
func (t *Table) Fmt() {
	for _, pr := range t.items.list {
		if pr.value.kind != ItemValue {
			continue
		}
		pr.key.Decor().Clear()
		pr.value.value.Decor().Clear()
	}
}

// IntoInlineTable converts to an inline table, collapsing nested tables and
// arrays of tables into their inline forms and normalizing layout.
func (t *Table) IntoInlineTable() *InlineTable {
	out := NewInlineTable()
	out.items = t.items
	out.decor = t.decor.clone()
	for _, pr := range out.items.list {
		pr.value.MakeValue()
	}
	out.Fmt()
	return out
}

// Decor returns the trivia around the [header] line.
func (t *Table) Decor() *Decor {
	return &t.decor
}

// Span reports where the table came from in the original input.
func (t *Table) Span() *token.Span {
	if t.span == nil {
		return nil
	}
	sp := *t.span
	return &sp
}

func (t *Table) Despan(input string) {
	t.span = nil
	t.decor.Despan(input)
	for _, pr := range t.items.list {
		pr.key.Despan(input)
		pr.value.Despan(input)
	}
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := &Table{
		decor:    t.decor.clone(),
		implicit: t.implicit,
		dotted:   t.dotted,
		items:    t.items.clone(),
	}
	if t.pos != nil {
		p := *t.pos
		c.pos = &p
	}
	if t.span != nil {
		sp := *t.span
		c.span = &sp
	}
	return c
}
