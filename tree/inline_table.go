package tree

import "github.com/tomlworks/tomledit/token"

// InlineTable is a single-line TOML table written in braces.
type InlineTable struct {
	// preamble is the text between the braces of a table with no entries.
	preamble RawString
	decor    Decor
	span     *token.Span
	dotted   bool
	items    pairs
}

// NewInlineTable returns an empty inline table.
func NewInlineTable() *InlineTable {
	return &InlineTable{preamble: Raw("")}
}

func (t *InlineTable) Len() int {
	return t.items.len()
}

func (t *InlineTable) IsEmpty() bool {
	return t.items.len() == 0
}

// Clear drops every entry but keeps the table's own trivia.
func (t *InlineTable) Clear() {
	t.items.clear()
}

// Get returns the value bound to key, or nil.
func (t *InlineTable) Get(key string) *Value {
	pr := t.items.get(key)
	if pr == nil || pr.value.kind != ItemValue {
		return nil
	}
	return pr.value.value
}

// ContainsKey reports whether key is bound.
func (t *InlineTable) ContainsKey(key string) bool {
	return t.items.get(key) != nil
}

// Keys returns the key names in order.
func (t *InlineTable) Keys() []string {
	return t.items.keys()
}

// Insert binds key to v, converted via ValueOf. An existing binding keeps
// its position and key rendering; the old value is returned.
func (t *InlineTable) Insert(key string, v any) *Value {
	val := ValueOf(v)
	if pr := t.items.get(key); pr != nil {
		var old *Value
		if pr.value.kind == ItemValue {
			old = pr.value.value
		}
		pr.value = *valueItem(val)
		return old
	}
	t.items.insert(NewKey(key), *valueItem(val))
	return nil
}

// InsertFormatted binds key to v keeping the trivia both already carry.
func (t *InlineTable) InsertFormatted(key Key, v *Value) *Value {
	if pr := t.items.get(key.name); pr != nil {
		var old *Value
		if pr.value.kind == ItemValue {
			old = pr.value.value
		}
		pr.key = key
		pr.value = *valueItem(v)
		return old
	}
	t.items.insert(key, *valueItem(v))
	return nil
}

// Remove unbinds key and returns its value, or nil.
func (t *InlineTable) Remove(key string) *Value {
	pr := t.items.remove(key)
	if pr == nil || pr.value.kind != ItemValue {
		return nil
	}
	return pr.value.value
}

// GetOrInsert returns the value bound to key, binding def first when absent.
func (t *InlineTable) GetOrInsert(key string, def any) *Value {
	if pr := t.items.get(key); pr != nil && pr.value.kind == ItemValue {
		return pr.value.value
	}
	val := ValueOf(def)
	t.items.set(NewKey(key), *valueItem(val))
	return val
}

// KeyDecor returns the trivia around key's rendering, or nil when unbound.
func (t *InlineTable) KeyDecor(key string) *Decor {
	pr := t.items.get(key)
	if pr == nil {
		return nil
	}
	return pr.key.Decor()
}

// Key returns the stored key for name, or nil when unbound.
func (t *InlineTable) Key(name string) *Key {
	pr := t.items.get(name)
	if pr == nil {
		return nil
	}
	return &pr.key
}

// IsDotted reports whether this table renders as dotted keys rather than
// braces.
func (t *InlineTable) IsDotted() bool {
	return t.dotted
}

func (t *InlineTable) SetDotted(dotted bool) {
	t.dotted = dotted
}

// Preamble returns the text between the braces of an empty table.
func (t *InlineTable) Preamble() *RawString {
	return &t.preamble
}

func (t *InlineTable) SetPreamble(text string) {
	t.preamble = Raw(text)
}

// SortValues reorders the entries by key name, recursing into nested inline
// tables.
func (t *InlineTable) SortValues() {
	t.items.sortByKey()
	for _, pr := range t.items.list {
		if pr.value.kind == ItemValue {
			if sub := pr.value.value.AsInlineTable(); sub != nil {
				sub.SortValues()
			}
		}
	}
}

// Fmt drops the recorded trivia of every key and value so they render with
// the default single-line layout.
func (t *InlineTable) Fmt() {
	for _, pr := range t.items.list {
		if pr.value.kind != ItemValue {
			continue
		}
		pr.key.Decor().Clear()
		pr.value.value.Decor().Clear()
	}
}

// IntoTable converts to a standard table, reusing the entries in place.
func (t *InlineTable) IntoTable() *Table {
	out := NewTable()
	out.items = t.items
	out.decor = t.decor.clone()
	return out
}

// Decor returns the trivia outside the braces.
func (t *InlineTable) Decor() *Decor {
	return &t.decor
}

// Span reports where the table came from in the original input.
func (t *InlineTable) Span() *token.Span {
	if t.span == nil {
		return nil
	}
	sp := *t.span
	return &sp
}

func (t *InlineTable) Despan(input string) {
	t.span = nil
	t.decor.Despan(input)
	t.preamble.Despan(input)
	for _, pr := range t.items.list {
		pr.key.Despan(input)
		pr.value.Despan(input)
	}
}

func (t *InlineTable) clone() *InlineTable {
	c := &InlineTable{
		preamble: t.preamble,
		decor:    t.decor.clone(),
		dotted:   t.dotted,
		items:    t.items.clone(),
	}
	if t.preamble.span != nil {
		sp := *t.preamble.span
		c.preamble.span = &sp
	}
	if t.span != nil {
		sp := *t.span
		c.span = &sp
	}
	return c
}
