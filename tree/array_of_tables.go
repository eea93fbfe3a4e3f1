package tree

import "github.com/tomlworks/tomledit/token"

// ArrayOfTables is the sequence of standard tables produced by repeated
// [[header]] lines under one key.
type ArrayOfTables struct {
	span   *token.Span
	values []*Item
}

// NewArrayOfTables returns an empty array of tables.
func NewArrayOfTables() *ArrayOfTables {
	return &ArrayOfTables{}
}

func (a *ArrayOfTables) Len() int {
	return len(a.values)
}

func (a *ArrayOfTables) IsEmpty() bool {
	return len(a.values) == 0
}

func (a *ArrayOfTables) Clear() {
	a.values = nil
}

// Get returns the table at i, or nil when out of range.
func (a *ArrayOfTables) Get(i int) *Table {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i].table
}

// Tables returns the tables in order.
func (a *ArrayOfTables) Tables() []*Table {
	out := make([]*Table, 0, len(a.values))
	for _, it := range a.values {
		out = append(out, it.table)
	}
	return out
}

// Push appends t.
func (a *ArrayOfTables) Push(t *Table) {
	a.values = append(a.values, tableItem(t))
}

// Remove deletes the table at i. It panics when i is out of range.
func (a *ArrayOfTables) Remove(i int) {
	if i < 0 || i >= len(a.values) {
		panic("tree: array of tables remove out of range")
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
}

// IntoArray converts to an inline array of inline tables, reusing the
// elements in place.
func (a *ArrayOfTables) IntoArray() *Array {
	out := NewArray()
	for _, it := range a.values {
		it.MakeValue()
	}
	out.values = a.values
	out.Fmt()
	return out
}

// Span reports where the array came from in the original input.
func (a *ArrayOfTables) Span() *token.Span {
	if a.span == nil {
		return nil
	}
	sp := *a.span
	return &sp
}

func (a *ArrayOfTables) Despan(input string) {
	a.span = nil
	for _, it := range a.values {
		it.Despan(input)
	}
}

func (a *ArrayOfTables) clone() *ArrayOfTables {
	c := &ArrayOfTables{}
	if a.span != nil {
		sp := *a.span
		c.span = &sp
	}
	for _, it := range a.values {
		c.values = append(c.values, it.Clone())
	}
	return c
}
