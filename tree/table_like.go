package tree

// TableLike is the shared surface of standard and inline tables, so code can
// edit a key space without caring which form holds it.
type TableLike interface {
	Len() int
	IsEmpty() bool
	Clear()
	GetItem(key string) *Item
	InsertItem(key string, item *Item) *Item
	RemoveItem(key string) *Item
	ContainsKey(key string) bool
	Keys() []string
	KeyDecor(key string) *Decor
	IsDotted() bool
	SetDotted(dotted bool)
	Fmt()
	SortValues()
}

var (
	_ TableLike = (*Table)(nil)
	_ TableLike = (*InlineTable)(nil)
)

// GetItem returns the item bound to key, or nil.
func (t *Table) GetItem(key string) *Item {
	return t.Get(key)
}

// InsertItem binds key to item and returns the replaced item, or nil.
func (t *Table) InsertItem(key string, item *Item) *Item {
	return t.Insert(key, item)
}

// RemoveItem unbinds key and returns its item, or nil.
func (t *Table) RemoveItem(key string) *Item {
	return t.Remove(key)
}

// GetItem returns the item bound to key, or nil.
func (t *InlineTable) GetItem(key string) *Item {
	pr := t.items.get(key)
	if pr == nil {
		return nil
	}
	return &pr.value
}

// InsertItem binds key to item, collapsing table forms to their inline
// value first. A None item is ignored. The replaced item is returned, or
// nil.
func (t *InlineTable) InsertItem(key string, item *Item) *Item {
	v, ok := item.IntoValue()
	if !ok {
		return nil
	}
	old := t.Insert(key, v)
	if old == nil {
		return nil
	}
	return valueItem(old)
}

// RemoveItem unbinds key and returns its item, or nil.
func (t *InlineTable) RemoveItem(key string) *Item {
	pr := t.items.remove(key)
	if pr == nil {
		return nil
	}
	return &pr.value
}
