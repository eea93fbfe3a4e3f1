package tree

import "github.com/tomlworks/tomledit/token"

// Array is an inline TOML array. Elements keep their own trivia; the array
// keeps the trivia outside the brackets plus whatever trailing text sits
// between the last element and the closing bracket.
type Array struct {
	trailing      RawString
	trailingComma bool
	decor         Decor
	span          *token.Span
	values        []*Item
}

// NewArray returns an empty array.
func NewArray() *Array {
	return &Array{trailing: Raw("")}
}

func (a *Array) Len() int {
	return len(a.values)
}

func (a *Array) IsEmpty() bool {
	return len(a.values) == 0
}

// Clear drops every element but keeps the array's own trivia.
func (a *Array) Clear() {
	a.values = nil
	a.trailingComma = false
}

// Get returns the element at i, or nil when out of range.
func (a *Array) Get(i int) *Value {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i].value
}

// Values returns the elements in order.
func (a *Array) Values() []*Value {
	out := make([]*Value, 0, len(a.values))
	for _, it := range a.values {
		out = append(out, it.value)
	}
	return out
}

// Push appends v, converted via ValueOf, with the usual one-space lead-in
// for elements after the first.
func (a *Array) Push(v any) {
	val := ValueOf(v)
	if len(a.values) == 0 {
		val.Decorate(DefaultLeadingValueDecor[0], DefaultLeadingValueDecor[1])
	} else {
		val.Decorate(DefaultValueDecor[0], DefaultValueDecor[1])
	}
	a.values = append(a.values, valueItem(val))
}

// PushFormatted appends v keeping whatever trivia it already carries.
func (a *Array) PushFormatted(v *Value) {
	a.values = append(a.values, valueItem(v))
}

// Insert places v, converted via ValueOf, at index i. It panics when i is
// out of range.
func (a *Array) Insert(i int, v any) {
	if i < 0 || i > len(a.values) {
		panic("tree: array insert out of range")
	}
	val := ValueOf(v)
	if i == 0 {
		val.Decorate(DefaultLeadingValueDecor[0], DefaultLeadingValueDecor[1])
	} else {
		val.Decorate(DefaultValueDecor[0], DefaultValueDecor[1])
	}
	a.values = append(a.values, nil)
	copy(a.values[i+1:], a.values[i:])
	a.values[i] = valueItem(val)
}

// Replace swaps the element at i for v, converted via ValueOf, keeping the
// old element's trivia. It panics when i is out of range and returns the
// replaced value.
func (a *Array) Replace(i int, v any) *Value {
	if i < 0 || i >= len(a.values) {
		panic("tree: array replace out of range")
	}
	old := a.values[i].value
	val := ValueOf(v)
	od := old.Decor()
	nd := val.Decor()
	if od.prefix != nil {
		r := *od.prefix
		nd.prefix = &r
	}
	if od.suffix != nil {
		r := *od.suffix
		nd.suffix = &r
	}
	a.values[i] = valueItem(val)
	return old
}

// Remove deletes and returns the element at i. It panics when i is out of
// range.
func (a *Array) Remove(i int) *Value {
	if i < 0 || i >= len(a.values) {
		panic("tree: array remove out of range")
	}
	old := a.values[i].value
	a.values = append(a.values[:i], a.values[i+1:]...)
	return old
}

// Trailing returns the text between the last element and the closing bracket.
func (a *Array) Trailing() *RawString {
	return &a.trailing
}

// SetTrailing replaces that text.
func (a *Array) SetTrailing(text string) {
	a.trailing = Raw(text)
}

// TrailingComma reports whether a comma follows the last element.
func (a *Array) TrailingComma() bool {
	return a.trailingComma
}

// SetTrailingComma toggles the comma after the last element.
func (a *Array) SetTrailingComma(on bool) {
	a.trailingComma = on
}

// Fmt resets every element's trivia and the trailing text to the default
// single-line layout.
func (a *Array) Fmt() {
	for i, it := range a.values {
		if i == 0 {
			it.value.Decorate(DefaultLeadingValueDecor[0], DefaultLeadingValueDecor[1])
		} else {
			it.value.Decorate(DefaultValueDecor[0], DefaultValueDecor[1])
		}
	}
	a.trailing = Raw("")
	a.trailingComma = false
}

// Decor returns the trivia outside the brackets.
func (a *Array) Decor() *Decor {
	return &a.decor
}

// Span reports where the array came from in the original input.
func (a *Array) Span() *token.Span {
	if a.span == nil {
		return nil
	}
	sp := *a.span
	return &sp
}

func (a *Array) Despan(input string) {
	a.span = nil
	a.decor.Despan(input)
	a.trailing.Despan(input)
	for _, it := range a.values {
		it.Despan(input)
	}
}

func (a *Array) clone() *Array {
	c := &Array{
		trailing:      a.trailing,
		trailingComma: a.trailingComma,
		decor:         a.decor.clone(),
	}
	if a.trailing.span != nil {
		sp := *a.trailing.span
		c.trailing.span = &sp
	}
	if a.span != nil {
		sp := *a.span
		c.span = &sp
	}
	for _, it := range a.values {
		c.values = append(c.values, it.Clone())
	}
	return c
}
