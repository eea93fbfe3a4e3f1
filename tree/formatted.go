package tree

import (
	"github.com/tomlworks/tomledit/datetime"
	"github.com/tomlworks/tomledit/token"
)

// Scalar is the set of leaf value types.
type Scalar interface {
	~string | ~int64 | ~float64 | ~bool | datetime.Datetime
}

// Repr is the literal source rendering of a scalar.
type Repr struct {
	raw RawString
}

// NewRepr wraps rendered text.
func NewRepr(raw string) Repr {
	return Repr{raw: Raw(raw)}
}

func reprSpanned(sp token.Span) *Repr {
	return &Repr{raw: rawSpanned(sp)}
}

// Raw returns the underlying text holder.
func (r *Repr) Raw() *RawString {
	return &r.raw
}

func (r *Repr) Despan(input string) {
	r.raw.Despan(input)
}

// Formatted is a scalar together with its source rendering and trivia.
type Formatted[T Scalar] struct {
	value T
	repr  *Repr
	decor Decor
}

// NewFormatted wraps a plain value with no rendering; the encoder derives
// one on demand.
func NewFormatted[T Scalar](value T) *Formatted[T] {
	return &Formatted[T]{value: value}
}

func newFormattedSpanned[T Scalar](value T, sp token.Span) *Formatted[T] {
	return &Formatted[T]{value: value, repr: reprSpanned(sp)}
}

// Value returns the parsed value.
func (f *Formatted[T]) Value() T {
	return f.value
}

// SetValue replaces the value and drops any stale rendering.
func (f *Formatted[T]) SetValue(value T) {
	f.value = value
	f.repr = nil
}

// Repr returns the source rendering, or nil when none is recorded.
func (f *Formatted[T]) Repr() *Repr {
	return f.repr
}

// Decor returns the trivia around the scalar.
func (f *Formatted[T]) Decor() *Decor {
	return &f.decor
}

// Span reports where the rendering came from in the original input.
func (f *Formatted[T]) Span() *token.Span {
	if f.repr == nil {
		return nil
	}
	return f.repr.raw.Span()
}

func (f *Formatted[T]) Despan(input string) {
	f.decor.Despan(input)
	if f.repr != nil {
		f.repr.Despan(input)
	}
}

func (f *Formatted[T]) clone() *Formatted[T] {
	c := &Formatted[T]{value: f.value, decor: f.decor.clone()}
	if f.repr != nil {
		r := *f.repr
		if f.repr.raw.span != nil {
			sp := *f.repr.raw.span
			r.raw.span = &sp
		}
		c.repr = &r
	}
	return c
}
