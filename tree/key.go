package tree

import "github.com/tomlworks/tomledit/token"

// Key is a single table key with its rendering and trivia.
type Key struct {
	name  string
	repr  *Repr
	decor Decor
}

// NewKey builds a key for name with no recorded rendering.
func NewKey(name string) Key {
	return Key{name: name}
}

func newKeySpanned(name string, sp token.Span) Key {
	return Key{name: name, repr: reprSpanned(sp)}
}

// Get returns the parsed key name.
func (k *Key) Get() string {
	return k.name
}

// Repr returns the source rendering, or nil when none is recorded.
func (k *Key) Repr() *Repr {
	return k.repr
}

// Decor returns the trivia around the key.
func (k *Key) Decor() *Decor {
	return &k.decor
}

// Span reports where the rendering came from in the original input.
func (k *Key) Span() *token.Span {
	if k.repr == nil {
		return nil
	}
	return k.repr.raw.Span()
}

func (k *Key) Despan(input string) {
	k.decor.Despan(input)
	if k.repr != nil {
		k.repr.Despan(input)
	}
}

func (k *Key) clone() Key {
	c := Key{name: k.name, decor: k.decor.clone()}
	if k.repr != nil {
		r := *k.repr
		if k.repr.raw.span != nil {
			sp := *k.repr.raw.span
			r.raw.span = &sp
		}
		c.repr = &r
	}
	return c
}

func (k *Key) render() string {
	if k.repr != nil {
		if s, ok := k.repr.raw.Get(); ok {
			return s
		}
	}
	return token.QuoteKey(k.name)
}
