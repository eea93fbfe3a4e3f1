package tree

import "github.com/tomlworks/tomledit/token"

// RawString is a piece of source text that is either materialized or still
// referenced as a span into the original input. Despan resolves the span
// form into text; the span is never repopulated afterwards.
type RawString struct {
	text string
	ok   bool
	span *token.Span
}

// Raw wraps explicit text.
func Raw(text string) RawString {
	return RawString{text: text, ok: true}
}

func rawSpanned(sp token.Span) RawString {
	return RawString{span: &sp}
}

// Get returns the text, or false if it is still an unresolved span.
func (r *RawString) Get() (string, bool) {
	return r.text, r.ok
}

// OrDefault returns the text, or def when unresolved.
func (r *RawString) OrDefault(def string) string {
	if r.ok {
		return r.text
	}
	return def
}

// Span returns the source span, if any.
func (r *RawString) Span() *token.Span {
	if r.span == nil {
		return nil
	}
	sp := *r.span
	return &sp
}

// Despan resolves a span form against the input it was parsed from.
func (r *RawString) Despan(input string) {
	if r.span != nil {
		if !r.ok {
			r.text = r.span.Text(input)
			r.ok = true
		}
		r.span = nil
	}
}

// Decor is the whitespace and comment trivia around a node: a prefix before
// it and a suffix after it. An unset side falls back to a context default
// chosen by the encoder.
type Decor struct {
	prefix *RawString
	suffix *RawString
}

// NewDecor builds a decor with both sides set.
func NewDecor(prefix, suffix string) Decor {
	p, s := Raw(prefix), Raw(suffix)
	return Decor{prefix: &p, suffix: &s}
}

// Prefix returns the prefix trivia, or nil when unset.
func (d *Decor) Prefix() *RawString {
	return d.prefix
}

// Suffix returns the suffix trivia, or nil when unset.
func (d *Decor) Suffix() *RawString {
	return d.suffix
}

func (d *Decor) SetPrefix(text string) {
	r := Raw(text)
	d.prefix = &r
}

func (d *Decor) SetSuffix(text string) {
	r := Raw(text)
	d.suffix = &r
}

func (d *Decor) setPrefixSpan(sp token.Span) {
	r := rawSpanned(sp)
	d.prefix = &r
}

func (d *Decor) setSuffixSpan(sp token.Span) {
	r := rawSpanned(sp)
	d.suffix = &r
}

// Clear unsets both sides, restoring default rendering.
func (d *Decor) Clear() {
	d.prefix = nil
	d.suffix = nil
}

func (d *Decor) Despan(input string) {
	if d.prefix != nil {
		d.prefix.Despan(input)
	}
	if d.suffix != nil {
		d.suffix.Despan(input)
	}
}

func (d *Decor) prefixOr(def string) string {
	if d.prefix != nil {
		return d.prefix.OrDefault(def)
	}
	return def
}

func (d *Decor) suffixOr(def string) string {
	if d.suffix != nil {
		return d.suffix.OrDefault(def)
	}
	return def
}

func (d *Decor) clone() Decor {
	var c Decor
	if d.prefix != nil {
		p := *d.prefix
		if d.prefix.span != nil {
			sp := *d.prefix.span
			p.span = &sp
		}
		c.prefix = &p
	}
	if d.suffix != nil {
		s := *d.suffix
		if d.suffix.span != nil {
			sp := *d.suffix.span
			s.span = &sp
		}
		c.suffix = &s
	}
	return c
}
