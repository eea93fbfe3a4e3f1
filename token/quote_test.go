package token

import (
	"errors"
	"testing"
)

func TestQuoteKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"with-dash_1", "with-dash_1"},
		{"has space", `"has space"`},
		{"", `""`},
		{"dotted.key", `"dotted.key"`},
	}
	for _, c := range cases {
		if got := QuoteKey(c.in); got != c.want {
			t.Errorf("QuoteKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	cases := []string{
		"hello",
		"",
		"tab\tand\nnewline",
		`say "hi"`,
		`back\slash`,
		"unicode é世",
		"control \x01 char",
	}
	for _, c := range cases {
		q := Quote(c)
		got, err := Unquote(q)
		if err != nil {
			t.Errorf("Unquote(%q): %v", q, err)
			continue
		}
		if got != c {
			t.Errorf("Unquote(Quote(%q)) = %q", c, got)
		}
	}
}

func TestQuotePrefersLiteral(t *testing.T) {
	q := Quote(`say "hi"`)
	if q != `'say "hi"'` {
		t.Errorf("Quote chose %q", q)
	}
}

func TestUnquoteForms(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`"basic"`, "basic"},
		{`'literal'`, "literal"},
		{`'no \n escapes'`, `no \n escapes`},
		{"\"\"\"\nfirst\nsecond\"\"\"", "first\nsecond"},
		{"'''\nraw\\here'''", "raw\\here"},
		{`"esc \t A"`, "esc \t A"},
		{"\"\"\"join \\\n  ed\"\"\"", "join ed"},
	}
	for _, c := range cases {
		got, err := Unquote(c.in)
		if err != nil {
			t.Errorf("Unquote(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Unquote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnquoteBad(t *testing.T) {
	for _, in := range []string{`"unterminated`, `"bad \q escape"`, `x`, `"`} {
		if _, err := Unquote(in); !errors.Is(err, ErrQuote) {
			t.Errorf("Unquote(%q) err = %v, want ErrQuote", in, err)
		}
	}
}
