// Package token provides source positions, byte spans, and TOML string
// quoting.
package token

// Span is a half-open byte range [Start, End) into the original input.
type Span struct {
	Start int
	End   int
}

func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// Text returns the input bytes the span covers, or "" when the span does
// not fit the given input.
func (s Span) Text(input string) string {
	if s.Start < 0 || s.End > len(input) || s.Start > s.End {
		return ""
	}
	return input[s.Start:s.End]
}
