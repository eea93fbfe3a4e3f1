package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrQuote = errors.New("bad quoted string")

// IsBareKey reports whether v can be written as an unquoted TOML key.
func IsBareKey(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// QuoteKey renders a key for emission, leaving bare keys unquoted.
func QuoteKey(v string) string {
	if IsBareKey(v) {
		return v
	}
	return Quote(v)
}

// Quote renders v as a TOML string. A literal string is preferred when the
// value contains characters that would need escaping in a basic string but
// none that a literal string cannot hold.
func Quote(v string) string {
	if strings.ContainsAny(v, "\"\\") && canLiteral(v) {
		return "'" + v + "'"
	}
	return quoteBasic(v)
}

func canLiteral(v string) bool {
	if strings.ContainsRune(v, '\'') {
		return false
	}
	for _, r := range v {
		if r != '\t' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func quoteBasic(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, fmt.Sprintf("\\u%04X", r)...)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes any of the four TOML string forms: basic, multiline
// basic, literal, and multiline literal. tok must include the delimiters.
func Unquote(tok string) (string, error) {
	switch {
	case strings.HasPrefix(tok, `"""`):
		if len(tok) < 6 || !strings.HasSuffix(tok, `"""`) {
			return "", fmt.Errorf("%w: unterminated %q", ErrQuote, tok)
		}
		return decodeEscapes(trimFirstNewline(tok[3:len(tok)-3]), true)
	case strings.HasPrefix(tok, `"`):
		if len(tok) < 2 || !strings.HasSuffix(tok, `"`) {
			return "", fmt.Errorf("%w: unterminated %q", ErrQuote, tok)
		}
		return decodeEscapes(tok[1:len(tok)-1], false)
	case strings.HasPrefix(tok, "'''"):
		if len(tok) < 6 || !strings.HasSuffix(tok, "'''") {
			return "", fmt.Errorf("%w: unterminated %q", ErrQuote, tok)
		}
		return trimFirstNewline(tok[3 : len(tok)-3]), nil
	case strings.HasPrefix(tok, "'"):
		if len(tok) < 2 || !strings.HasSuffix(tok, "'") {
			return "", fmt.Errorf("%w: unterminated %q", ErrQuote, tok)
		}
		return tok[1 : len(tok)-1], nil
	default:
		return "", fmt.Errorf("%w: not a string: %q", ErrQuote, tok)
	}
}

func trimFirstNewline(v string) string {
	if strings.HasPrefix(v, "\r\n") {
		return v[2:]
	}
	if strings.HasPrefix(v, "\n") {
		return v[1:]
	}
	return v
}

func decodeEscapes(v string, multiline bool) (string, error) {
	if !strings.ContainsRune(v, '\\') {
		return v, nil
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(v) {
			return "", fmt.Errorf("%w: trailing backslash", ErrQuote)
		}
		i++
		switch v[i] {
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'u', 'U':
			n := 4
			if v[i] == 'U' {
				n = 8
			}
			i++
			if i+n > len(v) {
				return "", fmt.Errorf("%w: short unicode escape", ErrQuote)
			}
			cp, err := strconv.ParseUint(v[i:i+n], 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: bad unicode escape: %v", ErrQuote, err)
			}
			b.WriteRune(rune(cp))
			i += n
		case ' ', '\t', '\r', '\n':
			if !multiline {
				return "", fmt.Errorf("%w: invalid escape %q", ErrQuote, v[i])
			}
			// Line-ending backslash: skip whitespace through the newline
			// and any leading whitespace on following lines.
			j := i
			nl := false
			for j < len(v) {
				switch v[j] {
				case ' ', '\t', '\r':
					j++
					continue
				case '\n':
					nl = true
					j++
					continue
				}
				break
			}
			if !nl {
				return "", fmt.Errorf("%w: invalid escape %q", ErrQuote, v[i])
			}
			i = j
		default:
			return "", fmt.Errorf("%w: invalid escape %q", ErrQuote, v[i])
		}
	}
	return b.String(), nil
}
