package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomlworks/tomledit/datetime"
	"github.com/tomlworks/tomledit/debug"
	"github.com/tomlworks/tomledit/token"
)

// ParseValue decodes source text holding a single inline value, keeping the
// surrounding whitespace and comments as its trivia. Every span recorded
// during the parse is resolved before the value is returned.
func ParseValue(input string) (*Value, error) {
	p := &valueParser{in: input, doc: token.NewPosDoc([]byte(input))}
	pre := p.trivia()
	if p.pos >= len(p.in) {
		return nil, p.errf(p.pos, "expected a value")
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	suf := p.trivia()
	if p.pos != len(p.in) {
		return nil, p.errf(p.pos, "unexpected trailing text")
	}
	d := v.Decor()
	d.setPrefixSpan(pre)
	d.setSuffixSpan(suf)
	if debug.Parse() {
		debug.Logf("parsed %s from %d bytes (trivia %d+%d)\n",
			v.TypeName(), len(input), pre.Len(), suf.Len())
	}
	v.Despan(input)
	return v, nil
}

type valueParser struct {
	in  string
	pos int
	doc *token.PosDoc
}

func (p *valueParser) errf(off int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s %s", ErrParse, msg, p.doc.Pos(off))
}

// trivia consumes whitespace, newlines, and comments, returning the span it
// covered.
func (p *valueParser) trivia() token.Span {
	start := p.pos
	for p.pos < len(p.in) {
		switch p.in[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '#':
			for p.pos < len(p.in) && p.in[p.pos] != '\n' {
				p.pos++
			}
		default:
			return token.NewSpan(start, p.pos)
		}
	}
	return token.NewSpan(start, p.pos)
}

func (p *valueParser) value() (*Value, error) {
	switch p.in[p.pos] {
	case '"', '\'':
		return p.stringValue()
	case '[':
		return p.array()
	case '{':
		return p.inlineTable()
	default:
		return p.scalar()
	}
}

func (p *valueParser) stringValue() (*Value, error) {
	start := p.pos
	end, err := p.scanString()
	if err != nil {
		return nil, err
	}
	tok := p.in[start:end]
	s, err := token.Unquote(tok)
	if err != nil {
		return nil, p.errf(start, "%v", err)
	}
	p.pos = end
	f := newFormattedSpanned(s, token.NewSpan(start, end))
	return &Value{kind: StringKind, str: f}, nil
}

// scanString finds the end of the quoted token at the cursor without
// decoding it.
func (p *valueParser) scanString() (int, error) {
	start := p.pos
	q := p.in[start]
	delim := string([]byte{q, q, q})
	if strings.HasPrefix(p.in[start:], delim) {
		i := start + 3
		for i < len(p.in) {
			if q == '"' && p.in[i] == '\\' {
				i += 2
				continue
			}
			if strings.HasPrefix(p.in[i:], delim) {
				end := i + 3
				for end < len(p.in) && p.in[end] == q && end < i+5 {
					end++
				}
				return end, nil
			}
			i++
		}
		return 0, p.errf(start, "unterminated string")
	}
	for i := start + 1; i < len(p.in); i++ {
		switch p.in[i] {
		case '\\':
			if q == '"' {
				i++
			}
		case '\n':
			return 0, p.errf(start, "unterminated string")
		case q:
			return i + 1, nil
		}
	}
	return 0, p.errf(start, "unterminated string")
}

func (p *valueParser) array() (*Value, error) {
	start := p.pos
	p.pos++
	a := NewArray()
	expectValue := false
	for {
		tv := p.trivia()
		if p.pos >= len(p.in) {
			return nil, p.errf(start, "unterminated array")
		}
		if p.in[p.pos] == ']' {
			a.trailingComma = expectValue && a.Len() > 0
			a.trailing = rawSpanned(tv)
			p.pos++
			sp := token.NewSpan(start, p.pos)
			a.span = &sp
			return &Value{kind: ArrayKind, arr: a}, nil
		}
		if !expectValue && a.Len() > 0 {
			return nil, p.errf(p.pos, "expected `,` or `]` in array")
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		sv := p.trivia()
		d := v.Decor()
		d.setPrefixSpan(tv)
		d.setSuffixSpan(sv)
		a.values = append(a.values, valueItem(v))
		expectValue = false
		if p.pos < len(p.in) && p.in[p.pos] == ',' {
			p.pos++
			expectValue = true
		}
	}
}

func (p *valueParser) inlineTable() (*Value, error) {
	start := p.pos
	p.pos++
	t := NewInlineTable()
	pre := p.trivia()
	if p.pos >= len(p.in) {
		return nil, p.errf(start, "unterminated inline table")
	}
	if p.in[p.pos] == '}' {
		t.preamble = rawSpanned(pre)
		p.pos++
		sp := token.NewSpan(start, p.pos)
		t.span = &sp
		return &Value{kind: InlineTableKind, tbl: t}, nil
	}
	for {
		keys, err := p.keyPath(pre)
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.in) || p.in[p.pos] != '=' {
			return nil, p.errf(p.pos, "expected `=` after key")
		}
		p.pos++
		vpre := p.trivia()
		if p.pos >= len(p.in) {
			return nil, p.errf(start, "unterminated inline table")
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		vsuf := p.trivia()
		vd := v.Decor()
		vd.setPrefixSpan(vpre)
		vd.setSuffixSpan(vsuf)
		if err := bindDotted(t, keys, v); err != nil {
			return nil, p.errf(start, "%v", err)
		}
		if p.pos >= len(p.in) {
			return nil, p.errf(start, "unterminated inline table")
		}
		switch p.in[p.pos] {
		case ',':
			p.pos++
			pre = p.trivia()
			if p.pos < len(p.in) && p.in[p.pos] == '}' {
				return nil, p.errf(p.pos, "trailing comma in inline table")
			}
		case '}':
			p.pos++
			sp := token.NewSpan(start, p.pos)
			t.span = &sp
			return &Value{kind: InlineTableKind, tbl: t}, nil
		default:
			return nil, p.errf(p.pos, "expected `,` or `}` in inline table")
		}
	}
}

// keyPath parses a possibly dotted key sequence. pre is the trivia already
// consumed before the first key.
func (p *valueParser) keyPath(pre token.Span) ([]Key, error) {
	var keys []Key
	for {
		k, err := p.key()
		if err != nil {
			return nil, err
		}
		suf := p.trivia()
		k.Decor().setPrefixSpan(pre)
		k.Decor().setSuffixSpan(suf)
		keys = append(keys, k)
		if p.pos < len(p.in) && p.in[p.pos] == '.' {
			p.pos++
			pre = p.trivia()
			continue
		}
		return keys, nil
	}
}

func (p *valueParser) key() (Key, error) {
	start := p.pos
	if start >= len(p.in) {
		return Key{}, p.errf(start, "expected a key")
	}
	c := p.in[start]
	if c == '"' || c == '\'' {
		end, err := p.scanString()
		if err != nil {
			return Key{}, err
		}
		tok := p.in[start:end]
		name, err := token.Unquote(tok)
		if err != nil {
			return Key{}, p.errf(start, "%v", err)
		}
		p.pos = end
		return newKeySpanned(name, token.NewSpan(start, end)), nil
	}
	i := start
	for i < len(p.in) && isBareKeyChar(p.in[i]) {
		i++
	}
	if i == start {
		return Key{}, p.errf(start, "expected a key")
	}
	p.pos = i
	return newKeySpanned(p.in[start:i], token.NewSpan(start, i)), nil
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '-'
}

// bindDotted binds a dotted key path inside an inline table, materializing
// dotted intermediate tables.
func bindDotted(t *InlineTable, keys []Key, v *Value) error {
	cur := t
	for i := 0; i < len(keys)-1; i++ {
		k := keys[i]
		pr := cur.items.get(k.name)
		if pr == nil {
			sub := NewInlineTable()
			sub.SetDotted(true)
			pr = cur.items.insert(k, *valueItem(FromInlineTable(sub)))
			cur = sub
			continue
		}
		sub := pr.value.AsInlineTable()
		if sub == nil || !sub.IsDotted() {
			return fmt.Errorf("duplicate key %q", k.name)
		}
		cur = sub
	}
	last := keys[len(keys)-1]
	if cur.items.get(last.name) != nil {
		return fmt.Errorf("duplicate key %q", last.name)
	}
	cur.items.insert(last, *valueItem(v))
	return nil
}

// scalar parses a bare token: a boolean, a date-time, or a number.
func (p *valueParser) scalar() (*Value, error) {
	start := p.pos
	i := start
	for i < len(p.in) && isScalarChar(p.in[i]) {
		i++
	}
	if i == start {
		return nil, p.errf(start, "expected a value")
	}
	tok := p.in[start:i]
	// A full date may continue with a space-separated time.
	if isFullDate(tok) && i+1 < len(p.in) && p.in[i] == ' ' &&
		isDigit(p.in[i+1]) {
		j := i + 1
		for j < len(p.in) && isScalarChar(p.in[j]) {
			j++
		}
		if i+3 < j && p.in[i+3] == ':' {
			i = j
			tok = p.in[start:i]
		}
	}
	p.pos = i
	sp := token.NewSpan(start, i)

	switch {
	case tok == "true":
		return &Value{kind: BooleanKind, b: newFormattedSpanned(true, sp)}, nil
	case tok == "false":
		return &Value{kind: BooleanKind, b: newFormattedSpanned(false, sp)}, nil
	case len(tok) >= 5 && tok[4] == '-' && isDigit(tok[0]):
		dt, err := datetime.Parse(tok)
		if err != nil {
			return nil, p.errf(start, "%v", err)
		}
		return &Value{kind: DatetimeKind, dt: newFormattedSpanned(dt, sp)}, nil
	case len(tok) >= 3 && tok[2] == ':':
		dt, err := datetime.Parse(tok)
		if err != nil {
			return nil, p.errf(start, "%v", err)
		}
		return &Value{kind: DatetimeKind, dt: newFormattedSpanned(dt, sp)}, nil
	default:
		return p.number(tok, start, sp)
	}
}

func isScalarChar(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '+' || c == '-' || c == '.' || c == '_' || c == ':'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isFullDate(tok string) bool {
	return len(tok) == 10 && tok[4] == '-' && tok[7] == '-' &&
		isDigit(tok[0]) && isDigit(tok[1]) && isDigit(tok[2]) && isDigit(tok[3])
}

func (p *valueParser) number(tok string, start int, sp token.Span) (*Value, error) {
	body := tok
	neg := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	switch body {
	case "inf":
		f := math.Inf(1)
		if neg {
			f = math.Inf(-1)
		}
		return &Value{kind: FloatKind, f: newFormattedSpanned(f, sp)}, nil
	case "nan":
		return &Value{kind: FloatKind, f: newFormattedSpanned(math.NaN(), sp)}, nil
	}
	if len(body) > 1 && body[0] == '0' &&
		(body[1] == 'x' || body[1] == 'o' || body[1] == 'b') {
		if len(tok) > len(body) {
			return nil, p.errf(start, "sign not allowed on %q", tok)
		}
		base := map[byte]int{'x': 16, 'o': 8, 'b': 2}[body[1]]
		digitOf := map[byte]func(byte) bool{
			'x': isHexDigit, 'o': isOctalDigit, 'b': isBinaryDigit,
		}[body[1]]
		digits, err := stripUnderscores(body[2:], digitOf)
		if err != nil {
			return nil, p.errf(start, "bad number %q: %v", tok, err)
		}
		u, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return nil, p.errf(start, "bad number %q", tok)
		}
		return &Value{kind: IntegerKind, i: newFormattedSpanned(int64(u), sp)}, nil
	}
	if strings.ContainsAny(body, ".eE") {
		return p.float(tok, body, neg, start, sp)
	}
	digits, err := stripUnderscores(body, isDigit)
	if err != nil {
		return nil, p.errf(start, "bad number %q: %v", tok, err)
	}
	if len(digits) > 1 && digits[0] == '0' {
		return nil, p.errf(start, "leading zero in %q", tok)
	}
	// Parse with the sign attached so int64 min is representable.
	if neg {
		digits = "-" + digits
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, p.errf(start, "bad number %q", tok)
	}
	return &Value{kind: IntegerKind, i: newFormattedSpanned(n, sp)}, nil
}

func (p *valueParser) float(tok, body string, neg bool, start int, sp token.Span) (*Value, error) {
	cleaned, err := stripUnderscores(body, isDigit)
	if err != nil {
		return nil, p.errf(start, "bad number %q: %v", tok, err)
	}
	// TOML requires a digit on both sides of a decimal point.
	if dot := strings.IndexByte(cleaned, '.'); dot >= 0 {
		if dot == 0 || dot == len(cleaned)-1 ||
			!isDigit(cleaned[dot-1]) || !isDigit(cleaned[dot+1]) {
			return nil, p.errf(start, "bad float %q", tok)
		}
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, p.errf(start, "bad float %q", tok)
	}
	if neg {
		f = -f
	}
	return &Value{kind: FloatKind, f: newFormattedSpanned(f, sp)}, nil
}

// stripUnderscores removes digit separators, requiring each to sit between
// two digits of the number's base.
func stripUnderscores(s string, digit func(byte) bool) (string, error) {
	if !strings.ContainsRune(s, '_') {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 ||
			!digit(s[i-1]) || !digit(s[i+1]) {
			return "", fmt.Errorf("misplaced underscore")
		}
	}
	return b.String(), nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}
