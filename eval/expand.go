package eval

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomlworks/tomledit/tree"
)

// ExpandValue evaluates expressions embedded in v in place.
//
// A string value of the form .[expr] is replaced by the value the
// expression produces, which may change its type. Any other string has its
// $[...] segments interpolated. Arrays and inline tables are expanded
// element by element.
func ExpandValue(v *tree.Value, env Env) error {
	switch v.Kind() {
	case tree.StringKind:
		s, _ := v.AsString()
		if raw := GetRaw(s); raw != "" {
			repl, err := Eval(raw, env)
			if err != nil {
				return err
			}
			// Keep the trivia of the string being replaced.
			var pre, suf *string
			if p := v.Decor().Prefix(); p != nil {
				if s, ok := p.Get(); ok {
					pre = &s
				}
			}
			if p := v.Decor().Suffix(); p != nil {
				if s, ok := p.Get(); ok {
					suf = &s
				}
			}
			*v = *repl
			d := v.Decor()
			d.Clear()
			if pre != nil {
				d.SetPrefix(*pre)
			}
			if suf != nil {
				d.SetSuffix(*suf)
			}
			return nil
		}
		out, err := ExpandString(s, env)
		if err != nil {
			return fmt.Errorf("error expanding %q: %w", s, err)
		}
		if out != s {
			v.FormattedString().SetValue(out)
		}
		return nil
	case tree.ArrayKind:
		for _, el := range v.AsArray().Values() {
			if err := ExpandValue(el, env); err != nil {
				return err
			}
		}
		return nil
	case tree.InlineTableKind:
		tbl := v.AsInlineTable()
		for _, k := range tbl.Keys() {
			if err := ExpandValue(tbl.Get(k), env); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// ExpandAny expands expressions in plain Go data the way ExpandValue does
// for trees.
func ExpandAny(v any, env Env) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		for k := range x {
			vv, err := ExpandAny(x[k], env)
			if err != nil {
				return nil, err
			}
			x[k] = vv
		}
		return x, nil
	case []any:
		for i := range x {
			vv, err := ExpandAny(x[i], env)
			if err != nil {
				return nil, err
			}
			x[i] = vv
		}
		return x, nil
	case string:
		if raw := GetRaw(x); raw != "" {
			return evalAny(raw, env)
		}
		return ExpandString(x, env)
	default:
		return x, nil
	}
}

// ExpandString interpolates $[...] expressions in a string.
//
// Within an expression, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is kept as a
// literal string rather than treated as an expression.
func ExpandString(v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1
	i := 0
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$':
			if next == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				key := strings.TrimSpace(string(keyBuf))
				x, err := evalAny(key, env)
				if err != nil {
					return "", err
				}
				anyBytes, err := anyToBytes(x)
				if err != nil {
					return "", fmt.Errorf("could not render result of %s: %w", key, err)
				}
				outBuf = append(outBuf, anyBytes...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}
	if v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:n]...)
		return string(outBuf), nil
	}
	key := strings.TrimSpace(string(keyBuf))
	x, err := evalAny(key, env)
	if err != nil {
		return "", err
	}
	anyBytes, err := anyToBytes(x)
	if err != nil {
		return "", fmt.Errorf("could not render result of %s: %w", key, err)
	}
	outBuf = append(outBuf, anyBytes...)
	return string(outBuf), nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'g', -1, 64)), nil
	default:
		return json.Marshal(v)
	}
}
