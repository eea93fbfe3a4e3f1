package tree

import (
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ValueKind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SepColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func ValueKinds() []ValueKind {
	return []ValueKind{
		StringKind,
		IntegerKind,
		FloatKind,
		BooleanKind,
		DatetimeKind,
		ArrayKind,
		InlineTableKind,
	}
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ValueKinds() {
		able := Colorable{
			Kind: k,
			Attr: KeyColor,
		}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = HeaderColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = IntegerKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = BooleanKind
	colors.Map[able] = color.CyanString

	able.Kind = DatetimeKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ValueKind, a ColorAttr, s string) string {
	res := c.Get(k, a)(s)
	return res
}

func (c *Colors) Get(k ValueKind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
