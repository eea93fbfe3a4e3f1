package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomlworks/tomledit/datetime"
)

func TestDowncastsAreTotal(t *testing.T) {
	values := map[ValueKind]*Value{
		StringKind:      FromString("x"),
		IntegerKind:     FromInteger(1),
		FloatKind:       FromFloat(1.5),
		BooleanKind:     FromBool(true),
		DatetimeKind:    FromDatetime(datetime.Datetime{Date: &datetime.Date{Year: 2020, Month: 1, Day: 2}}),
		ArrayKind:       FromArray(NewArray()),
		InlineTableKind: FromInlineTable(NewInlineTable()),
	}
	for kind, v := range values {
		if v.Kind() != kind {
			t.Errorf("%v: kind = %v", kind, v.Kind())
		}
		succeeded := 0
		if _, ok := v.AsString(); ok {
			succeeded++
		}
		if _, ok := v.AsInteger(); ok {
			succeeded++
		}
		if _, ok := v.AsFloat(); ok {
			succeeded++
		}
		if _, ok := v.AsBool(); ok {
			succeeded++
		}
		if _, ok := v.AsDatetime(); ok {
			succeeded++
		}
		if v.AsArray() != nil {
			succeeded++
		}
		if v.AsInlineTable() != nil {
			succeeded++
		}
		if succeeded != 1 {
			t.Errorf("%v: %d downcasts succeeded, want exactly 1", kind, succeeded)
		}
	}
}

func TestValueOf(t *testing.T) {
	if s := ValueOf("hi").String(); s != `"hi"` {
		t.Errorf("string = %q", s)
	}
	if s := ValueOf(7).String(); s != "7" {
		t.Errorf("int = %q", s)
	}
	if s := ValueOf(2.5).String(); s != "2.5" {
		t.Errorf("float = %q", s)
	}
	if s := ValueOf(1.0).String(); s != "1.0" {
		t.Errorf("integral float = %q", s)
	}
	if s := ValueOf(false).String(); s != "false" {
		t.Errorf("bool = %q", s)
	}
	if s := ValueOf([]any{1, "a"}).String(); s != `[1, "a"]` {
		t.Errorf("slice = %q", s)
	}
	// Map keys render sorted.
	s := ValueOf(map[string]any{"b": 2, "a": 1}).String()
	if s != "{ a = 1, b = 2 }" {
		t.Errorf("map = %q", s)
	}
}

func TestValueOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ValueOf(chan) did not panic")
		}
	}()
	ValueOf(make(chan int))
}

func TestCollect(t *testing.T) {
	v := CollectValues([]string{"node", "mouth"})
	if got := v.String(); got != `["node", "mouth"]` {
		t.Errorf("CollectValues = %q", got)
	}
	v = CollectPairs([]KV{{"b", 2}, {"a", 1}})
	tbl := v.AsInlineTable()
	if diff := cmp.Diff([]string{"b", "a"}, tbl.Keys()); diff != "" {
		t.Errorf("CollectPairs keeps order (-want +got):\n%s", diff)
	}
}

func TestDecorate(t *testing.T) {
	v, err := ParseValue("42")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Decorated(" ", "").String(); got != " 42" {
		t.Errorf("decorated = %q", got)
	}
	// Decorate overwrites both sides.
	v.Decorate("", "\t")
	if got := v.String(); got != "42\t" {
		t.Errorf("redecorated = %q", got)
	}
}

func TestSetValueDropsRepr(t *testing.T) {
	v, err := ParseValue("0x2A")
	if err != nil {
		t.Fatal(err)
	}
	f := v.FormattedInteger()
	if f.Value() != 42 {
		t.Fatalf("value = %d", f.Value())
	}
	f.SetValue(43)
	if got := v.String(); got != "43" {
		t.Errorf("after SetValue: %q", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	v, err := ParseValue(`{ a = [1, 2] }`)
	if err != nil {
		t.Fatal(err)
	}
	c := v.Clone()
	c.AsInlineTable().Get("a").AsArray().Push(3)
	if v.AsInlineTable().Get("a").AsArray().Len() != 2 {
		t.Errorf("clone shares array storage")
	}
	if c.AsInlineTable().Get("a").AsArray().Len() != 3 {
		t.Errorf("clone did not grow")
	}
}

func TestSpanAndDespan(t *testing.T) {
	in := "  [1, 2]  "
	p := &valueParser{in: in}
	pre := p.trivia()
	v, err := p.value()
	if err != nil {
		t.Fatal(err)
	}
	suf := p.trivia()
	d := v.Decor()
	d.setPrefixSpan(pre)
	d.setSuffixSpan(suf)

	sp := v.Span()
	if sp == nil || sp.Start != 2 || sp.End != 8 {
		t.Fatalf("span = %+v", sp)
	}
	v.Despan(in)
	if v.Span() != nil {
		t.Errorf("span survives despan")
	}
	if got := v.String(); got != in {
		t.Errorf("despanned render = %q", got)
	}
	// Despan is idempotent.
	v.Despan("different input entirely")
	if got := v.String(); got != in {
		t.Errorf("second despan changed render: %q", got)
	}
}
