package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInlineTableInsert(t *testing.T) {
	tbl := NewInlineTable()
	if old := tbl.Insert("a", 1); old != nil {
		t.Errorf("fresh insert returned a value")
	}
	tbl.Insert("b", "x")
	if got := FromInlineTable(tbl).String(); got != `{ a = 1, b = "x" }` {
		t.Errorf("render = %q", got)
	}

	old := tbl.Insert("a", 10)
	if old == nil {
		t.Fatal("replacing insert returned nil")
	}
	if n, _ := old.AsInteger(); n != 1 {
		t.Errorf("old value = %d", n)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Keys()); diff != "" {
		t.Errorf("replace moved the key (-want +got):\n%s", diff)
	}
}

func TestInlineTableInsertKeepsKeyTrivia(t *testing.T) {
	v, err := ParseValue(`{ first = 1 , second = 2 }`)
	if err != nil {
		t.Fatal(err)
	}
	tbl := v.AsInlineTable()
	tbl.Insert("first", 7)
	n, _ := tbl.Get("first").AsInteger()
	if n != 7 {
		t.Fatalf("value = %d", n)
	}
	// The replacement value takes default layout, the keys keep theirs.
	if got := v.String(); got != `{ first = 7, second = 2 }` {
		t.Errorf("render = %q", got)
	}
}

func TestInlineTableRemoveAndGetOrInsert(t *testing.T) {
	tbl := NewInlineTable()
	tbl.Insert("a", 1)
	removed := tbl.Remove("a")
	if removed == nil {
		t.Fatal("remove returned nil")
	}
	if tbl.ContainsKey("a") {
		t.Errorf("key survived remove")
	}
	if tbl.Remove("a") != nil {
		t.Errorf("second remove found a binding")
	}

	got := tbl.GetOrInsert("b", 5)
	if n, _ := got.AsInteger(); n != 5 {
		t.Fatalf("inserted value = %d", n)
	}
	got = tbl.GetOrInsert("b", 99)
	if n, _ := got.AsInteger(); n != 5 {
		t.Errorf("existing binding was replaced: %d", n)
	}
}

func TestInlineTableSortValues(t *testing.T) {
	tbl := NewInlineTable()
	tbl.Insert("c", 1)
	tbl.Insert("a", map[string]any{"z": 1, "m": 2})
	tbl.Insert("b", 3)
	tbl.SortValues()
	if diff := cmp.Diff([]string{"a", "b", "c"}, tbl.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"m", "z"}, tbl.Get("a").AsInlineTable().Keys()); diff != "" {
		t.Errorf("nested keys (-want +got):\n%s", diff)
	}
}

func TestInlineTableFmt(t *testing.T) {
	v, err := ParseValue("{a=1 ,  b = 2}")
	if err != nil {
		t.Fatal(err)
	}
	tbl := v.AsInlineTable()
	tbl.Fmt()
	if got := v.String(); got != "{ a = 1, b = 2 }" {
		t.Errorf("render = %q", got)
	}
}

func TestInlineTablePreamble(t *testing.T) {
	v, err := ParseValue("{ # nothing here\n}")
	if err != nil {
		t.Fatal(err)
	}
	tbl := v.AsInlineTable()
	if got := tbl.Preamble().OrDefault(""); got != " # nothing here\n" {
		t.Errorf("preamble = %q", got)
	}
	if got := v.String(); got != "{ # nothing here\n}" {
		t.Errorf("render = %q", got)
	}
}

func TestInlineTableIntoTableAndBack(t *testing.T) {
	v, err := ParseValue(`{ a = 1, b = 2 }`)
	if err != nil {
		t.Fatal(err)
	}
	std := v.AsInlineTable().IntoTable()
	if diff := cmp.Diff([]string{"a", "b"}, std.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	back := std.IntoInlineTable()
	if got := FromInlineTable(back).String(); got != `{ a = 1, b = 2 }` {
		t.Errorf("render = %q", got)
	}
}
