package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableInsertAndRemove(t *testing.T) {
	tb := NewTable()
	if old := tb.Insert("a", ValueItem(1)); old != nil {
		t.Errorf("fresh insert returned %v", old.TypeName())
	}
	tb.Insert("b", ValueItem(2))

	old := tb.Insert("a", ValueItem(10))
	if old == nil {
		t.Fatal("replacing insert returned nil")
	}
	if n, _ := old.AsInteger(); n != 1 {
		t.Errorf("old value = %d", n)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tb.Keys()); diff != "" {
		t.Errorf("replace moved the key (-want +got):\n%s", diff)
	}

	removed := tb.Remove("a")
	if removed == nil {
		t.Fatal("remove returned nil")
	}
	if n, _ := removed.AsInteger(); n != 10 {
		t.Errorf("removed value = %d", n)
	}
	if tb.Remove("a") != nil {
		t.Errorf("second remove found a binding")
	}
	if diff := cmp.Diff([]string{"b"}, tb.Keys()); diff != "" {
		t.Errorf("keys after remove (-want +got):\n%s", diff)
	}
}

func TestTableGetOrInsert(t *testing.T) {
	tb := NewTable()
	got := tb.GetOrInsert("x", ValueItem(1))
	if n, _ := got.AsInteger(); n != 1 {
		t.Fatalf("inserted value = %d", n)
	}
	got = tb.GetOrInsert("x", ValueItem(99))
	if n, _ := got.AsInteger(); n != 1 {
		t.Errorf("existing binding was replaced: %d", n)
	}
	if tb.Len() != 1 {
		t.Errorf("len = %d", tb.Len())
	}
}

func TestTableContainsByKind(t *testing.T) {
	tb := NewTable()
	tb.Insert("v", ValueItem(1))
	tb.Insert("t", TableItem())
	tb.Insert("a", ArrayOfTablesItem())

	if !tb.ContainsKey("v") || tb.ContainsKey("t") || tb.ContainsKey("a") {
		t.Errorf("ContainsKey misclassified")
	}
	if !tb.ContainsTable("t") || tb.ContainsTable("v") {
		t.Errorf("ContainsTable misclassified")
	}
	if !tb.ContainsArrayOfTables("a") || tb.ContainsArrayOfTables("t") {
		t.Errorf("ContainsArrayOfTables misclassified")
	}
}

func TestTableSortValues(t *testing.T) {
	tb := NewTable()
	tb.Insert("zebra", ValueItem(1))
	tb.Insert("apple", ValueItem(2))
	sub := TableItem()
	sub.AsTable().Insert("y", ValueItem(1))
	sub.AsTable().Insert("x", ValueItem(2))
	tb.Insert("mid", sub)

	tb.SortValues()
	if diff := cmp.Diff([]string{"apple", "mid", "zebra"}, tb.Keys()); diff != "" {
		t.Errorf("top keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, tb.Get("mid").AsTable().Keys()); diff != "" {
		t.Errorf("nested keys (-want +got):\n%s", diff)
	}
}

func TestTableIntoInlineTable(t *testing.T) {
	tb := NewTable()
	tb.Insert("a", ValueItem(1))
	sub := TableItem()
	sub.AsTable().Insert("x", ValueItem(true))
	tb.Insert("b", sub)

	inline := tb.IntoInlineTable()
	got := FromInlineTable(inline).String()
	want := `{ a = 1, b = { x = true } }`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestTablePositionAndImplicit(t *testing.T) {
	tb := NewTable()
	if tb.Position() != nil {
		t.Errorf("fresh table has a position")
	}
	tb.SetPosition(3)
	if p := tb.Position(); p == nil || *p != 3 {
		t.Errorf("position = %v", p)
	}
	if tb.IsImplicit() {
		t.Errorf("fresh table is implicit")
	}
	tb.SetImplicit(true)
	if !tb.IsImplicit() {
		t.Errorf("implicit flag not set")
	}
}

func TestTableCloneIsDeep(t *testing.T) {
	tb := NewTable()
	tb.Insert("a", ValueItem(1))
	c := tb.Clone()
	c.Insert("b", ValueItem(2))
	c.Get("a").AsValue().FormattedInteger().SetValue(9)

	if tb.Len() != 1 {
		t.Errorf("clone insert leaked into original")
	}
	if n, _ := tb.Get("a").AsInteger(); n != 1 {
		t.Errorf("clone mutation leaked into original: %d", n)
	}
}
