package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestItemZeroValueIsNone(t *testing.T) {
	var it Item
	if !it.IsNone() {
		t.Fatalf("zero item kind = %v", it.Kind())
	}
	if it.String() != "" {
		t.Errorf("none renders %q", it.String())
	}
	if it.TypeName() != "none" {
		t.Errorf("type name = %q", it.TypeName())
	}
}

func TestIntoValueFromTable(t *testing.T) {
	it := TableItem()
	it.AsTable().Insert("a", ValueItem(1))
	it.AsTable().Insert("b", ValueItem("x"))

	v, ok := it.IntoValue()
	if !ok {
		t.Fatal("conversion failed")
	}
	if !it.IsNone() {
		t.Errorf("item not reset after conversion")
	}
	tbl := v.AsInlineTable()
	if tbl == nil {
		t.Fatal("result is not an inline table")
	}
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := v.String(); got != `{ a = 1, b = "x" }` {
		t.Errorf("render = %q", got)
	}
}

func TestIntoValueFailureLeavesItem(t *testing.T) {
	var it Item
	if _, ok := it.IntoValue(); ok {
		t.Fatal("none converted to value")
	}
	if !it.IsNone() {
		t.Errorf("failed conversion changed the item")
	}
}

func TestIntoTableFromInline(t *testing.T) {
	it := ValueItem(map[string]any{"x": 1})
	tbl, ok := it.IntoTable()
	if !ok {
		t.Fatal("conversion failed")
	}
	if !it.IsNone() {
		t.Errorf("item not reset after conversion")
	}
	if !tbl.ContainsKey("x") {
		t.Errorf("keys lost in conversion")
	}

	bad := ValueItem(42)
	if _, ok := bad.IntoTable(); ok {
		t.Fatal("integer converted to table")
	}
	if bad.TypeName() != "integer" {
		t.Errorf("failed conversion changed the item: %v", bad.TypeName())
	}
}

func TestIntoArrayOfTables(t *testing.T) {
	arr := NewArray()
	arr.Push(map[string]any{"a": 1})
	arr.Push(map[string]any{"a": 2})
	it := ValueItem(arr)

	aot, ok := it.IntoArrayOfTables()
	if !ok {
		t.Fatal("conversion failed")
	}
	if !it.IsNone() {
		t.Errorf("item not reset after conversion")
	}
	if aot.Len() != 2 {
		t.Fatalf("len = %d", aot.Len())
	}
	if !aot.Get(1).ContainsKey("a") {
		t.Errorf("element lost its keys")
	}
}

func TestIntoArrayOfTablesRejectsEmptyArray(t *testing.T) {
	it := ValueItem(NewArray())
	if _, ok := it.IntoArrayOfTables(); ok {
		t.Fatal("empty array converted")
	}
	if it.AsArray() == nil {
		t.Errorf("failed conversion changed the item")
	}
}

func TestIntoArrayOfTablesRejectsMixedArray(t *testing.T) {
	arr := NewArray()
	arr.Push(map[string]any{"a": 1})
	arr.Push(2)
	it := ValueItem(arr)
	if _, ok := it.IntoArrayOfTables(); ok {
		t.Fatal("mixed array converted")
	}
	if it.AsArray() == nil || it.AsArray().Len() != 2 {
		t.Errorf("failed conversion changed the item")
	}
}

func TestAoTRoundTripKeepsElements(t *testing.T) {
	it := ArrayOfTablesItem()
	tb := NewTable()
	tb.Insert("n", ValueItem(1))
	it.AsArrayOfTables().Push(tb)

	v, ok := it.IntoValue()
	if !ok {
		t.Fatal("into value failed")
	}
	back := valueItem(v)
	aot, ok := back.IntoArrayOfTables()
	if !ok {
		t.Fatal("round trip back failed")
	}
	n, _ := aot.Get(0).Get("n").AsInteger()
	if n != 1 {
		t.Errorf("element value = %d", n)
	}
}

func TestOrInsert(t *testing.T) {
	var it Item
	got := it.OrInsert(ValueItem(5))
	if i, _ := got.AsInteger(); i != 5 {
		t.Fatalf("or-insert on none = %v", got.TypeName())
	}
	// A populated item is left alone.
	got = it.OrInsert(ValueItem("other"))
	if i, _ := got.AsInteger(); i != 5 {
		t.Errorf("or-insert replaced a populated item: %v", got.TypeName())
	}
}

func TestItemGet(t *testing.T) {
	it := TableItem()
	inner := ValueItem(map[string]any{"b": []any{10, 20}})
	it.AsTable().Insert("a", inner)

	leaf := it.Get("a").Get("b").Get(1)
	if leaf == nil {
		t.Fatal("path lookup failed")
	}
	n, _ := leaf.AsInteger()
	if n != 20 {
		t.Errorf("leaf = %d", n)
	}
	if it.Get("missing") != nil {
		t.Errorf("missing key did not return nil")
	}
	if it.Get(0) != nil {
		t.Errorf("int index on a table did not return nil")
	}
}

func TestAsTableLike(t *testing.T) {
	if ValueItem(1).AsTableLike() != nil {
		t.Errorf("integer item is table-like")
	}
	tl := TableItem().AsTableLike()
	if tl == nil {
		t.Fatal("table item is not table-like")
	}
	tl.InsertItem("k", ValueItem(true))
	if !tl.ContainsKey("k") {
		t.Errorf("insert through interface lost the key")
	}

	itl := ValueItem(NewInlineTable()).AsTableLike()
	if itl == nil {
		t.Fatal("inline table item is not table-like")
	}
	itl.InsertItem("k", ValueItem(1))
	if got := itl.Len(); got != 1 {
		t.Errorf("len = %d", got)
	}
	if removed := itl.RemoveItem("k"); removed == nil {
		t.Errorf("remove through interface returned nil")
	}
}

func TestParseItem(t *testing.T) {
	it, err := ParseItem("[1, 2]")
	if err != nil {
		t.Fatal(err)
	}
	if it.AsArray() == nil {
		t.Fatalf("kind = %v", it.TypeName())
	}
	if _, err := ParseItem("not ~valid"); err == nil {
		t.Errorf("bad input parsed")
	}
}
