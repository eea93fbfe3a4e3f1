package tree

import (
	"strings"
	"testing"
)

func TestEncodeValueItem(t *testing.T) {
	var b strings.Builder
	if err := Encode(ValueItem(42), &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "42" {
		t.Errorf("render = %q", b.String())
	}
}

func TestEncodeDocument(t *testing.T) {
	root := NewTable()
	root.Insert("a", ValueItem(1))

	server := TableItem()
	server.AsTable().Insert("host", ValueItem("x"))
	root.Insert("server", server)

	points := ArrayOfTablesItem()
	for _, n := range []int{1, 2} {
		pt := NewTable()
		pt.Insert("x", ValueItem(n))
		points.AsArrayOfTables().Push(pt)
	}
	root.Insert("points", points)

	var b strings.Builder
	if err := Encode(tableItem(root), &b); err != nil {
		t.Fatal(err)
	}
	want := "a = 1\n" +
		"\n[server]\n" +
		"host = \"x\"\n" +
		"\n[[points]]\n" +
		"x = 1\n" +
		"\n[[points]]\n" +
		"x = 2\n"
	if b.String() != want {
		t.Errorf("render:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestEncodeTableNestedInArrayElement(t *testing.T) {
	child := TableItem()
	child.AsTable().Insert("y", ValueItem(2))

	el := NewTable()
	el.Insert("x", ValueItem(1))
	el.Insert("child", child)

	servers := ArrayOfTablesItem()
	servers.AsArrayOfTables().Push(el)

	root := NewTable()
	root.Insert("servers", servers)

	var b strings.Builder
	if err := Encode(tableItem(root), &b); err != nil {
		t.Fatal(err)
	}
	want := "[[servers]]\n" +
		"x = 1\n" +
		"\n[servers.child]\n" +
		"y = 2\n"
	if b.String() != want {
		t.Errorf("render:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestEncodeSkipsImplicitEmptyTables(t *testing.T) {
	inner := TableItem()
	inner.AsTable().Insert("k", ValueItem(1))

	outer := TableItem()
	outer.AsTable().SetImplicit(true)
	outer.AsTable().Insert("inner", inner)

	root := NewTable()
	root.Insert("outer", outer)

	var b strings.Builder
	if err := Encode(tableItem(root), &b); err != nil {
		t.Fatal(err)
	}
	want := "[outer.inner]\nk = 1\n"
	if b.String() != want {
		t.Errorf("render = %q, want %q", b.String(), want)
	}
}

func TestEncodeDottedTable(t *testing.T) {
	dotted := TableItem()
	dotted.AsTable().SetDotted(true)
	dotted.AsTable().Insert("b", ValueItem(1))

	root := NewTable()
	root.Insert("a", dotted)

	var b strings.Builder
	if err := Encode(tableItem(root), &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "a.b = 1\n" {
		t.Errorf("render = %q", b.String())
	}
}

func TestEncodeWithColors(t *testing.T) {
	root := NewTable()
	root.Insert("a", ValueItem(1))

	var b strings.Builder
	if err := Encode(tableItem(root), &b, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	// Color codes depend on the terminal; the text itself must survive.
	if !strings.Contains(b.String(), "a") || !strings.Contains(b.String(), "1") {
		t.Errorf("render = %q", b.String())
	}
}
