package dom

import "testing"

type addClassTest struct {
	in   string
	name string
	res  string
}

var addClassTests = []addClassTest{
	{in: "", name: "a", res: "a"},
	{in: "a", name: "a", res: "a"},
	{in: "a b", name: "c", res: "a b c"},
	{in: "a  b", name: "b", res: "a  b"},
}

func TestAddClass(t *testing.T) {
	for i, tst := range addClassTests {
		n := Elem("div")
		if tst.in != "" {
			n.SetAttr("class", tst.in)
		}
		n.AddClass(tst.name)
		got, _ := n.Attr("class")
		if got != tst.res {
			t.Errorf("test %d: AddClass(%q) on %q: got %q, want %q",
				i, tst.name, tst.in, got, tst.res)
		}
	}
}

type removeClassTest struct {
	in   string
	name string
	res  string
	gone bool
}

var removeClassTests = []removeClassTest{
	{in: "a", name: "a", gone: true},
	{in: "a b c", name: "b", res: "a c"},
	{in: "a b", name: "z", res: "a b"},
	{in: "a a b", name: "a", res: "b"},
}

func TestRemoveClass(t *testing.T) {
	for i, tst := range removeClassTests {
		n := Elem("div").WithAttr("class", tst.in)
		n.RemoveClass(tst.name)
		got, ok := n.Attr("class")
		if tst.gone {
			if ok {
				t.Errorf("test %d: class attr still present: %q", i, got)
			}
			continue
		}
		if got != tst.res {
			t.Errorf("test %d: RemoveClass(%q) on %q: got %q, want %q",
				i, tst.name, tst.in, got, tst.res)
		}
	}
}

func TestHasClass(t *testing.T) {
	n := Elem("div").WithAttr("class", "foo bar")
	if !n.HasClass("foo") || !n.HasClass("bar") {
		t.Error("expected foo and bar")
	}
	if n.HasClass("fo") || n.HasClass("") {
		t.Error("partial or empty token matched")
	}
	if Elem("div").HasClass("foo") {
		t.Error("classless element matched")
	}
}
