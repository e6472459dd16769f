package reweave

import (
	"regexp"
	"testing"

	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/parse"
	"github.com/reweave/reweave/zipper"
)

// rootLoc parses markup as a fragment and returns a cursor on its
// first root.
func rootLoc(t *testing.T, markup string) zipper.Loc {
	t.Helper()
	roots, err := parse.FragmentString(markup)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) == 0 {
		t.Fatalf("no roots in %q", markup)
	}
	return zipper.Zip(roots[0])
}

type selTest struct {
	in  string
	sel Selector
	res bool
}

var selTests = []selTest{
	{in: `<p>x</p>`, sel: Any(), res: true},
	{in: `<p>x</p>`, sel: Tag("p"), res: true},
	{in: `<p>x</p>`, sel: Tag("div"), res: false},
	{in: `<a href="#">x</a>`, sel: Attr("href", "#"), res: true},
	{in: `<a href="#">x</a>`, sel: Attr("href", "#top"), res: false},
	{in: `<a>x</a>`, sel: Attr("href", "#"), res: false},
	{in: `<a href="#">x</a>`, sel: HasAttr("href"), res: true},
	{in: `<a>x</a>`, sel: HasAttr("href"), res: false},
	{in: `<a href="https://x.io">x</a>`, sel: AttrRe("href", regexp.MustCompile(`^https:`)), res: true},
	{in: `<a href="http://x.io">x</a>`, sel: AttrRe("href", regexp.MustCompile(`^https:`)), res: false},
	{in: `<div class="a b">x</div>`, sel: Class("a"), res: true},
	{in: `<div class="a b">x</div>`, sel: Class("b", "a"), res: true},
	{in: `<div class="a b">x</div>`, sel: Class("a", "c"), res: false},
	{in: `<div class="ab">x</div>`, sel: Class("a"), res: false},
	{in: `<div class="nav-item">x</div>`, sel: ClassRe(regexp.MustCompile(`^nav-`)), res: true},
	{in: `<div class="item">x</div>`, sel: ClassRe(regexp.MustCompile(`^nav-`)), res: false},
	{in: `<div id="main">x</div>`, sel: ID("main"), res: true},
	{in: `<div id="main">x</div>`, sel: ID("other"), res: false},
	{in: `<p>x</p>`, sel: Not(Tag("div")), res: true},
	{in: `<p>x</p>`, sel: Not(Tag("p")), res: false},
	{in: `<p class="a">x</p>`, sel: And(Tag("p"), Class("a")), res: true},
	{in: `<p class="a">x</p>`, sel: And(Tag("p"), Class("b")), res: false},
	{in: `<p>x</p>`, sel: Or(Tag("div"), Tag("p")), res: true},
	{in: `<p>x</p>`, sel: Or(Tag("div"), Tag("em")), res: false},
}

func TestSelectors(t *testing.T) {
	for i, tst := range selTests {
		got, err := tst.sel(rootLoc(t, tst.in))
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if got != tst.res {
			t.Errorf("test %d: selector on %q: got %v, want %v", i, tst.in, got, tst.res)
		}
	}
}

func TestSelectorsOnText(t *testing.T) {
	loc := zipper.Zip(dom.FromText("x"))
	for i, sel := range []Selector{Tag("p"), Class("a"), Attr("k", "v"), ID("x")} {
		got, err := sel(loc)
		if err != nil {
			t.Fatalf("selector %d: %v", i, err)
		}
		if got {
			t.Errorf("selector %d matched a text node", i)
		}
	}
}

func TestSelect(t *testing.T) {
	roots, err := parse.FragmentString(
		`<div><p class="a">1</p><p>2</p></div><p class="a">3</p>`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Select(roots, Class("a"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].TextContent() != "1" || got[1].TextContent() != "3" {
		t.Errorf("matches = %q, %q", got[0].TextContent(), got[1].TextContent())
	}
}
