package parse

import (
	"testing"

	"github.com/reweave/reweave/dom"
)

func TestParseDocument(t *testing.T) {
	root, err := ParseString(`<p>hi</p>`)
	if err != nil {
		t.Fatal(err)
	}
	// the parser synthesizes the document wrappers
	if root.Tag != "html" {
		t.Fatalf("root = <%s>, want <html>", root.Tag)
	}
	s, err := String(root)
	if err != nil {
		t.Fatal(err)
	}
	if s != `<html><head></head><body><p>hi</p></body></html>` {
		t.Errorf("serialized: %s", s)
	}
}

func TestFragmentForest(t *testing.T) {
	roots, err := FragmentString(`<span>x</span><span>y</span>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	for i, r := range roots {
		if r.Tag != "span" {
			t.Errorf("root %d = <%s>, want <span>", i, r.Tag)
		}
	}
	if roots[0].TextContent() != "x" || roots[1].TextContent() != "y" {
		t.Errorf("contents = %q, %q", roots[0].TextContent(), roots[1].TextContent())
	}
}

type roundTripTest struct {
	in string
}

var roundTripTests = []roundTripTest{
	{in: `<div class="a"><p>hi</p></div>`},
	{in: `<ul><li>a</li><li>b</li></ul>`},
	{in: `<a href="#x">t</a>`},
	{in: `x<em>y</em>z`},
}

func TestFragmentRoundTrip(t *testing.T) {
	for i, tst := range roundTripTests {
		roots, err := FragmentString(tst.in)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		out, err := ForestString(roots)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if out != tst.in {
			t.Errorf("test %d: round trip %q -> %q", i, tst.in, out)
		}
	}
}

func TestSerializeEscapes(t *testing.T) {
	s, err := String(dom.Elem("p", dom.FromText("a<b&c")))
	if err != nil {
		t.Fatal(err)
	}
	if s != `<p>a&lt;b&amp;c</p>` {
		t.Errorf("serialized: %s", s)
	}
}

func TestCommentsDropped(t *testing.T) {
	roots, err := FragmentString(`<div><!-- c -->x</div>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots", len(roots))
	}
	kids := roots[0].Kids
	if len(kids) != 1 || kids[0].Type != dom.TextType || kids[0].Text != "x" {
		t.Errorf("kids = %v, want just text x", kids)
	}
}

func TestFragmentInContext(t *testing.T) {
	roots, err := FragmentString(`<li>a</li><li>b</li>`, InContext("ul"))
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	for i, r := range roots {
		if r.Tag != "li" {
			t.Errorf("root %d = <%s>, want <li>", i, r.Tag)
		}
	}
}

func TestFragmentRecovery(t *testing.T) {
	// unclosed tags are recovered, not rejected
	roots, err := FragmentString(`<div><p>hi`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ForestString(roots)
	if err != nil {
		t.Fatal(err)
	}
	if out != `<div><p>hi</p></div>` {
		t.Errorf("recovered as %s", out)
	}
}
