package zipper

import (
	"strings"
	"testing"

	"github.com/reweave/reweave/dom"
)

// a small tree used throughout: <a><b>x</b><c></c></a>
func testTree() *dom.Node {
	return dom.Elem("a",
		dom.Elem("b", dom.FromText("x")),
		dom.Elem("c"),
	)
}

func label(n *dom.Node) string {
	if n.Type == dom.TextType {
		return n.Text
	}
	return n.Tag
}

func walkLabels(loc Loc) string {
	var res []string
	for !loc.IsEnd() {
		res = append(res, label(loc.Node()))
		loc = loc.Next()
	}
	return strings.Join(res, ",")
}

func TestNextOrder(t *testing.T) {
	if got := walkLabels(Zip(testTree())); got != "a,b,x,c" {
		t.Errorf("walk = %s, want a,b,x,c", got)
	}
}

func TestNavigation(t *testing.T) {
	loc := Zip(testTree())
	if !loc.IsTop() {
		t.Error("root not top")
	}
	if _, ok := loc.Up(); ok {
		t.Error("Up from root succeeded")
	}
	if _, ok := loc.Left(); ok {
		t.Error("Left from root succeeded")
	}
	b, ok := loc.Down()
	if !ok || label(b.Node()) != "b" {
		t.Fatalf("Down = %v, %v", label(b.Node()), ok)
	}
	c, ok := b.Right()
	if !ok || label(c.Node()) != "c" {
		t.Fatalf("Right = %v, %v", label(c.Node()), ok)
	}
	b2, ok := c.Left()
	if !ok || label(b2.Node()) != "b" {
		t.Fatalf("Left = %v, %v", label(b2.Node()), ok)
	}
	up, ok := c.Up()
	if !ok || label(up.Node()) != "a" {
		t.Fatalf("Up = %v, %v", label(up.Node()), ok)
	}
	if !up.IsTop() {
		t.Error("rebuilt root not top")
	}
}

func TestReplacePersistence(t *testing.T) {
	tree := testTree()
	b, _ := Zip(tree).Down()
	edited := b.Replace(dom.Elem("z"))
	root := edited.Root()
	if label(root.Kids[0]) != "z" {
		t.Errorf("edited tree first kid = %s, want z", label(root.Kids[0]))
	}
	// source tree untouched
	if label(tree.Kids[0]) != "b" {
		t.Errorf("source tree first kid = %s, want b", label(tree.Kids[0]))
	}
	if root == tree {
		t.Error("edit returned the source root")
	}
	// unmodified right sibling shared, not copied
	if root.Kids[1] != tree.Kids[1] {
		t.Error("unmodified sibling was copied")
	}
}

func TestReplaceManySplice(t *testing.T) {
	b, _ := Zip(testTree()).Down()
	loc := b.ReplaceMany([]*dom.Node{
		dom.Elem("e1"),
		dom.Elem("e2"),
		dom.Elem("e3", dom.FromText("t")),
	})
	if !loc.Spliced() {
		t.Error("splice marker not set")
	}
	if label(loc.Node()) != "e3" {
		t.Errorf("focus = %s, want e3", label(loc.Node()))
	}
	// marker suppresses the descent into e3's content
	next := loc.Next()
	if label(next.Node()) != "c" {
		t.Errorf("Next after splice = %s, want c", label(next.Node()))
	}
	root := next.Root()
	got := make([]string, 0, len(root.Kids))
	for _, kid := range root.Kids {
		got = append(got, label(kid))
	}
	if strings.Join(got, ",") != "e1,e2,e3,c" {
		t.Errorf("kids = %v, want e1,e2,e3,c", got)
	}
}

func TestReplaceManySingle(t *testing.T) {
	b, _ := Zip(testTree()).Down()
	loc := b.ReplaceMany([]*dom.Node{dom.Elem("z", dom.FromText("t"))})
	if !loc.Spliced() {
		t.Error("one-element splice must still set the marker")
	}
	if next := loc.Next(); label(next.Node()) != "c" {
		t.Errorf("Next = %s, want c", label(next.Node()))
	}
}

func TestReplaceManyEmpty(t *testing.T) {
	b, _ := Zip(testTree()).Down()
	loc := b.ReplaceMany(nil)
	if loc.Spliced() {
		t.Error("empty splice set the marker")
	}
	n := loc.Node()
	if n.Type != dom.TextType || n.Text != "" {
		t.Errorf("focus = %v, want empty text", n)
	}
	root := loc.Root()
	if len(root.Kids) != 2 {
		t.Errorf("got %d kids, want 2 (slot kept)", len(root.Kids))
	}
}

func TestReplaceManyAtRoot(t *testing.T) {
	loc := Zip(testTree()).ReplaceMany([]*dom.Node{dom.Elem("x"), dom.Elem("y")})
	if got := walkLabels(loc); got != "y" {
		t.Errorf("walk from splice = %s, want y", got)
	}
	forest := loc.Forest()
	if len(forest) != 2 || label(forest[0]) != "x" || label(forest[1]) != "y" {
		t.Errorf("forest = %v", forest)
	}
}

func TestInsertLeft(t *testing.T) {
	c, _ := Zip(testTree()).Down()
	c, _ = c.Right()
	loc := c.InsertLeft(dom.Elem("m"))
	if label(loc.Node()) != "c" {
		t.Errorf("focus moved to %s", label(loc.Node()))
	}
	root := loc.Root()
	got := make([]string, 0, len(root.Kids))
	for _, kid := range root.Kids {
		got = append(got, label(kid))
	}
	if strings.Join(got, ",") != "b,m,c" {
		t.Errorf("kids = %v, want b,m,c", got)
	}
}

func TestRemove(t *testing.T) {
	c, _ := Zip(testTree()).Down()
	c, _ = c.Right()
	loc, ok := c.Remove()
	if !ok {
		t.Fatal("Remove failed")
	}
	// previous position in document order: deep rightmost of <b>
	if label(loc.Node()) != "x" {
		t.Errorf("focus = %s, want x", label(loc.Node()))
	}
	root := loc.Root()
	if len(root.Kids) != 1 || label(root.Kids[0]) != "b" {
		t.Errorf("kids = %v, want just b", root.Kids)
	}
}

func TestRemoveFirstChild(t *testing.T) {
	b, _ := Zip(testTree()).Down()
	loc, ok := b.Remove()
	if !ok {
		t.Fatal("Remove failed")
	}
	if label(loc.Node()) != "a" {
		t.Errorf("focus = %s, want parent a", label(loc.Node()))
	}
	if len(loc.Node().Kids) != 1 || label(loc.Node().Kids[0]) != "c" {
		t.Errorf("kids = %v, want just c", loc.Node().Kids)
	}
}

func TestRemoveAtRootFails(t *testing.T) {
	if _, ok := Zip(testTree()).Remove(); ok {
		t.Error("removing the root succeeded")
	}
}

func TestZipForest(t *testing.T) {
	roots := []*dom.Node{
		dom.Elem("a", dom.FromText("x")),
		dom.Elem("b"),
	}
	loc, ok := ZipForest(roots)
	if !ok {
		t.Fatal("ZipForest failed")
	}
	if !loc.IsTop() {
		t.Error("forest root not top")
	}
	if _, ok := loc.Up(); ok {
		t.Error("Up above the forest succeeded")
	}
	if got := walkLabels(loc); got != "a,x,b" {
		t.Errorf("walk = %s, want a,x,b", got)
	}
	end := loc
	for !end.IsEnd() {
		end = end.Next()
	}
	forest := end.Forest()
	if len(forest) != 2 || label(forest[0]) != "a" || label(forest[1]) != "b" {
		t.Errorf("forest = %v", forest)
	}
}

func TestZipForestEmpty(t *testing.T) {
	if _, ok := ZipForest(nil); ok {
		t.Error("empty forest zipped")
	}
}
