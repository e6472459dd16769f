// Package zipper provides a persistent cursor over dom trees. A Loc
// is a value: every navigation or edit returns a new Loc over a new
// (structurally shared) tree and never writes through the source
// tree. A Loc also carries the transient splice marker consulted by
// Next after a position has been replaced by a sequence of siblings.
package zipper

import "github.com/reweave/reweave/dom"

type Loc struct {
	node    *dom.Node
	path    *path
	spliced bool
	end     bool
}

// path is the classic zipper context: the parent node as parsed, the
// siblings left and right of the focus in document order, and the
// parent's own context. A nil pnode means the focus sits at the top
// level of a forest: it has siblings but no parent.
type path struct {
	up    *path
	pnode *dom.Node
	left  []*dom.Node
	right []*dom.Node
}

// Zip returns a cursor focused on root.
func Zip(root *dom.Node) Loc {
	return Loc{node: root}
}

// ZipForest returns a cursor on the first root of a forest. The roots
// navigate as siblings, but nothing sits above them: Up at the top
// level fails.
func ZipForest(roots []*dom.Node) (Loc, bool) {
	if len(roots) == 0 {
		return Loc{}, false
	}
	if len(roots) == 1 {
		return Zip(roots[0]), true
	}
	return Loc{node: roots[0], path: &path{right: roots[1:]}}, true
}

func (l Loc) Node() *dom.Node {
	return l.node
}

// IsTop reports whether the focus is at the top level: a tree root or
// a root of a forest.
func (l Loc) IsTop() bool {
	return l.path == nil || l.path.pnode == nil
}

// IsEnd reports whether the walk is past the last node in document
// order. An end Loc supports Forest and Root but no further
// navigation.
func (l Loc) IsEnd() bool {
	return l.end
}

// Spliced reports whether the focus is the last node of a splice, so
// that Next will not descend into it.
func (l Loc) Spliced() bool {
	return l.spliced
}

// Up rebuilds the parent from the focus and its siblings and returns
// a cursor focused on it. Unmodified subtrees are shared, not copied.
func (l Loc) Up() (Loc, bool) {
	p := l.path
	if p == nil || p.pnode == nil {
		return Loc{}, false
	}
	kids := make([]*dom.Node, 0, len(p.left)+1+len(p.right))
	kids = append(kids, p.left...)
	kids = append(kids, l.node)
	kids = append(kids, p.right...)
	parent := &dom.Node{
		Type:  dom.ElementType,
		Tag:   p.pnode.Tag,
		Attrs: p.pnode.Attrs,
		Kids:  kids,
	}
	return Loc{node: parent, path: p.up}, true
}

// Down moves to the first child of an element focus.
func (l Loc) Down() (Loc, bool) {
	if l.node.Type != dom.ElementType || len(l.node.Kids) == 0 {
		return Loc{}, false
	}
	return Loc{
		node: l.node.Kids[0],
		path: &path{
			up:    l.path,
			pnode: l.node,
			right: l.node.Kids[1:],
		},
	}, true
}

func (l Loc) Left() (Loc, bool) {
	p := l.path
	if p == nil || len(p.left) == 0 {
		return Loc{}, false
	}
	n := len(p.left)
	right := make([]*dom.Node, 0, len(p.right)+1)
	right = append(right, l.node)
	right = append(right, p.right...)
	return Loc{
		node: p.left[n-1],
		path: &path{
			up:    p.up,
			pnode: p.pnode,
			left:  p.left[:n-1],
			right: right,
		},
	}, true
}

func (l Loc) Right() (Loc, bool) {
	p := l.path
	if p == nil || len(p.right) == 0 {
		return Loc{}, false
	}
	left := make([]*dom.Node, 0, len(p.left)+1)
	left = append(left, p.left...)
	left = append(left, l.node)
	return Loc{
		node: p.right[0],
		path: &path{
			up:    p.up,
			pnode: p.pnode,
			left:  left,
			right: p.right[1:],
		},
	}, true
}

// Next moves to the next position in document order: down when the
// focus is an element with content, else right, else up until a right
// sibling exists. When the splice marker is set the focus's content
// is not descended into. Past the last node, Next returns an end
// cursor.
func (l Loc) Next() Loc {
	if l.end {
		return l
	}
	if !l.spliced {
		if d, ok := l.Down(); ok {
			return d
		}
	}
	x := l
	x.spliced = false
	for {
		if r, ok := x.Right(); ok {
			return r
		}
		u, ok := x.Up()
		if !ok {
			x.end = true
			return x
		}
		x = u
	}
}

// Replace replaces the focused node in place. The splice marker is
// cleared: traversal continues into the replacement.
func (l Loc) Replace(n *dom.Node) Loc {
	return Loc{node: n, path: l.path}
}

// ReplaceMany splices nodes into the focused position as direct
// siblings, in order, and sets the splice marker. The returned cursor
// is focused on the last inserted node so Next resumes immediately
// after the sequence. An empty splice degrades to replacement by the
// empty text node without the marker.
func (l Loc) ReplaceMany(nodes []*dom.Node) Loc {
	switch len(nodes) {
	case 0:
		return l.Replace(dom.Empty())
	case 1:
		res := l.Replace(nodes[0])
		res.spliced = true
		return res
	}
	last := len(nodes) - 1
	p := l.path
	var oldLeft []*dom.Node
	if p != nil {
		oldLeft = p.left
	}
	left := make([]*dom.Node, 0, len(oldLeft)+last)
	left = append(left, oldLeft...)
	left = append(left, nodes[:last]...)
	np := &path{left: left}
	if p != nil {
		np.up = p.up
		np.pnode = p.pnode
		np.right = p.right
	}
	return Loc{node: nodes[last], path: np, spliced: true}
}

// InsertLeft inserts a sibling immediately before the focus, leaving
// the focus where it is.
func (l Loc) InsertLeft(n *dom.Node) Loc {
	p := l.path
	if p == nil {
		return Loc{node: l.node, path: &path{left: []*dom.Node{n}}}
	}
	left := make([]*dom.Node, 0, len(p.left)+1)
	left = append(left, p.left...)
	left = append(left, n)
	return Loc{
		node: l.node,
		path: &path{up: p.up, pnode: p.pnode, left: left, right: p.right},
	}
}

// Remove removes the focused node and returns the position that
// precedes it in document order (the deep rightmost descendant of the
// left sibling, or the parent), so that Next continues correctly.
// Removing a top-level node with nothing to its left has no preceding
// position and fails.
func (l Loc) Remove() (Loc, bool) {
	p := l.path
	if p == nil {
		return Loc{}, false
	}
	if len(p.left) == 0 {
		if p.pnode == nil {
			return Loc{}, false
		}
		up := Loc{
			node: &dom.Node{
				Type:  dom.ElementType,
				Tag:   p.pnode.Tag,
				Attrs: p.pnode.Attrs,
				Kids:  p.right,
			},
			path: p.up,
		}
		return up, true
	}
	n := len(p.left)
	x := Loc{
		node: p.left[n-1],
		path: &path{up: p.up, pnode: p.pnode, left: p.left[:n-1], right: p.right},
	}
	for {
		d, ok := x.Down()
		if !ok {
			return x, true
		}
		x = d
		for {
			r, ok := x.Right()
			if !ok {
				break
			}
			x = r
		}
	}
}

// Forest rebuilds the whole tree from the focus and returns the
// top-level roots in order. A single-rooted tree yields a one-element
// forest.
func (l Loc) Forest() []*dom.Node {
	x := l
	for {
		u, ok := x.Up()
		if !ok {
			break
		}
		x = u
	}
	p := x.path
	if p == nil {
		return []*dom.Node{x.node}
	}
	res := make([]*dom.Node, 0, len(p.left)+1+len(p.right))
	res = append(res, p.left...)
	res = append(res, x.node)
	res = append(res, p.right...)
	return res
}

// Root rebuilds and returns the whole tree from the focus. It is for
// single-rooted zips; use Forest when top-level splices may have
// added roots.
func (l Loc) Root() *dom.Node {
	x := l
	for {
		u, ok := x.Up()
		if !ok {
			return x.node
		}
		x = u
	}
}
