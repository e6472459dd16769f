// Package dom holds the tree value type that selectors read and
// transformers rewrite: a tagged union over element and text nodes.
// Nodes carry no parent pointers, so subtrees may be shared freely
// between trees; all edits are copy-on-write via Clone.
package dom

import (
	"sort"
	"strings"
)

type Attr struct {
	Key string
	Val string
}

type Node struct {
	Type Type

	// element variant
	Tag   string
	Attrs []Attr
	Kids  []*Node

	// text variant
	Text string
}

// Elem returns a new element node. Kids is never nil: an element with
// no content has an empty sequence.
func Elem(tag string, kids ...*Node) *Node {
	if kids == nil {
		kids = []*Node{}
	}
	return &Node{
		Type: ElementType,
		Tag:  tag,
		Kids: kids,
	}
}

func FromText(v string) *Node {
	return &Node{
		Type: TextType,
		Text: v,
	}
}

// Empty returns the empty text node, the canonical "nothing here"
// replacement value.
func Empty() *Node {
	return FromText("")
}

func (n *Node) WithAttr(key, val string) *Node {
	n.SetAttr(key, val)
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Tag = n.Tag
	dst.Text = n.Text
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		copy(dst.Attrs, n.Attrs)
	}
	if n.Kids != nil {
		dst.Kids = make([]*Node, len(n.Kids))
		for i, kid := range n.Kids {
			dstI := &Node{}
			kid.CloneTo(dstI)
			dst.Kids[i] = dstI
		}
	}
	return dst
}

// Attr returns the value of the attribute named key.
func (n *Node) Attr(key string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			return n.Attrs[i].Val, true
		}
	}
	return "", false
}

// SetAttr sets key to val, keeping attribute keys unique and existing
// attribute order stable.
func (n *Node) SetAttr(key, val string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
}

func (n *Node) DelAttr(key string) bool {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Node) AttrMap() map[string]string {
	if len(n.Attrs) == 0 {
		return nil
	}
	res := make(map[string]string, len(n.Attrs))
	for i := range n.Attrs {
		res[n.Attrs[i].Key] = n.Attrs[i].Val
	}
	return res
}

// SetAttrMap replaces all attributes with those in m, in sorted key
// order so results are deterministic.
func (n *Node) SetAttrMap(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	n.Attrs = make([]Attr, 0, len(keys))
	for _, k := range keys {
		n.Attrs = append(n.Attrs, Attr{Key: k, Val: m[k]})
	}
}

func (n *Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

// TextContent returns the concatenation of all text beneath n in
// document order.
func (n *Node) TextContent() string {
	if n.Type == TextType {
		return n.Text
	}
	buf := &strings.Builder{}
	for _, kid := range n.Kids {
		buf.WriteString(kid.TextContent())
	}
	return buf.String()
}

// Visit walks n in document order, calling f twice per node, before
// and after its children. Returning dive=false from the pre call
// skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.Kids {
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
