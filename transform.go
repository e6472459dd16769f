package reweave

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/parse"
)

// Replacement is what a transformer yields for a matched node: a
// single node, an ordered sequence spliced into the node's place, or
// an absent result. Absent and empty splices are normalized by the
// engine to a single empty text node; the structural slot is never
// deleted.
type Replacement struct {
	one    *dom.Node
	many   []*dom.Node
	splice bool
}

func One(n *dom.Node) Replacement {
	return Replacement{one: n}
}

func Splice(nodes ...*dom.Node) Replacement {
	return Replacement{many: nodes, splice: true}
}

// None is the absent replacement.
func None() Replacement {
	return Replacement{}
}

// Transformer computes a replacement for a matched node. Transformers
// receive the node value, not the cursor, and must be pure; the
// shorthands below all clone before editing so previously observed
// nodes are never written through.
type Transformer func(n *dom.Node) (Replacement, error)

// Content replaces the node's content with the given nodes.
func Content(nodes ...*dom.Node) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		res := n.Clone()
		res.Kids = append([]*dom.Node{}, nodes...)
		return One(res), nil
	}
}

// TextContent replaces the node's content with a single text node;
// the text is escaped at serialization.
func TextContent(s string) Transformer {
	return Content(dom.FromText(s))
}

// HTMLContent parses markup as a fragment and sets it as the node's
// content. The markup goes through the parser, never raw into the
// tree, so later serialization stays escape-correct.
func HTMLContent(markup string, opts ...parse.Option) Transformer {
	kids, err := parse.FragmentString(markup, opts...)
	return func(n *dom.Node) (Replacement, error) {
		if err != nil {
			return Replacement{}, fmt.Errorf("parsing content markup: %w", err)
		}
		res := n.Clone()
		res.Kids = make([]*dom.Node, 0, len(kids))
		for _, kid := range kids {
			res.Kids = append(res.Kids, kid.Clone())
		}
		return One(res), nil
	}
}

// SetAttr sets or updates one attribute.
func SetAttr(key, val string) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		res := n.Clone()
		res.SetAttr(key, val)
		return One(res), nil
	}
}

// RemoveAttr removes one attribute if present.
func RemoveAttr(key string) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		res := n.Clone()
		res.DelAttr(key)
		return One(res), nil
	}
}

// MergeAttrs merges patch into the attribute map with RFC 7386 merge
// patch semantics: a nil value deletes the attribute, any other value
// sets it. Attributes not named in patch are untouched.
func MergeAttrs(patch map[string]*string) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		attrs := n.AttrMap()
		if attrs == nil {
			attrs = map[string]string{}
		}
		docJSON, err := json.Marshal(attrs)
		if err != nil {
			return Replacement{}, err
		}
		patchJSON, err := json.Marshal(patch)
		if err != nil {
			return Replacement{}, err
		}
		merged, err := jsonpatch.MergePatch(docJSON, patchJSON)
		if err != nil {
			return Replacement{}, fmt.Errorf("merging attributes: %w", err)
		}
		out := map[string]string{}
		if err := json.Unmarshal(merged, &out); err != nil {
			return Replacement{}, err
		}
		res := n.Clone()
		res.SetAttrMap(out)
		return One(res), nil
	}
}

// AddClass adds class tokens without disturbing the others.
func AddClass(names ...string) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		res := n.Clone()
		for _, name := range names {
			res.AddClass(name)
		}
		return One(res), nil
	}
}

// RemoveClass removes class tokens without disturbing the others.
func RemoveClass(names ...string) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		res := n.Clone()
		for _, name := range names {
			res.RemoveClass(name)
		}
		return One(res), nil
	}
}

// Wrap nests the node inside a new parent element. The wrapper is
// emitted as a one-element splice: were it an ordinary replacement,
// the walk would descend into it, match the wrapped node again and
// wrap without end.
func Wrap(tag string, attrs map[string]string) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		parent := dom.Elem(tag, n.Clone())
		if len(attrs) > 0 {
			parent.SetAttrMap(attrs)
		}
		return Splice(parent), nil
	}
}

// Unwrap splices the node's content into its place, dropping the node
// itself.
func Unwrap() Transformer {
	return func(n *dom.Node) (Replacement, error) {
		kids := make([]*dom.Node, 0, len(n.Kids))
		for _, kid := range n.Kids {
			kids = append(kids, kid.Clone())
		}
		return Splice(kids...), nil
	}
}

// Remove yields the absent replacement. Per the engine's edge policy
// the node's slot is kept, occupied by an empty text node, so sibling
// counts never change.
func Remove() Transformer {
	return func(*dom.Node) (Replacement, error) {
		return None(), nil
	}
}

// ReplaceWith replaces the node outright.
func ReplaceWith(n *dom.Node) Transformer {
	return func(*dom.Node) (Replacement, error) {
		return One(n.Clone()), nil
	}
}

// SpliceWith replaces the node with the given sequence.
func SpliceWith(nodes ...*dom.Node) Transformer {
	return func(*dom.Node) (Replacement, error) {
		cloned := make([]*dom.Node, 0, len(nodes))
		for _, n := range nodes {
			cloned = append(cloned, n.Clone())
		}
		return Splice(cloned...), nil
	}
}

// Do chains transformers over a single node. A splice or absent
// result short-circuits the chain, so only the last step may fan out.
func Do(ts ...Transformer) Transformer {
	return func(n *dom.Node) (Replacement, error) {
		cur := n
		for _, t := range ts {
			rep, err := t(cur)
			if err != nil {
				return Replacement{}, err
			}
			if rep.splice || rep.one == nil {
				return rep, nil
			}
			cur = rep.one
		}
		return One(cur), nil
	}
}
