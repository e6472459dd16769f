package reweave

import (
	"fmt"

	"github.com/reweave/reweave/debug"
	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/zipper"
)

// Pair binds a selector to the transformer applied where it matches.
type Pair struct {
	Sel Selector
	Tr  Transformer
}

// Transform walks root once in document order, applying every pair in
// the order given at each element position, and returns the resulting
// forest: a tree transformation is a forest transformation because a
// pair may splice or empty out the root itself.
//
// Errors from selectors or transformers abort the walk immediately;
// there is no partial-application guarantee on failure.
func Transform(root *dom.Node, pairs []Pair) ([]*dom.Node, error) {
	loc := zipper.Zip(root)
	for !loc.IsEnd() {
		n := loc.Node()
		if debug.Walk() {
			debug.Logf("visit %s <%s>%q\n", n.Type, n.Tag, n.Text)
		}
		if n.Type == dom.ElementType {
			var err error
			loc, err = applyAt(loc, pairs)
			if err != nil {
				return nil, err
			}
		}
		loc = loc.Next()
	}
	return loc.Forest(), nil
}

// applyAt evaluates every pair, left to right, against the current
// state of the position: a pair applied earlier changes what a later
// pair observes. A splice ends application at this position, since
// the original slot is gone and inserted content is never re-matched.
func applyAt(loc zipper.Loc, pairs []Pair) (zipper.Loc, error) {
	for i := range pairs {
		p := &pairs[i]
		n := loc.Node()
		if n.Type != dom.ElementType {
			// an earlier pair replaced the element with text
			break
		}
		ok, err := p.Sel(loc)
		if err != nil {
			return loc, fmt.Errorf("selector %d: %w", i, err)
		}
		if !ok {
			continue
		}
		if debug.Match() {
			debug.Logf("pair %d matched <%s>\n", i, n.Tag)
		}
		rep, err := p.Tr(n)
		if err != nil {
			return loc, fmt.Errorf("transformer %d on <%s>: %w", i, n.Tag, err)
		}
		switch {
		case rep.splice:
			if debug.Transform() {
				debug.Logf("pair %d spliced %d nodes for <%s>\n", i, len(rep.many), n.Tag)
			}
			return loc.ReplaceMany(rep.many), nil
		case rep.one != nil:
			loc = loc.Replace(rep.one)
		default:
			// absent: keep the slot, occupied by empty text
			loc = loc.Replace(dom.Empty())
		}
	}
	return loc, nil
}

// TransformFragment runs the engine independently over each root of a
// forest and concatenates the outputs, top-level splices included.
// The result is a forest, not markup; callers may serialize it or
// feed it to another pass.
func TransformFragment(roots []*dom.Node, pairs []Pair) ([]*dom.Node, error) {
	res := make([]*dom.Node, 0, len(roots))
	for i, root := range roots {
		out, err := Transform(root, pairs)
		if err != nil {
			return nil, fmt.Errorf("fragment root %d: %w", i, err)
		}
		res = append(res, out...)
	}
	return res, nil
}

// Select walks each root without transforming, collecting every
// element for which at least one selector matches. No mutation
// occurs.
func Select(roots []*dom.Node, sels ...Selector) ([]*dom.Node, error) {
	var res []*dom.Node
	for _, root := range roots {
		loc := zipper.Zip(root)
		for !loc.IsEnd() {
			if loc.Node().Type == dom.ElementType {
				for _, sel := range sels {
					ok, err := sel(loc)
					if err != nil {
						return nil, err
					}
					if ok {
						res = append(res, loc.Node())
						break
					}
				}
			}
			loc = loc.Next()
		}
	}
	return res, nil
}
