// Package parse is the boundary to the external parser and serializer
// collaborators. It adapts golang.org/x/net/html trees to dom trees
// and back; the engine itself never sees markup text.
package parse

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/reweave/reweave/dom"
)

// Parse reads a full document, leniently recovering from malformed
// markup per the html5 parsing algorithm, and returns the root
// element. Wrapper elements (html, head, body) are synthesized by the
// parser when absent.
func Parse(r io.Reader) (*dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return fromHTML(c), nil
		}
	}
	return nil, ErrNoContent
}

func ParseString(s string) (*dom.Node, error) {
	return Parse(strings.NewReader(s))
}

// Fragment reads an ordered forest of independent trees, parsed in
// the context element given by InContext (body by default).
func Fragment(r io.Reader, opts ...Option) ([]*dom.Node, error) {
	o := &options{context: "body"}
	for _, f := range opts {
		f(o)
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     o.context,
		DataAtom: atom.Lookup([]byte(o.context)),
	}
	hns, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, err
	}
	forest := make([]*dom.Node, 0, len(hns))
	for _, hn := range hns {
		if n := fromHTML(hn); n != nil {
			forest = append(forest, n)
		}
	}
	return forest, nil
}

func FragmentString(s string, opts ...Option) ([]*dom.Node, error) {
	return Fragment(strings.NewReader(s), opts...)
}

// fromHTML maps the html node kinds onto the two-variant dom model.
// Comments, doctypes and raw nodes have no dom counterpart and are
// dropped.
func fromHTML(hn *html.Node) *dom.Node {
	switch hn.Type {
	case html.TextNode:
		return dom.FromText(hn.Data)
	case html.ElementNode:
		n := dom.Elem(hn.Data)
		if len(hn.Attr) > 0 {
			n.Attrs = make([]dom.Attr, 0, len(hn.Attr))
			for _, a := range hn.Attr {
				n.Attrs = append(n.Attrs, dom.Attr{Key: a.Key, Val: a.Val})
			}
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if kid := fromHTML(c); kid != nil {
				n.Kids = append(n.Kids, kid)
			}
		}
		return n
	default:
		return nil
	}
}
