package parse

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/reweave/reweave/dom"
)

// Serialize writes n as markup. Text content and attribute values are
// escaped by the serializer collaborator; raw markup only enters a
// tree by being parsed, so output is always escape-correct.
func Serialize(w io.Writer, n *dom.Node) error {
	return html.Render(w, toHTML(n))
}

func String(n *dom.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Serialize(buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SerializeForest writes each root in order, concatenated.
func SerializeForest(w io.Writer, roots []*dom.Node) error {
	for _, n := range roots {
		if err := Serialize(w, n); err != nil {
			return err
		}
	}
	return nil
}

func ForestString(roots []*dom.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := SerializeForest(buf, roots); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTML(n *dom.Node) *html.Node {
	if n.Type == dom.TextType {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if len(n.Attrs) > 0 {
		hn.Attr = make([]html.Attribute, 0, len(n.Attrs))
		for _, a := range n.Attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
	}
	for _, kid := range n.Kids {
		hn.AppendChild(toHTML(kid))
	}
	return hn
}
