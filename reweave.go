package reweave

import (
	"io"

	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/parse"
)

// Document parses one full document, transforms it, and serializes
// the result back to markup.
func Document(r io.Reader, pairs ...Pair) (string, error) {
	root, err := parse.Parse(r)
	if err != nil {
		return "", err
	}
	out, err := Transform(root, pairs)
	if err != nil {
		return "", err
	}
	return parse.ForestString(out)
}

func DocumentString(markup string, pairs ...Pair) (string, error) {
	root, err := parse.ParseString(markup)
	if err != nil {
		return "", err
	}
	out, err := Transform(root, pairs)
	if err != nil {
		return "", err
	}
	return parse.ForestString(out)
}

// Fragment parses markup as an ordered forest and transforms each
// root, returning the output forest for further passes or
// serialization by the caller.
func Fragment(markup string, pairs ...Pair) ([]*dom.Node, error) {
	roots, err := parse.FragmentString(markup)
	if err != nil {
		return nil, err
	}
	return TransformFragment(roots, pairs)
}
