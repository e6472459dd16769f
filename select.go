// Package reweave applies ordered (selector, transformer) pairs to
// HTML-like trees in a single pre-order walk, splicing replacements in
// place while preserving document order.
package reweave

import (
	"regexp"

	"github.com/reweave/reweave/dom"
	"github.com/reweave/reweave/zipper"
)

// Selector is a predicate over a cursor position. Selectors must be
// pure: evaluating one never mutates the tree. Errors abort the
// enclosing walk immediately.
type Selector func(loc zipper.Loc) (bool, error)

// Any matches every position.
func Any() Selector {
	return func(zipper.Loc) (bool, error) {
		return true, nil
	}
}

// Tag matches elements by tag name.
func Tag(name string) Selector {
	return func(loc zipper.Loc) (bool, error) {
		n := loc.Node()
		return n.Type == dom.ElementType && n.Tag == name, nil
	}
}

// Attr matches elements carrying key with exactly the value val.
func Attr(key, val string) Selector {
	return func(loc zipper.Loc) (bool, error) {
		v, ok := loc.Node().Attr(key)
		return ok && v == val, nil
	}
}

// AttrRe matches elements whose value for key matches re.
func AttrRe(key string, re *regexp.Regexp) Selector {
	return func(loc zipper.Loc) (bool, error) {
		v, ok := loc.Node().Attr(key)
		return ok && re.MatchString(v), nil
	}
}

// HasAttr matches elements carrying key, whatever the value.
func HasAttr(key string) Selector {
	return func(loc zipper.Loc) (bool, error) {
		_, ok := loc.Node().Attr(key)
		return ok, nil
	}
}

// Class matches elements whose class attribute contains every one of
// names as a token.
func Class(names ...string) Selector {
	return func(loc zipper.Loc) (bool, error) {
		n := loc.Node()
		if n.Type != dom.ElementType {
			return false, nil
		}
		for _, name := range names {
			if !n.HasClass(name) {
				return false, nil
			}
		}
		return true, nil
	}
}

// ClassRe matches elements with at least one class token matching re.
func ClassRe(re *regexp.Regexp) Selector {
	return func(loc zipper.Loc) (bool, error) {
		for _, c := range loc.Node().Classes() {
			if re.MatchString(c) {
				return true, nil
			}
		}
		return false, nil
	}
}

// ID matches the element with the given id attribute.
func ID(id string) Selector {
	return Attr("id", id)
}
