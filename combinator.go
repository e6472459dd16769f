package reweave

import (
	"github.com/reweave/reweave/debug"
	"github.com/reweave/reweave/zipper"
)

// Not matches where s does not.
func Not(s Selector) Selector {
	return func(loc zipper.Loc) (bool, error) {
		ok, err := s(loc)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// And matches where every selector matches.
func And(ss ...Selector) Selector {
	return func(loc zipper.Loc) (bool, error) {
		for _, s := range ss {
			ok, err := s(loc)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
}

// Or matches where at least one selector matches.
func Or(ss ...Selector) Selector {
	return func(loc zipper.Loc) (bool, error) {
		for _, s := range ss {
			ok, err := s(loc)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// Descendant reads chain right to left: the last selector must match
// the position itself, each earlier selector some strictly enclosing
// ancestor, in order. CSS " " semantics.
func Descendant(chain ...Selector) (Selector, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	return backward(chain, "descendant", up, true), nil
}

// Child is Descendant restricted to immediate parents. CSS ">"
// semantics.
func Child(chain ...Selector) (Selector, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	return backward(chain, "child", up, false), nil
}

// Adjacent reads chain right to left across immediate preceding
// siblings. CSS "+" semantics.
func Adjacent(chain ...Selector) (Selector, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	return backward(chain, "adjacent", left, false), nil
}

func up(loc zipper.Loc) (zipper.Loc, bool)   { return loc.Up() }
func left(loc zipper.Loc) (zipper.Loc, bool) { return loc.Left() }

// backward is the generalized backward walk shared by the directional
// combinators: the last selector anchors at the starting cursor, then
// each move steps once in the chosen direction and tests the next
// selector leftward. With retry set, a non-match keeps moving under
// the same selector; without it, a non-match fails the whole chain.
// Running out of tree with selectors unsatisfied is a failure.
func backward(chain []Selector, name string, move func(zipper.Loc) (zipper.Loc, bool), retry bool) Selector {
	return func(loc zipper.Loc) (bool, error) {
		ok, err := chain[len(chain)-1](loc)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		for i := len(chain) - 2; i >= 0; i-- {
			for {
				next, can := move(loc)
				if !can {
					return false, nil
				}
				loc = next
				ok, err := chain[i](loc)
				if err != nil {
					return false, err
				}
				if ok {
					break
				}
				if !retry {
					if debug.Match() {
						debug.Logf("%s chain broke at link %d\n", name, i)
					}
					return false, nil
				}
			}
		}
		return true, nil
	}
}
