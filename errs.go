package reweave

import "errors"

var (
	// ErrEmptyChain rejects directional combinators built from no
	// selectors; neither "always match" nor "never match" is a sound
	// reading, so it is a configuration error.
	ErrEmptyChain = errors.New("empty selector chain")
)
