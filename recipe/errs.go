package recipe

import "errors"

var (
	ErrEmptyMatch  = errors.New("rule match selects nothing")
	ErrEmptyAction = errors.New("rule action does nothing")
	ErrBadAction   = errors.New("invalid rule action")
)
