package parse

import "errors"

var (
	ErrNoContent = errors.New("no element content")
)
