package node

import "errors"

var (
	ErrEmptyTag     = errors.New("tag must not be empty")
	ErrUnknownType  = errors.New("unknown content type")
	ErrWrongContent = errors.New("wrong content type")
	ErrShared       = errors.New("node already has a parent")
)
