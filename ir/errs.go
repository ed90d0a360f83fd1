package ir

import "errors"

var (
	ErrMissingSection = errors.New("missing section")
	ErrMissingField   = errors.New("missing field")
	ErrMissingColumn  = errors.New("missing column")
)
