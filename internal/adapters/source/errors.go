package source

import "errors"

// Sentinel kinds for data source errors.
var (
	ErrUnsupportedFormat  = errors.New("unsupported table format")
	ErrParse              = errors.New("table parse failed")
	ErrMissingColumn      = errors.New("required column missing")
	ErrDuplicateShortlist = errors.New("player shortlisted more than once")
	ErrRead               = errors.New("table read failed")
)
