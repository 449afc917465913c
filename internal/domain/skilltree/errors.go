package skilltree

import "errors"

// Sentinel kinds for catalog construction errors.
var (
	ErrDuplicateSlug = errors.New("duplicate skill slug")
	ErrLoadTracks    = errors.New("load track configurations failed")
)
