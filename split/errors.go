package split

import "errors"

var (
	ErrInvalidStructure = errors.New("split: structure is not a well formed tree")
	ErrNoChildren       = errors.New("split: structure is a single leaf or empty")
	ErrOverflow         = errors.New("split: joined structure does not fit the word width")
)
