package dyck

import "errors"

var (
	ErrInvalidStructure  = errors.New("dyck: path needs more leaves than were provided")
	ErrNegativePath      = errors.New("dyck: path must not be negative")
	ErrEmptyPath         = errors.New("dyck: path is empty")
	ErrMalformedPath     = errors.New("dyck: path is not exactly one well formed tree")
	ErrNotLeaf           = errors.New("dyck: cursor is not on a leaf")
	ErrLeafMissing       = errors.New("dyck: leaf index exceeds the leaves provided")
	ErrLeafHasNoChildren = errors.New("dyck: a leaf has no children")
	ErrAtRoot            = errors.New("dyck: cursor is at the root")
	ErrNoWords           = errors.New("dyck: no path words provided")
)
