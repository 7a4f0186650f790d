package breadcrumb

import (
	"errors"
)

var (
	// ErrInvalidPattern is returned if a route pattern is empty, relative or has empty segments.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrInvalidParam is returned if a pattern parameter has no name or a name is used twice.
	ErrInvalidParam = errors.New("invalid route parameter")

	// ErrDuplicatePattern is returned if two routes match exactly the same paths.
	ErrDuplicatePattern = errors.New("duplicate route pattern")

	// ErrInvalidLabel is returned if a label template is empty or its placeholders are malformed.
	ErrInvalidLabel = errors.New("invalid label template")

	// ErrUnknownNodeKind is returned when decoding a node kind name that does not exist.
	ErrUnknownNodeKind = errors.New("unknown node kind")
)
