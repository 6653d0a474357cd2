package slogconf

import "errors"

var (
	// ErrMissingType is returned by Decode when a record document does not
	// carry the type tag field.
	ErrMissingType = errors.New("missing type field")

	// ErrUnknownType is returned by Decode when the type tag of a document
	// has no registered decode function. The offending tag is attached to
	// the returned error.
	ErrUnknownType = errors.New("unknown configuration type")

	// ErrUnsupported is returned by Build when no factory is registered for
	// the concrete type of a configuration.
	ErrUnsupported = errors.New("unsupported configuration")
)
