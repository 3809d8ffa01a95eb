package domain

import "errors"

var (
	// ErrNotFound means a key, block or visitor does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidKind rejects a block kind other than social, text, image, link
	// and map.
	ErrInvalidKind = errors.New("invalid block kind")
	// ErrUnknownField rejects an edit naming a field the record does not have.
	ErrUnknownField = errors.New("unknown field")
)
