package attrs

import "errors"

var (
	// ErrNilAttributeValue reports a nil value handed to an ingestion call.
	// Attribute values must stringify to something meaningful; silently
	// rendering "nil" would hide the caller bug.
	ErrNilAttributeValue = errors.New("attrs: attribute value is nil")

	// ErrInvalidKeySource reports an input shape that cannot yield a usable
	// attribute key (empty keys, non-struct field containers).
	ErrInvalidKeySource = errors.New("attrs: cannot derive attribute key")
)
