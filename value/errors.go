package value

import "errors"

// Sentinel errors for the value package.
var (
	// ErrDuplicateProperty indicates Define was called with a name the object
	// already holds.
	ErrDuplicateProperty = errors.New("value: duplicate property name")

	// ErrBadHandle indicates a Handle that does not address a slot of the Arena.
	ErrBadHandle = errors.New("value: handle out of range")

	// ErrBadDescriptor indicates a Property carrying both or neither of the
	// Data and Accessor variants.
	ErrBadDescriptor = errors.New("value: property must be either data or accessor")
)
