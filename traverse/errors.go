package traverse

import "errors"

var (
	// ErrMultiFocus indicates Get was invoked on an optic that focuses many
	// values at once and therefore has no single-value read semantics.
	// Classification: Definition error.
	ErrMultiFocus = errors.New("traverse: optic focuses multiple values; Get is undefined")

	// ErrNotMappable indicates Elements was applied to a value that is not
	// a slice, array or map. Classification: Data error.
	ErrNotMappable = errors.New("traverse: value is not a mappable collection")

	// ErrBadElement indicates an update function produced a value that is
	// not assignable to the collection's element type.
	// Classification: Data error.
	ErrBadElement = errors.New("traverse: replacement not assignable to element type")
)
