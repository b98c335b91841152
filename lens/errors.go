package lens

import "errors"

var (
	// ErrNoSuchField indicates a Field optic references a field the object's
	// kind does not have (or the kind has no named fields at all).
	// Classification: Definition error, raised at first use.
	ErrNoSuchField = errors.New("lens: no such field")

	// ErrNoSuchKey indicates a map lookup found no entry for the key.
	// Classification: Data error.
	ErrNoSuchKey = errors.New("lens: no such key")

	// ErrIndexOutOfRange indicates a positional index outside [0, len).
	// Classification: Data error.
	ErrIndexOutOfRange = errors.New("lens: index out of range")

	// ErrBadIndexType indicates an index value of the wrong type for the
	// collection (non-integer for a slice, key not convertible to the map's
	// key type). Classification: Data error.
	ErrBadIndexType = errors.New("lens: index has wrong type for collection")

	// ErrNotIndexable indicates the value is not a slice, array or map.
	// Classification: Data error.
	ErrNotIndexable = errors.New("lens: value is not indexable")

	// ErrEmptyIndexPath indicates a dynamic index function returned an empty
	// tuple. Classification: Data error.
	ErrEmptyIndexPath = errors.New("lens: dynamic index function returned no indices")

	// ErrBadValue indicates a replacement value is not assignable to the
	// collection's element type. Classification: Data error.
	ErrBadValue = errors.New("lens: value not assignable to element type")

	// ErrNilObject indicates the optic was applied to a nil object or a nil
	// pointer. Classification: Data error.
	ErrNilObject = errors.New("lens: nil object")
)
