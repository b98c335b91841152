package rebuild

import "errors"

var (
	// ErrNotStruct indicates the object is not a struct (nor a pointer to
	// one) and therefore cannot be rebuilt with named fields.
	// Classification: Data error.
	ErrNotStruct = errors.New("rebuild: object is not a struct")

	// ErrUnknownField indicates a patch names a field the object's kind does
	// not have. Classification: Definition error.
	ErrUnknownField = errors.New("rebuild: no such field")

	// ErrUnexportedField indicates a patch names an unexported field, which
	// reflection cannot set. Classification: Definition error.
	ErrUnexportedField = errors.New("rebuild: field is unexported")

	// ErrBadFieldValue indicates a replacement value is not assignable to
	// the target field's type. Classification: Data error.
	ErrBadFieldValue = errors.New("rebuild: value not assignable to field")

	// ErrArityMismatch indicates FromValues received a value list whose
	// length differs from the kind's exported field count.
	// Classification: Data error.
	ErrArityMismatch = errors.New("rebuild: wrong number of field values")

	// ErrPatchType indicates Overlay received a patch of a different
	// concrete type than the object. Classification: Data error.
	ErrPatchType = errors.New("rebuild: patch type differs from object type")
)
