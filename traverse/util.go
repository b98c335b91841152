package traverse

import (
	"errors"
	"fmt"
	"reflect"
)

// errNilObject marks a nil object or nil pointer reaching a traversal.
var errNilObject = errors.New("traverse: nil object")

// deref follows pointer indirection to the concrete value, reporting the
// unwrapped depth so wrap can restore it.
func deref(obj any) (reflect.Value, int, error) {
	rv := reflect.ValueOf(obj)
	depth := 0
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, 0, fmt.Errorf("%w: nil pointer", errNilObject)
		}
		rv = rv.Elem()
		depth++
	}
	if !rv.IsValid() {
		return reflect.Value{}, 0, errNilObject
	}

	return rv, depth, nil
}

// wrap restores depth levels of pointer indirection, allocating fresh
// pointers so callers' originals stay untouched.
func wrap(rv reflect.Value, depth int) any {
	for i := 0; i < depth; i++ {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		rv = p
	}

	return rv.Interface()
}

// conform adapts val for assignment to element type t; nil is accepted for
// nilable kinds only. No lossy conversions.
func conform(val any, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrBadElement, t)
		}
	}

	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadElement, rv.Type(), t)
	}

	return rv, nil
}
