package rebuild

import (
	"fmt"
	"reflect"
)

// FieldNames returns the exported field names of obj's struct kind in
// declaration order. Pointers are followed; any non-struct value (including
// nil) yields nil — it has no named fields.
//
// Complexity: O(number of fields).
func FieldNames(obj any) []string {
	rv, _, err := deref(obj)
	if err != nil || rv.Kind() != reflect.Struct {
		return nil
	}

	t := rv.Type()
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			names = append(names, f.Name)
		}
	}

	return names
}

// WithFields returns a new object of the identical concrete kind with the
// patched fields replaced and all other fields (exported or not) preserved
// exactly. A *T in yields a fresh *T out; the original is untouched.
//
// An empty patch returns obj unchanged. Patch keys must name exported fields
// of the kind (ErrUnknownField / ErrUnexportedField otherwise); replacement
// values must be assignable to the field's type (ErrBadFieldValue).
//
// Complexity: O(size of struct + len(patch)).
func WithFields(obj any, patch map[string]any) (any, error) {
	if len(patch) == 0 {
		// No named fields to replace: identity by contract.
		return obj, nil
	}

	rv, depth, err := deref(obj)
	if err != nil {
		return nil, err
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: kind %s", ErrNotStruct, rv.Kind())
	}

	t := rv.Type()
	next := reflect.New(t).Elem()
	next.Set(rv) // whole-value copy carries unexported fields verbatim

	for name, val := range patch {
		sf, ok := t.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownField, name, t)
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnexportedField, name, t)
		}
		fv, err := conform(val, sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q of %s: %w", name, t, err)
		}
		next.FieldByIndex(sf.Index).Set(fv)
	}

	return wrap(next, depth), nil
}

// FromValues rebuilds obj's kind from the complete ordered list of exported
// field values — the canonical-constructor contract. Unexported fields are
// preserved from the original. A non-struct obj with an empty vals list is
// returned unchanged (zero named fields).
//
// len(vals) must equal the exported field count (ErrArityMismatch otherwise).
func FromValues(obj any, vals []any) (any, error) {
	rv, depth, err := deref(obj)
	if err != nil {
		return nil, err
	}
	if rv.Kind() != reflect.Struct {
		if len(vals) == 0 {
			return obj, nil
		}

		return nil, fmt.Errorf("%w: kind %s", ErrNotStruct, rv.Kind())
	}

	t := rv.Type()
	next := reflect.New(t).Elem()
	next.Set(rv)

	j := 0
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if j >= len(vals) {
			return nil, fmt.Errorf("%w: got %d for %s", ErrArityMismatch, len(vals), t)
		}
		fv, err := conform(vals[j], sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q of %s: %w", sf.Name, t, err)
		}
		next.Field(i).Set(fv)
		j++
	}
	if j != len(vals) {
		return nil, fmt.Errorf("%w: got %d, want %d for %s", ErrArityMismatch, len(vals), j, t)
	}

	return wrap(next, depth), nil
}

// deref follows pointer indirection down to the concrete value, reporting how
// many levels were unwrapped so wrap can restore them.
func deref(obj any) (reflect.Value, int, error) {
	rv := reflect.ValueOf(obj)
	depth := 0
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, 0, fmt.Errorf("%w: nil pointer", ErrNotStruct)
		}
		rv = rv.Elem()
		depth++
	}
	if !rv.IsValid() {
		return reflect.Value{}, 0, fmt.Errorf("%w: nil object", ErrNotStruct)
	}

	return rv, depth, nil
}

// wrap restores depth levels of pointer indirection around rv, allocating
// fresh pointers so the caller's originals stay untouched.
func wrap(rv reflect.Value, depth int) any {
	for i := 0; i < depth; i++ {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		rv = p
	}

	return rv.Interface()
}

// conform adapts val for assignment to target type t. Untyped nil is allowed
// for nilable kinds only; otherwise the value must be assignable as-is —
// silent lossy conversions are deliberately not performed.
func conform(val any, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrBadFieldValue, t)
		}
	}

	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadFieldValue, rv.Type(), t)
	}

	return rv, nil
}
