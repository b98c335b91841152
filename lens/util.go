package lens

import (
	"fmt"
	"reflect"
)

// deref follows pointer indirection to the concrete value, reporting the
// unwrapped depth so wrap can restore it.
func deref(obj any) (reflect.Value, int, error) {
	rv := reflect.ValueOf(obj)
	depth := 0
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, 0, fmt.Errorf("%w: nil pointer", ErrNilObject)
		}
		rv = rv.Elem()
		depth++
	}
	if !rv.IsValid() {
		return reflect.Value{}, 0, ErrNilObject
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

// conform adapts val for assignment to element/field type t; nil is accepted
// for nilable kinds only. No lossy conversions.
func conform(val any, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrBadValue, t)
		}
	}

	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadValue, rv.Type(), t)
	}

	return rv, nil
}

// intIndex extracts a non-negative positional index from any integer kind.
func intIndex(idx any) (int, bool) {
	switch v := idx.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	default:
		return 0, false
	}
}

// mapKey converts idx to the map's key type.
func mapKey(idx any, keyType reflect.Type) (reflect.Value, error) {
	if idx == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil key", ErrBadIndexType)
	}
	kv := reflect.ValueOf(idx)
	if kv.Type().AssignableTo(keyType) {
		return kv, nil
	}
	// Conversion is allowed only within the same kind class; int→string would
	// "convert" via rune semantics, which is never an intended map key.
	if sameKindClass(kv.Kind(), keyType.Kind()) && kv.Type().ConvertibleTo(keyType) {
		return kv.Convert(keyType), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s key for map[%s]...", ErrBadIndexType, kv.Type(), keyType)
}

// sameKindClass reports whether two reflect kinds belong to the same
// convertible class (string/string, integer/integer, float/float).
func sameKindClass(a, b reflect.Kind) bool {
	class := func(k reflect.Kind) int {
		switch {
		case k == reflect.String:
			return 1
		case k >= reflect.Int && k <= reflect.Uintptr:
			return 2
		case k == reflect.Float32 || k == reflect.Float64:
			return 3
		default:
			return 0
		}
	}
	ca, cb := class(a), class(b)

	return ca != 0 && ca == cb
}
