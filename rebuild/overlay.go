package rebuild

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// OverlayOption customizes Overlay's merge behavior.
type OverlayOption func(*overlayConfig)

type overlayConfig struct {
	overwriteEmpty bool
}

// OverwriteWithEmpty makes zero-valued patch fields overwrite the
// corresponding object fields instead of being skipped.
func OverwriteWithEmpty() OverlayOption {
	return func(c *overlayConfig) { c.overwriteEmpty = true }
}

// Overlay merges a sparse patch onto a copy of obj and returns the copy;
// obj itself is untouched. Patch fields win over object fields (mergo
// override semantics), but zero-valued patch fields are skipped unless
// OverwriteWithEmpty is given.
//
// The patch must be the same concrete struct kind as obj (pointer
// indirection on either side is followed); ErrPatchType otherwise.
//
// Note the semantic difference from WithFields: Overlay merges by value
// emptiness, WithFields replaces exactly the named fields. Prefer WithFields
// when "replace these fields, whatever the values" is the contract.
func Overlay(obj any, patch any, opts ...OverlayOption) (any, error) {
	var cfg overlayConfig
	for _, fn := range opts {
		fn(&cfg)
	}

	rv, depth, err := deref(obj)
	if err != nil {
		return nil, err
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: kind %s", ErrNotStruct, rv.Kind())
	}
	pv, _, err := deref(patch)
	if err != nil {
		return nil, err
	}
	if pv.Type() != rv.Type() {
		return nil, fmt.Errorf("%w: %s vs %s", ErrPatchType, pv.Type(), rv.Type())
	}

	// Deep-copy first: mergo merges nested maps in place, and the copy must
	// not share references with the caller's object.
	next := reflect.New(rv.Type())
	next.Elem().Set(deepCopy(rv))

	mergeOpts := []func(*mergo.Config){mergo.WithOverride}
	if cfg.overwriteEmpty {
		mergeOpts = append(mergeOpts, mergo.WithOverwriteWithEmptyValue)
	}
	if err := mergo.Merge(next.Interface(), pv.Interface(), mergeOpts...); err != nil {
		return nil, fmt.Errorf("rebuild: overlay: %w", err)
	}

	return wrap(next.Elem(), depth), nil
}

// deepCopy clones rv so no map, slice or pointer reference is shared with
// the source. Unexported struct fields are carried by the whole-value copy;
// exported ones are cloned recursively.
func deepCopy(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(deepCopy(iter.Key()), deepCopy(iter.Value()))
		}

		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}

		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}

		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(deepCopy(rv.Elem()))

		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(deepCopy(rv.Elem()))

		return out
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				out.Field(i).Set(deepCopy(rv.Field(i)))
			}
		}

		return out
	default:
		return rv
	}
}
