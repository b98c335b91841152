package traverse

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/optics/core"
)

// ElementsOptic focuses every element of a mappable collection
// simultaneously. ModifyBased.
type ElementsOptic struct {
	core.ModifyStyle
}

// Elements returns the whole-collection optic. Modify maps the update
// function over every element, producing a new collection of the same
// concrete type and shape; the derived Set replaces every element with the
// same value.
func Elements() *ElementsOptic { return &ElementsOptic{} }

// String names the optic shape in errors and traces.
func (*ElementsOptic) String() string { return "Elements()" }

// Apply has no single-value semantics for a multi-focus optic.
func (e *ElementsOptic) Apply(any) (any, error) {
	return nil, fmt.Errorf("%w: %v", ErrMultiFocus, e)
}

// Modify maps f over every element of a slice, array or map (its values),
// rebuilding the collection. An empty collection is returned unchanged; an
// error from f aborts with no partial result.
func (e *ElementsOptic) Modify(obj any, f core.UpdateFunc, _ core.Options) (any, error) {
	rv, depth, err := deref(obj)
	if err != nil {
		return nil, err
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return obj, nil
		}
		next := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())

		return mapSequence(rv, next, f, depth)
	case reflect.Array:
		if rv.Len() == 0 {
			return obj, nil
		}
		next := reflect.New(rv.Type()).Elem()

		return mapSequence(rv, next, f, depth)
	case reflect.Map:
		if rv.Len() == 0 {
			return obj, nil
		}
		next := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		elemType := rv.Type().Elem()
		iter := rv.MapRange()
		for iter.Next() {
			mapped, err := f(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			ev, err := conform(mapped, elemType)
			if err != nil {
				return nil, err
			}
			next.SetMapIndex(iter.Key(), ev)
		}

		return wrap(next, depth), nil
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrNotMappable, rv.Kind())
	}
}

// mapSequence fills next with f applied to each element of src (slice or
// array of the same length and element type).
func mapSequence(src, next reflect.Value, f core.UpdateFunc, depth int) (any, error) {
	elemType := src.Type().Elem()
	for i := 0; i < src.Len(); i++ {
		mapped, err := f(src.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		ev, err := conform(mapped, elemType)
		if err != nil {
			return nil, err
		}
		next.Index(i).Set(ev)
	}

	return wrap(next, depth), nil
}
