package traverse

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/optics/core"
	"github.com/katalvlaran/optics/rebuild"
)

// PropertiesOptic focuses every named field of an object simultaneously.
// ModifyBased, built on the rebuild helper: map the update function over the
// ordered field values, then reconstruct an object of the same kind.
type PropertiesOptic struct {
	core.ModifyStyle
}

// Properties returns the whole-object optic. Struct fields are visited in
// declaration order (exported fields only); string-keyed map values in
// sorted key order so the visit order is deterministic.
//
// A value with zero named fields — empty struct, scalar, nil — is returned
// unchanged. Recursive relies on this identity behavior at the leaves.
func Properties() *PropertiesOptic { return &PropertiesOptic{} }

// String names the optic shape in errors and traces.
func (*PropertiesOptic) String() string { return "Properties()" }

// Apply has no single-value semantics for a multi-focus optic.
func (p *PropertiesOptic) Apply(any) (any, error) {
	return nil, fmt.Errorf("%w: %v", ErrMultiFocus, p)
}

// Modify maps f over every named field and reconstructs the object.
func (p *PropertiesOptic) Modify(obj any, f core.UpdateFunc, _ core.Options) (any, error) {
	rv, depth, err := deref(obj)
	if err != nil {
		// A nil value has zero named fields: identity by contract.
		return obj, nil
	}

	switch {
	case rv.Kind() == reflect.Struct:
		return modifyStructFields(obj, rv, f)
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		return modifyMapValues(rv, depth, f)
	default:
		// Scalars, slices, non-string-keyed maps: zero named fields.
		return obj, nil
	}
}

// modifyStructFields maps f over the exported fields in declaration order,
// then rebuilds via the canonical full-ordered-values constructor.
func modifyStructFields(obj any, rv reflect.Value, f core.UpdateFunc) (any, error) {
	t := rv.Type()
	vals := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		mapped, err := f(rv.Field(i).Interface())
		if err != nil {
			return nil, err
		}
		vals = append(vals, mapped)
	}
	if len(vals) == 0 {
		// Zero named fields: identity by contract.
		return obj, nil
	}

	return rebuild.FromValues(obj, vals)
}

// modifyMapValues maps f over the values of a string-keyed map in sorted key
// order, rebuilding a fresh map of the same type.
func modifyMapValues(rv reflect.Value, depth int, f core.UpdateFunc) (any, error) {
	if rv.Len() == 0 {
		return wrap(rv, depth), nil
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	next := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	elemType := rv.Type().Elem()
	for _, k := range keys {
		mapped, err := f(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, err
		}
		ev, err := conform(mapped, elemType)
		if err != nil {
			return nil, err
		}
		next.SetMapIndex(k, ev)
	}

	return wrap(next, depth), nil
}
