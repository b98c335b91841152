package lens

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/optics/core"
	"github.com/katalvlaran/optics/rebuild"
)

// FieldOptic focuses one named field of a struct or one string key of a map.
// SetBased: Set is the primitive, the derived Modify reads, applies, writes
// back.
type FieldOptic struct {
	core.SetStyle
	name string
}

// Field returns an optic focusing the named field. Panics on an empty name —
// a programmer error caught at construction time. Whether the field exists
// on a given object kind is checked on first use (ErrNoSuchField).
func Field(name string) *FieldOptic {
	if name == "" {
		panic(`lens: Field("")`)
	}

	return &FieldOptic{name: name}
}

// Name returns the focused field name.
func (f *FieldOptic) Name() string { return f.name }

// String names the optic shape in errors and traces.
func (f *FieldOptic) String() string { return fmt.Sprintf("Field(%q)", f.name) }

// Apply reads the focused field.
//
// Structs: exported field by name, ErrNoSuchField if the kind lacks it.
// Maps with string-class keys: keyed lookup, ErrNoSuchKey if absent.
func (f *FieldOptic) Apply(obj any) (any, error) {
	rv, _, err := deref(obj)
	if err != nil {
		return nil, err
	}

	switch rv.Kind() {
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(f.name)
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchField, f.name, rv.Type())
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("%w: %q on %s is unexported", ErrNoSuchField, f.name, rv.Type())
		}

		return rv.FieldByIndex(sf.Index).Interface(), nil
	case reflect.Map:
		key, err := mapKey(f.name, rv.Type().Key())
		if err != nil {
			return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchField, f.name, rv.Type())
		}
		v := rv.MapIndex(key)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %q in %s", ErrNoSuchKey, f.name, rv.Type())
		}

		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("%w: %q on kind %s", ErrNoSuchField, f.name, rv.Kind())
	}
}

// Set replaces the focused field.
//
// Structs: rebuilt via rebuild.WithFields (same concrete kind, every other
// field preserved). Under Mutable mode a pointer-to-struct target is written
// in place and the same pointer returned.
// Maps: entry written in place under Mutable mode (same map returned),
// copy-and-replace under Immutable.
func (f *FieldOptic) Set(obj, val any, op core.Options) (any, error) {
	rv := reflect.ValueOf(obj)

	// Mutable fast path: field write through a pointer to struct.
	if op.Mode == core.Mutable && rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		elem := rv.Elem()
		sf, ok := elem.Type().FieldByName(f.name)
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchField, f.name, elem.Type())
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("%w: %q on %s is unexported", ErrNoSuchField, f.name, elem.Type())
		}
		fv, err := conform(val, sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q of %s: %w", f.name, elem.Type(), err)
		}
		elem.FieldByIndex(sf.Index).Set(fv)

		return obj, nil
	}

	dv, depth, err := deref(obj)
	if err != nil {
		return nil, err
	}

	switch dv.Kind() {
	case reflect.Struct:
		out, err := rebuild.WithFields(obj, map[string]any{f.name: val})
		if err != nil {
			// Keep the lens-level taxonomy for the missing-field case.
			if rebuildFieldMissing(err) {
				return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchField, f.name, dv.Type())
			}

			return nil, err
		}

		return out, nil
	case reflect.Map:
		return setMapEntry(dv, depth, obj, f.name, val, op.Mode)
	default:
		return nil, fmt.Errorf("%w: %q on kind %s", ErrNoSuchField, f.name, dv.Kind())
	}
}

// rebuildFieldMissing reports whether err is the rebuild-level flavor of a
// nonexistent or unsettable field.
func rebuildFieldMissing(err error) bool {
	return errors.Is(err, rebuild.ErrUnknownField) || errors.Is(err, rebuild.ErrUnexportedField)
}

// setMapEntry writes key=val into the map value mv, in place under Mutable
// mode, on a fresh copy otherwise. A nil map always takes the copy path.
func setMapEntry(mv reflect.Value, depth int, obj any, key, val any, mode core.Mode) (any, error) {
	kv, err := mapKey(key, mv.Type().Key())
	if err != nil {
		return nil, err
	}
	ev, err := conform(val, mv.Type().Elem())
	if err != nil {
		return nil, err
	}

	if mode == core.Mutable && !mv.IsNil() {
		mv.SetMapIndex(kv, ev)

		return obj, nil
	}

	next := reflect.MakeMapWithSize(mv.Type(), mv.Len()+1)
	iter := mv.MapRange()
	for iter.Next() {
		next.SetMapIndex(iter.Key(), iter.Value())
	}
	next.SetMapIndex(kv, ev)

	return wrap(next, depth), nil
}
