package lens

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/optics/core"
)

// IndexOptic focuses one element through a fixed index/key tuple, applied
// successively: Index(1, "k") focuses obj[1]["k"]. SetBased.
type IndexOptic struct {
	core.SetStyle
	path []any
}

// Index returns an optic for the given index/key tuple. Panics on an empty
// tuple — a programmer error caught at construction time. The tuple is
// copied; the optic is immutable afterwards.
func Index(indices ...any) *IndexOptic {
	if len(indices) == 0 {
		panic("lens: Index() requires at least one index")
	}
	path := make([]any, len(indices))
	copy(path, indices)

	return &IndexOptic{path: path}
}

// Indices returns a copy of the fixed index tuple.
func (ix *IndexOptic) Indices() []any {
	out := make([]any, len(ix.path))
	copy(out, ix.path)

	return out
}

// String names the optic shape in errors and traces.
func (ix *IndexOptic) String() string {
	parts := make([]string, len(ix.path))
	for i, idx := range ix.path {
		parts[i] = fmt.Sprintf("%#v", idx)
	}

	return "Index(" + strings.Join(parts, ", ") + ")"
}

// Apply reads the element at the tuple position.
func (ix *IndexOptic) Apply(obj any) (any, error) {
	return indexGet(obj, ix.path)
}

// Set replaces the element at the tuple position, rebuilding the container
// spine above it. See the package doc for the Mutable fast path.
func (ix *IndexOptic) Set(obj, val any, op core.Options) (any, error) {
	return indexSet(obj, ix.path, val, op.Mode)
}

// indexGet applies each index in turn.
func indexGet(obj any, path []any) (any, error) {
	cur := obj
	for _, idx := range path {
		v, err := indexAt(cur, idx)
		if err != nil {
			return nil, err
		}
		cur = v
	}

	return cur, nil
}

// indexAt performs a single positional or keyed read.
func indexAt(obj, idx any) (any, error) {
	rv, _, err := deref(obj)
	if err != nil {
		return nil, err
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i, ok := intIndex(idx)
		if !ok {
			return nil, fmt.Errorf("%w: %T index for %s", ErrBadIndexType, idx, rv.Type())
		}
		if i < 0 || i >= rv.Len() {
			return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, rv.Len())
		}

		return rv.Index(i).Interface(), nil
	case reflect.Map:
		kv, err := mapKey(idx, rv.Type().Key())
		if err != nil {
			return nil, err
		}
		v := rv.MapIndex(kv)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %v in %s", ErrNoSuchKey, idx, rv.Type())
		}

		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrNotIndexable, rv.Kind())
	}
}

// indexSet recursively rebuilds the spine: setting at depth k rewrites the
// container at every level above it (except where the Mutable fast path
// writes in place).
func indexSet(obj any, path []any, val any, mode core.Mode) (any, error) {
	if len(path) > 1 {
		inner, err := indexAt(obj, path[0])
		if err != nil {
			return nil, err
		}
		sub, err := indexSet(inner, path[1:], val, mode)
		if err != nil {
			return nil, err
		}
		val = sub
	}

	return replaceAt(obj, path[0], val, mode)
}

// replaceAt writes one element.
//
// Slices: in place under Mutable, copy-and-replace otherwise.
// Arrays: always copied — a fixed-size tuple held by value has no in-place
// indexed-write capability, regardless of the requested mode.
// Maps: in place under Mutable (nil maps excepted), copy otherwise.
func replaceAt(obj, idx, val any, mode core.Mode) (any, error) {
	rv, depth, err := deref(obj)
	if err != nil {
		return nil, err
	}

	switch rv.Kind() {
	case reflect.Slice:
		i, ok := intIndex(idx)
		if !ok {
			return nil, fmt.Errorf("%w: %T index for %s", ErrBadIndexType, idx, rv.Type())
		}
		if i < 0 || i >= rv.Len() {
			return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, rv.Len())
		}
		ev, err := conform(val, rv.Type().Elem())
		if err != nil {
			return nil, err
		}
		if mode == core.Mutable {
			rv.Index(i).Set(ev)

			return obj, nil
		}
		next := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(next, rv)
		next.Index(i).Set(ev)

		return wrap(next, depth), nil
	case reflect.Array:
		i, ok := intIndex(idx)
		if !ok {
			return nil, fmt.Errorf("%w: %T index for %s", ErrBadIndexType, idx, rv.Type())
		}
		if i < 0 || i >= rv.Len() {
			return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, rv.Len())
		}
		ev, err := conform(val, rv.Type().Elem())
		if err != nil {
			return nil, err
		}
		next := reflect.New(rv.Type()).Elem()
		next.Set(rv)
		next.Index(i).Set(ev)

		return wrap(next, depth), nil
	case reflect.Map:
		return setMapEntry(rv, depth, obj, idx, val, mode)
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrNotIndexable, rv.Kind())
	}
}
