package lens

import (
	"fmt"

	"github.com/katalvlaran/optics/core"
)

// IndexFunc computes an index/key tuple from the object it will be applied
// to. It must be pure: dispatch may invoke it more than once per operation
// (once for the read half and once for the write half of a derived Modify).
type IndexFunc func(obj any) []any

// DynamicIndexOptic focuses one element through an index/key tuple
// recomputed from the current object on every application — index
// expressions that depend on the object, such as "last element". SetBased.
type DynamicIndexOptic struct {
	core.SetStyle
	fn IndexFunc
}

// IndexBy returns a dynamic index optic. Panics on a nil function — a
// programmer error caught at construction time.
func IndexBy(fn IndexFunc) *DynamicIndexOptic {
	if fn == nil {
		panic("lens: IndexBy(nil)")
	}

	return &DynamicIndexOptic{fn: fn}
}

// String names the optic shape in errors and traces.
func (d *DynamicIndexOptic) String() string { return "IndexBy(fn)" }

// Apply evaluates the index function against obj, then reads at the computed
// tuple. An empty computed tuple is ErrEmptyIndexPath.
func (d *DynamicIndexOptic) Apply(obj any) (any, error) {
	path, err := d.path(obj)
	if err != nil {
		return nil, err
	}

	return indexGet(obj, path)
}

// Set evaluates the index function against obj, then writes at the computed
// tuple with the same semantics as a fixed Index optic.
func (d *DynamicIndexOptic) Set(obj, val any, op core.Options) (any, error) {
	path, err := d.path(obj)
	if err != nil {
		return nil, err
	}

	return indexSet(obj, path, val, op.Mode)
}

func (d *DynamicIndexOptic) path(obj any) ([]any, error) {
	path := d.fn(obj)
	if len(path) == 0 {
		return nil, fmt.Errorf("%w (object kind %T)", ErrEmptyIndexPath, obj)
	}

	return path, nil
}
