package traverse

import (
	"fmt"

	"github.com/katalvlaran/optics/core"
)

// RecursiveOptic applies an inner optic and recurses depth-first into every
// sub-value for which a descent predicate holds. ModifyBased.
type RecursiveOptic struct {
	core.ModifyStyle
	descend Predicate
	inner   core.Optic
}

// Recursive returns a recursive optic. Panics on a nil predicate or optic —
// programmer errors caught at construction time.
//
// Modify applies inner to the object; each sub-value reached through inner
// is either recursed into (descend holds) or updated with f (descend does
// not hold). The descent test is never evaluated on the top-level object —
// only on values reached through inner. Recursion happens before f at
// non-descending leaves, so the walk is depth-first.
//
// Termination is a caller precondition: descend must eventually become false
// along every path. core.WithMaxDepth converts runaway descent into
// core.ErrDepthExceeded.
func Recursive(descend Predicate, inner core.Optic) *RecursiveOptic {
	if descend == nil {
		panic("traverse: Recursive(nil predicate)")
	}
	if inner == nil {
		panic("traverse: Recursive(nil optic)")
	}

	return &RecursiveOptic{descend: descend, inner: inner}
}

// Inner returns the optic applied at each level of the descent.
func (r *RecursiveOptic) Inner() core.Optic { return r.inner }

// String names the optic shape in errors and traces.
func (r *RecursiveOptic) String() string {
	return fmt.Sprintf("Recursive(descend, %v)", r.inner)
}

// Apply has no single-value semantics for a multi-focus optic.
func (r *RecursiveOptic) Apply(any) (any, error) {
	return nil, fmt.Errorf("%w: %v", ErrMultiFocus, r)
}

// Modify walks the structure through the dispatch layer so each stage's
// style, the mutability mode and the depth guard are honored.
func (r *RecursiveOptic) Modify(obj any, f core.UpdateFunc, op core.Options) (any, error) {
	return core.ModifyWith(obj, r.inner, func(sub any) (any, error) {
		if r.descend(sub) {
			return core.ModifyWith(sub, r, f, op)
		}

		return f(sub)
	}, op)
}
