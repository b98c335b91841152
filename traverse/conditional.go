package traverse

import "github.com/katalvlaran/optics/core"

// Predicate reports whether the conditional optic should act on a value.
// It must be pure: dispatch may evaluate it once per focused value.
type Predicate func(v any) bool

// IfOptic focuses the object itself, but only where a predicate holds;
// elsewhere the object passes through untouched. ModifyBased.
type IfOptic struct {
	core.ModifyStyle
	pred Predicate
}

// If returns a conditional optic. Panics on a nil predicate — a programmer
// error caught at construction time.
//
// Typical use restricts a broader optic, e.g.
// core.Compose(If(isEven), Elements()) updates only even-valued elements;
// the predicate is evaluated per focused value.
func If(pred Predicate) *IfOptic {
	if pred == nil {
		panic("traverse: If(nil)")
	}

	return &IfOptic{pred: pred}
}

// String names the optic shape in errors and traces.
func (*IfOptic) String() string { return "If(pred)" }

// Apply returns the object itself: the conditional optic's focus is the
// whole object, whether or not the predicate holds.
func (c *IfOptic) Apply(obj any) (any, error) { return obj, nil }

// Modify applies f to obj iff the predicate holds, else returns obj
// unchanged.
func (c *IfOptic) Modify(obj any, f core.UpdateFunc, _ core.Options) (any, error) {
	if !c.pred(obj) {
		return obj, nil
	}

	return f(obj)
}
