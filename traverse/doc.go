// Package traverse provides the multi-focus structural optics:
//
//   - Elements()  — every element of a slice, array or map, simultaneously.
//   - Properties() — every named field of a struct (declaration order) or
//     every value of a string-keyed map (sorted key order).
//   - If(pred)    — the object itself, but only where pred holds.
//   - Recursive(descend, inner) — applies inner, recursing depth-first into
//     every sub-value for which descend holds.
//
// All four are ModifyBased: Modify is the primitive, and the derived Set
// replaces every focus with the same constant value. None consults the
// mutability mode — structural traversals always rebuild a fresh collection
// or object of the same concrete kind.
//
// Elements, Properties and Recursive have no single-value read: Apply
// returns ErrMultiFocus. If's focus is the whole object, so its Apply
// returns the object unchanged.
//
// Composing restricts: Compose(If(pred), Elements()) applies an update only
// to the elements satisfying pred, evaluating the predicate per focused
// value. Composing Recursive with Properties walks arbitrarily nested
// records.
//
// Termination of Recursive is a caller precondition: descend must eventually
// become false along every path. core.WithMaxDepth offers a defensive
// backstop, turning runaway descent into core.ErrDepthExceeded.
package traverse
