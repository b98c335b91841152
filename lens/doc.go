// Package lens provides the single-focus primitive optics:
//
//   - Field(name) — focuses one named field of a struct (exported) or one
//     string key of a map.
//   - Index(indices...) — focuses one element through a fixed index/key
//     tuple, applied successively (obj[i][j]...).
//   - IndexBy(fn) — like Index, but the tuple is recomputed from the current
//     object on every application (e.g. "last element").
//
// All three are SetBased: Set is the primitive, Modify is derived by the
// core dispatch layer. Writes are value-semantic by default — the original
// object is untouched and a fresh value is returned. Under
// core.WithMode(core.Mutable), targets with in-place capability (struct
// fields reached through a pointer, slice elements, map entries) are written
// in place and the same reference is returned; arrays held by value have no
// such capability and always take the immutable path.
//
// Referencing a field the object's kind does not have is a definition error
// (ErrNoSuchField), surfaced on first use — field presence cannot be checked
// at construction time, when no object kind is known yet. Shape mismatches
// during indexing (out-of-range, missing key, wrong index type) are data
// errors propagated from the structural operation.
package lens
