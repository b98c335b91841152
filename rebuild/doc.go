// Package rebuild reconstructs a value of the identical concrete kind with
// some named fields replaced and every other field preserved exactly.
//
// It is the single mechanism underlying the field optic's immutable write
// path and the Properties traversal: a struct is rebuilt from its full
// ordered field list, patched where specified, original otherwise. A value
// with no named fields is returned unchanged.
//
// Three primitives:
//
//   - FieldNames — ordered exported field names of a struct kind.
//   - WithFields — rebuild with a name→value patch applied.
//   - FromValues — rebuild from the complete ordered exported-field values.
//
// Pointer indirection is transparent: a *T in yields a fresh *T out, the
// original untouched. Unexported fields are carried over verbatim by the
// whole-value copy, but may not themselves be patched.
//
// Overlay is a supplementary convenience with different semantics: it merges
// a sparse patch struct onto a copy of the object via dario.cat/mergo
// (override semantics, empty patch fields skipped unless OverwriteWithEmpty
// is given). Use WithFields when you need the exact replace contract.
package rebuild
