// Package optics is a small toolkit of composable accessors ("optics") for
// reading and functionally updating deeply nested parts of Go values —
// structs, maps, slices and arrays — without hand-written copy-and-rebuild
// boilerplate.
//
// 🚀 What is optics?
//
//	A pure, synchronous value-transformation library that brings together:
//		• Primitive optics: field access, fixed and dynamic index access, identity
//		• Structural optics: every element, every named property, conditional, recursive
//		• A single Get / Set / Modify protocol dispatched over every optic kind
//		• Two optic-definition styles (SetBased / ModifyBased) unified by one trait
//		• Value semantics by default, with an opt-in Mutable fast path
//
// ✨ Why choose optics?
//
//   - Minimal API — three entry points (Get, Set, Modify) cover every optic
//   - Extensible — any type implementing the Optic capability composes freely
//   - Law-abiding — the classic lens laws hold for every primitive optic
//   - Pure Go — no cgo, no I/O, no goroutines, no hidden state
//
// Everything is organized under four subpackages:
//
//	core/     — Optic interface, style trait, Get/Set/Modify dispatch, composition
//	lens/     — single-focus optics: Field, Index, IndexBy
//	traverse/ — multi-focus optics: Elements, Properties, If, Recursive
//	rebuild/  — reconstruction of a value with some named fields replaced
//
// Quick taste:
//
//	deep := core.Compose(lens.Field("City"), lens.Field("Address"))
//	out, err := core.Set(person, deep, "Kyiv") // person untouched, out updated
//
// Dive into the subpackage docs for contracts, error taxonomy and examples.
package optics
