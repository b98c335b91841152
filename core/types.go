// SPDX-License-Identifier: MIT
// Package: optics/core
//
// types.go — the Optic capability, style trait, mutability mode and options.
//
// Contract (strict):
//   • Style is a pure function of the optic's kind; it never varies at
//     runtime for a fixed optic value.
//   • Optics are immutable after construction and safe to reuse any number
//     of times.
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     dispatch itself never panics, it returns sentinel errors.

package core

// Style classifies which primitive an optic implements.
//
//   - SetBased    — Set is the required primitive, Modify is derived.
//   - ModifyBased — Modify is the required primitive, Set is derived.
type Style int

const (
	// SetBased optics implement Set; Modify is synthesized as
	// Set(obj, o, f(Get(obj, o))). This is the conventional default style.
	SetBased Style = iota

	// ModifyBased optics implement Modify; Set is synthesized as a Modify
	// with an update function that ignores the focus and returns the value.
	ModifyBased
)

// String returns the style name for error messages and traces.
func (s Style) String() string {
	switch s {
	case SetBased:
		return "SetBased"
	case ModifyBased:
		return "ModifyBased"
	default:
		return "Style(?)"
	}
}

// Mode selects between value-semantic rebuilds and in-place writes.
// It is a hint consulted only by optics whose contract documents it
// (field and index optics); structural optics always rebuild.
type Mode int

const (
	// Immutable mode: Set/Modify return a fresh value, the original object
	// is never touched. This is the default.
	Immutable Mode = iota

	// Mutable mode: optics that support it (field writes through a struct
	// pointer, slice and map element writes) mutate in place and return the
	// same reference. Collections without in-place capability (arrays held
	// by value) take the immutable path regardless.
	Mutable
)

// String returns the mode name for error messages and traces.
func (m Mode) String() string {
	switch m {
	case Immutable:
		return "Immutable"
	case Mutable:
		return "Mutable"
	default:
		return "Mode(?)"
	}
}

// UpdateFunc receives the current focus and returns its replacement.
// Returning an error aborts the whole operation with no partial update.
type UpdateFunc func(v any) (any, error)

// Optic is the minimal capability every optic kind provides: reading the
// focused part and declaring a style. Writing goes through exactly one of
// the Setter/Modifier capabilities, chosen by the declared style.
//
// The interface is open: user-defined optic kinds compose freely with the
// built-in ones.
type Optic interface {
	// Apply extracts the focused sub-value from obj.
	Apply(obj any) (any, error)

	// Style reports the optic's required primitive.
	Style() Style
}

// Setter is the required capability for SetBased optics.
type Setter interface {
	Optic

	// Set returns obj with the focus replaced by val. Honors op.Mode where
	// the optic's contract documents in-place mutation.
	Set(obj, val any, op Options) (any, error)
}

// Modifier is the required capability for ModifyBased optics.
type Modifier interface {
	Optic

	// Modify returns obj with f applied to the focus (or to every focus,
	// for multi-focus optics).
	Modify(obj any, f UpdateFunc, op Options) (any, error)
}

// SetStyle is a zero-size embeddable marker declaring SetBased style.
//
//	type MyOptic struct{ core.SetStyle }
type SetStyle struct{}

// Style reports SetBased.
func (SetStyle) Style() Style { return SetBased }

// ModifyStyle is a zero-size embeddable marker declaring ModifyBased style.
type ModifyStyle struct{}

// Style reports ModifyBased.
func (ModifyStyle) Style() Style { return ModifyBased }

// Options configures a single Get/Set/Modify evaluation.
//
// Fields:
//   - Mode     — Immutable (default) or Mutable; see Mode.
//   - Verbose  — if true, each dispatch step is traced to stdout.
//   - MaxDepth — if > 0, dispatch aborts with ErrDepthExceeded once more
//     than MaxDepth nested dispatch steps are taken. Guards against
//     runaway Recursive descent; 0 means unlimited.
//
// The zero value is ready to use; DefaultOptions returns it explicitly.
type Options struct {
	Mode     Mode
	Verbose  bool
	MaxDepth int

	// depth counts nested dispatch steps for the MaxDepth guard.
	depth int
}

// DefaultOptions returns the default evaluation options:
// Immutable mode, no tracing, unlimited depth.
func DefaultOptions() Options { return Options{} }

// Option customizes one evaluation of Get/Set/Modify.
type Option func(*Options)

// WithMode selects the mutability mode. Panics on an unknown mode to surface
// programmer error early.
func WithMode(m Mode) Option {
	if m != Immutable && m != Mutable {
		panic("core: WithMode: unknown mode")
	}

	return func(o *Options) { o.Mode = m }
}

// WithVerbose enables tracing of each dispatch step to stdout.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithMaxDepth bounds the number of nested dispatch steps. Panics on a
// negative bound; 0 restores the unlimited default.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic("core: WithMaxDepth: negative depth")
	}

	return func(o *Options) { o.MaxDepth = n }
}
