// Package core defines the Optic capability, the SetBased/ModifyBased style
// trait, and the Get/Set/Modify dispatch layer that routes every operation to
// the correct primitive — synthesizing the missing half when an optic author
// implemented only one of them.
//
// # Optics in one paragraph
//
// An Optic is an immutable value describing how to focus on a sub-part of a
// larger value. Applying an optic to an object reads the focused part;
// Set replaces it; Modify applies an update function to it. Optics compose:
// Compose(A, B) focuses A's focus inside B's focus, with ordinary function
// composition semantics (B is applied to the object first).
//
// # The style trait
//
// Every optic declares exactly one style, a pure function of the optic's kind:
//
//   - SetBased    — the optic implements Set as its primitive;
//     Modify is derived as "read the focus, apply f, write back".
//   - ModifyBased — the optic implements Modify as its primitive;
//     Set is derived as "replace the focus unconditionally".
//
// Declaring a style is a one-line embed of SetStyle or ModifyStyle.
// SetBased is the conventional default: a new optic kind only has to
// implement Set (plus Apply for reads).
//
// # Dispatch contract
//
// Get, Set and Modify are the only public evaluation entry points. Dispatch
// consults the style and routes to the matching capability interface
// (Setter or Modifier). An optic whose declared style has no matching
// implementation is a definition error (ErrMissingSet / ErrMissingModify) —
// reported immediately, never silently defaulted.
//
// # Value semantics
//
// Set and Modify return a new object and leave the original untouched, unless
// an optic's documented contract honors Mode==Mutable (field and index optics
// do; structural optics always rebuild). Every operation either fully
// succeeds or returns an error with no partially-updated result.
//
// # Resource model
//
// Evaluation is synchronous, single-threaded and allocation-light. Recursion
// depth is bounded only by the optic structure and the call stack; the opt-in
// WithMaxDepth guard turns runaway recursion into ErrDepthExceeded instead of
// a stack overflow.
package core
