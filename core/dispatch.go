// SPDX-License-Identifier: MIT
// Package: optics/core
//
// dispatch.go — the Get/Set/Modify entry points and style-driven routing.
//
// Contract (strict):
//   • Dispatch consults Optic.Style() and routes to the matching capability;
//     a declared style with no matching implementation is a definition error.
//   • The derived primitive is synthesized here, in exactly one place:
//     Set-from-Modify uses a constant UpdateFunc; Modify-from-Set reads the
//     focus, applies f, writes back.
//   • SetWith/ModifyWith are the recursion plumbing for composed and
//     structural optics: options (mode, verbosity, depth guard) are inherited
//     by passing the received Options value onward.

package core

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Get reads the focused sub-value of obj through o.
// Equivalent to applying the optic as a function to the object.
// Complexity: one Apply per optic in the (possibly composed) pipeline.
func Get(obj any, o Optic) (any, error) {
	if o == nil {
		return nil, ErrNilOptic
	}

	return o.Apply(obj)
}

// Set returns obj with the focus of o replaced by val.
//
// SetBased optics take their direct Set implementation; ModifyBased optics
// derive Set as "replace the focus unconditionally". The original object is
// untouched unless WithMode(Mutable) is given and the optic's contract
// documents in-place writes.
func Set(obj any, o Optic, val any, opts ...Option) (any, error) {
	op := DefaultOptions()
	for _, fn := range opts {
		fn(&op)
	}

	return SetWith(obj, o, val, op)
}

// Modify returns obj with f applied to the focus of o.
//
// ModifyBased optics take their direct Modify implementation; SetBased optics
// derive Modify as Set(obj, o, f(Get(obj, o))). An error from f aborts the
// operation with no partial update.
func Modify(obj any, o Optic, f UpdateFunc, opts ...Option) (any, error) {
	op := DefaultOptions()
	for _, fn := range opts {
		fn(&op)
	}

	return ModifyWith(obj, o, f, op)
}

// SetWith is Set with explicit, inherited Options. Optic implementations
// recursing into sub-optics call this (not Set) so mode, verbosity and the
// depth guard flow through the whole pipeline.
func SetWith(obj any, o Optic, val any, op Options) (any, error) {
	if o == nil {
		return nil, ErrNilOptic
	}
	if err := op.step(o, "set"); err != nil {
		return nil, err
	}

	switch o.Style() {
	case SetBased:
		s, ok := o.(Setter)
		if !ok {
			return nil, fmt.Errorf("%w: optic %v", ErrMissingSet, o)
		}

		return s.Set(obj, val, op)
	case ModifyBased:
		m, ok := o.(Modifier)
		if !ok {
			return nil, fmt.Errorf("%w: optic %v", ErrMissingModify, o)
		}

		// Derived Set: replace the focus unconditionally with val.
		return m.Modify(obj, func(any) (any, error) { return val, nil }, op)
	default:
		return nil, fmt.Errorf("%w: %d reported by optic %v", ErrUnknownStyle, o.Style(), o)
	}
}

// ModifyWith is Modify with explicit, inherited Options; see SetWith.
func ModifyWith(obj any, o Optic, f UpdateFunc, op Options) (any, error) {
	if o == nil {
		return nil, ErrNilOptic
	}
	if err := op.step(o, "modify"); err != nil {
		return nil, err
	}

	switch o.Style() {
	case ModifyBased:
		m, ok := o.(Modifier)
		if !ok {
			return nil, fmt.Errorf("%w: optic %v", ErrMissingModify, o)
		}

		return m.Modify(obj, f, op)
	case SetBased:
		s, ok := o.(Setter)
		if !ok {
			return nil, fmt.Errorf("%w: optic %v", ErrMissingSet, o)
		}

		// Derived Modify: read the current focus, apply f, write back.
		cur, err := o.Apply(obj)
		if err != nil {
			return nil, err
		}
		next, err := f(cur)
		if err != nil {
			return nil, err
		}

		return s.Set(obj, next, op)
	default:
		return nil, fmt.Errorf("%w: %d reported by optic %v", ErrUnknownStyle, o.Style(), o)
	}
}

// step advances the depth counter, enforces the MaxDepth guard and emits the
// verbose trace for one dispatch step.
func (op *Options) step(o Optic, verb string) error {
	op.depth++
	if op.MaxDepth > 0 && op.depth > op.MaxDepth {
		return fmt.Errorf("%w: %d steps (optic %v)", ErrDepthExceeded, op.depth, o)
	}
	if op.Verbose {
		fmt.Printf("optics: %s depth=%d style=%v optic=%s\n", verb, op.depth, o.Style(), spew.Sprintf("%v", o))
	}

	return nil
}
