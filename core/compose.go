// SPDX-License-Identifier: MIT
// Package: optics/core
//
// compose.go — the composition engine.
//
// Contract (strict):
//   • Compose(A, B) has function-composition semantics: applying it to an
//     object focuses through B ("inner") first, then through A ("outer").
//   • Compose folds left-associated: Compose(a, b, c) == (a∘b)∘c.
//   • Identity operands are eliminated structurally: composing with the
//     identity optic yields the other operand itself.
//   • A composed optic is ModifyBased if either component is, else SetBased;
//     it implements both primitives so dispatch can route either way.

package core

import "fmt"

// ComposedOptic is an ordered pair of optics focusing outer's focus within
// inner's focus.
type ComposedOptic struct {
	outer, inner Optic
}

// Compose builds a left-associated pipeline from the given optics.
//
// Zero operands (or all-identity operands) yield the identity optic; a single
// surviving operand is returned as-is. Panics on a nil operand — composing
// nothing is a programmer error, caught at construction time.
//
// Complexity: O(len(optics)) construction; evaluation recurses once per
// component.
func Compose(optics ...Optic) Optic {
	kept := make([]Optic, 0, len(optics))
	for _, o := range optics {
		if o == nil {
			panic("core: Compose(nil optic)")
		}
		if _, isID := o.(*IdentityOptic); isID {
			// Neutral element: identity contributes nothing to the pipeline.
			continue
		}
		kept = append(kept, o)
	}

	switch len(kept) {
	case 0:
		return Identity()
	case 1:
		return kept[0]
	}

	out := kept[0]
	for _, o := range kept[1:] {
		out = &ComposedOptic{outer: out, inner: o}
	}

	return out
}

// Outer returns the optic applied second (the left operand).
func (c *ComposedOptic) Outer() Optic { return c.outer }

// Inner returns the optic applied first (the right operand).
func (c *ComposedOptic) Inner() Optic { return c.inner }

// Style derives the composed style: ModifyBased if either component is
// ModifyBased, else SetBased.
func (c *ComposedOptic) Style() Style {
	if c.outer.Style() == ModifyBased || c.inner.Style() == ModifyBased {
		return ModifyBased
	}

	return SetBased
}

// Apply focuses through inner first, then through outer on the result —
// ordinary function composition direction.
func (c *ComposedOptic) Apply(obj any) (any, error) {
	mid, err := Get(obj, c.inner)
	if err != nil {
		return nil, err
	}

	return Get(mid, c.outer)
}

// Set resolves the SetBased path recursively:
// read through inner, set through outer within that region, write the updated
// region back through inner. Each stage dispatches by its own style.
func (c *ComposedOptic) Set(obj, val any, op Options) (any, error) {
	mid, err := Get(obj, c.inner)
	if err != nil {
		return nil, err
	}
	updated, err := SetWith(mid, c.outer, val, op)
	if err != nil {
		return nil, err
	}

	return SetWith(obj, c.inner, updated, op)
}

// Modify resolves the ModifyBased path: modify through inner, and within each
// inner focus modify through outer.
func (c *ComposedOptic) Modify(obj any, f UpdateFunc, op Options) (any, error) {
	return ModifyWith(obj, c.inner, func(mid any) (any, error) {
		return ModifyWith(mid, c.outer, f, op)
	}, op)
}

// String names the optic shape in errors and traces.
func (c *ComposedOptic) String() string {
	return fmt.Sprintf("Compose(%v, %v)", c.outer, c.inner)
}
