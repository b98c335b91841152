// SPDX-License-Identifier: MIT
// Package: optics/core
//
// identity.go — the identity optic, neutral element of composition.

package core

// IdentityOptic focuses the whole object. SetBased: Set replaces the object
// outright, and the derived Modify is therefore plain function application.
type IdentityOptic struct {
	SetStyle
}

// Identity returns the identity optic. Composing it with any optic yields the
// other operand unchanged (see Compose).
func Identity() *IdentityOptic { return &IdentityOptic{} }

// Apply returns obj itself: the focus is the whole object.
func (*IdentityOptic) Apply(obj any) (any, error) { return obj, nil }

// Set replaces the whole object with val; obj is ignored by contract.
func (*IdentityOptic) Set(_, val any, _ Options) (any, error) { return val, nil }

// String names the optic shape in errors and traces.
func (*IdentityOptic) String() string { return "Identity()" }
