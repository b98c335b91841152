// SPDX-License-Identifier: MIT
// Package: optics/core
//
// errors.go — sentinel errors for the dispatch layer.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     dispatch attaches the optic's shape with %w at the return site.
//   • Definition errors report optic-author mistakes and are never silently
//     defaulted; data errors from underlying structural operations propagate
//     unchanged through dispatch.

package core

import "errors"

// ErrNilOptic indicates a nil Optic was passed to Get, Set or Modify.
// Classification: Definition error (caller programming mistake).
// Usage: if errors.Is(err, core.ErrNilOptic) { ... }.
var ErrNilOptic = errors.New("core: nil optic")

// ErrMissingSet indicates an optic declared SetBased style but does not
// implement the Setter capability, so its required primitive is undefined.
// Classification: Definition error. The wrapped message names the optic shape.
var ErrMissingSet = errors.New("core: SetBased optic does not implement Set")

// ErrMissingModify indicates an optic declared ModifyBased style but does not
// implement the Modifier capability.
// Classification: Definition error. The wrapped message names the optic shape.
var ErrMissingModify = errors.New("core: ModifyBased optic does not implement Modify")

// ErrUnknownStyle indicates an optic reported a Style value outside the
// closed {SetBased, ModifyBased} set.
// Classification: Definition error.
var ErrUnknownStyle = errors.New("core: unknown optic style")

// ErrDepthExceeded indicates the WithMaxDepth guard tripped: more nested
// dispatch steps were taken than the configured bound allows.
// Classification: Resource-exhaustion guard (typically a non-terminating
// Recursive descent predicate).
var ErrDepthExceeded = errors.New("core: maximum dispatch depth exceeded")
