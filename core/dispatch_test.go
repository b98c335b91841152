package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/optics/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyOptic is a fully implemented SetBased optic focusing one key of a
// map[string]any. It stands in for a user-defined optic kind.
type keyOptic struct {
	core.SetStyle
	key string
}

func (k keyOptic) Apply(obj any) (any, error) {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("keyOptic: %T is not a map[string]any", obj)
	}
	v, ok := m[k.key]
	if !ok {
		return nil, fmt.Errorf("keyOptic: missing key %q", k.key)
	}

	return v, nil
}

func (k keyOptic) Set(obj, val any, _ core.Options) (any, error) {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("keyOptic: %T is not a map[string]any", obj)
	}
	out := make(map[string]any, len(m)+1)
	for kk, vv := range m {
		out[kk] = vv
	}
	out[k.key] = val

	return out, nil
}

func (k keyOptic) String() string { return fmt.Sprintf("key(%q)", k.key) }

// wholeOptic is a fully implemented ModifyBased optic focusing the whole
// object, like a conditional optic with an always-true predicate.
type wholeOptic struct {
	core.ModifyStyle
}

func (wholeOptic) Apply(obj any) (any, error) { return obj, nil }

func (wholeOptic) Modify(obj any, f core.UpdateFunc, _ core.Options) (any, error) {
	return f(obj)
}

func (wholeOptic) String() string { return "whole()" }

// setlessOptic declares SetBased style but forgets its Set primitive.
type setlessOptic struct {
	core.SetStyle
}

func (setlessOptic) Apply(obj any) (any, error) { return obj, nil }

func (setlessOptic) String() string { return "setless()" }

// modifylessOptic declares ModifyBased style but forgets its Modify primitive.
type modifylessOptic struct {
	core.ModifyStyle
}

func (modifylessOptic) Apply(obj any) (any, error) { return obj, nil }

func (modifylessOptic) String() string { return "modifyless()" }

// TestGet_Identity verifies the identity optic focuses the whole object.
func TestGet_Identity(t *testing.T) {
	got, err := core.Get(42, core.Identity())
	require.NoError(t, err, "identity get must not error")
	assert.Equal(t, 42, got, "identity focuses the whole object")
}

// TestGet_NilOptic verifies a nil optic is a definition error, not a panic.
func TestGet_NilOptic(t *testing.T) {
	_, err := core.Get(42, nil)
	assert.ErrorIs(t, err, core.ErrNilOptic, "nil optic must yield ErrNilOptic")

	_, err = core.Set(42, nil, 1)
	assert.ErrorIs(t, err, core.ErrNilOptic, "nil optic must yield ErrNilOptic on Set")

	_, err = core.Modify(42, nil, func(v any) (any, error) { return v, nil })
	assert.ErrorIs(t, err, core.ErrNilOptic, "nil optic must yield ErrNilOptic on Modify")
}

// TestLensLaws_SetBased checks the three lens laws for a SetBased optic.
func TestLensLaws_SetBased(t *testing.T) {
	o := map[string]any{"a": 1, "b": 2}
	k := keyOptic{key: "a"}

	// Law 1: you get what you set.
	set, err := core.Set(o, k, 99)
	require.NoError(t, err, "set must succeed")
	got, err := core.Get(set, k)
	require.NoError(t, err, "get after set must succeed")
	assert.Equal(t, 99, got, "get(set(o, v)) == v")

	// Law 2: setting what's there changes nothing.
	cur, err := core.Get(o, k)
	require.NoError(t, err, "get must succeed")
	same, err := core.Set(o, k, cur)
	require.NoError(t, err, "set must succeed")
	assert.Equal(t, o, same, "set(o, get(o)) == o")

	// Law 3: last set wins.
	twice, err := core.Set(o, k, 7)
	require.NoError(t, err, "first set must succeed")
	twice, err = core.Set(twice, k, 8)
	require.NoError(t, err, "second set must succeed")
	direct, err := core.Set(o, k, 8)
	require.NoError(t, err, "direct set must succeed")
	assert.Equal(t, direct, twice, "set(set(o, v1), v2) == set(o, v2)")

	// Original untouched throughout.
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, o, "value semantics: original unchanged")
}

// TestModify_DerivedFromSet verifies the read-apply-write synthesis for
// SetBased optics.
func TestModify_DerivedFromSet(t *testing.T) {
	o := map[string]any{"n": 20}
	out, err := core.Modify(o, keyOptic{key: "n"}, func(v any) (any, error) {
		return v.(int) + 1, nil
	})
	require.NoError(t, err, "derived modify must succeed")
	assert.Equal(t, map[string]any{"n": 21}, out, "modify = set(o, f(get(o)))")
}

// TestSet_DerivedFromModify verifies the constant-function synthesis for
// ModifyBased optics.
func TestSet_DerivedFromModify(t *testing.T) {
	out, err := core.Set("ignored", wholeOptic{}, "replaced")
	require.NoError(t, err, "derived set must succeed")
	assert.Equal(t, "replaced", out, "set = modify(const(val))")
}

// TestSet_MissingPrimitive verifies a SetBased optic without a Set
// implementation is a definition error and never returns a value.
func TestSet_MissingPrimitive(t *testing.T) {
	out, err := core.Set(1, setlessOptic{}, 2)
	assert.ErrorIs(t, err, core.ErrMissingSet, "missing Set primitive must be a definition error")
	assert.Nil(t, out, "no value on a definition error")
	assert.Contains(t, err.Error(), "setless()", "error must name the optic shape")

	// The derived Modify of a SetBased optic also needs Set.
	_, err = core.Modify(1, setlessOptic{}, func(v any) (any, error) { return v, nil })
	assert.ErrorIs(t, err, core.ErrMissingSet, "derived modify needs the Set primitive")
}

// TestModify_MissingPrimitive verifies a ModifyBased optic without a Modify
// implementation is a definition error.
func TestModify_MissingPrimitive(t *testing.T) {
	_, err := core.Modify(1, modifylessOptic{}, func(v any) (any, error) { return v, nil })
	assert.ErrorIs(t, err, core.ErrMissingModify, "missing Modify primitive must be a definition error")
	assert.Contains(t, err.Error(), "modifyless()", "error must name the optic shape")

	// The derived Set of a ModifyBased optic also needs Modify.
	_, err = core.Set(1, modifylessOptic{}, 2)
	assert.ErrorIs(t, err, core.ErrMissingModify, "derived set needs the Modify primitive")
}

// TestModify_ErrorAborts verifies an UpdateFunc error aborts with no result.
func TestModify_ErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	out, err := core.Modify(map[string]any{"a": 1}, keyOptic{key: "a"}, func(any) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom, "update error must propagate unchanged")
	assert.Nil(t, out, "no partial result on update error")
}

// TestMaxDepth_Guard verifies the opt-in depth guard trips on deep pipelines.
func TestMaxDepth_Guard(t *testing.T) {
	obj := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}
	deep := core.Compose(keyOptic{key: "c"}, keyOptic{key: "b"}, keyOptic{key: "a"})

	_, err := core.Set(obj, deep, 9, core.WithMaxDepth(2))
	assert.ErrorIs(t, err, core.ErrDepthExceeded, "three-stage set under MaxDepth=2 must trip the guard")

	out, err := core.Set(obj, deep, 9, core.WithMaxDepth(64))
	require.NoError(t, err, "generous bound must not trip")
	assert.Equal(t, map[string]any{"a": map[string]any{"b": map[string]any{"c": 9}}}, out,
		"guarded set still produces the full result")
}

// TestOptionConstructors_Validate verifies option constructors panic on
// meaningless input.
func TestOptionConstructors_Validate(t *testing.T) {
	assert.Panics(t, func() { core.WithMaxDepth(-1) }, "negative depth must panic")
	assert.Panics(t, func() { core.WithMode(core.Mode(42)) }, "unknown mode must panic")
	assert.NotPanics(t, func() { core.WithMode(core.Mutable) }, "valid mode must not panic")
	assert.NotPanics(t, func() { core.WithMaxDepth(0) }, "zero depth restores the default")
}

// TestStyleAndMode_String covers the enum names used in errors and traces.
func TestStyleAndMode_String(t *testing.T) {
	assert.Equal(t, "SetBased", core.SetBased.String(), "style name")
	assert.Equal(t, "ModifyBased", core.ModifyBased.String(), "style name")
	assert.Equal(t, "Immutable", core.Immutable.String(), "mode name")
	assert.Equal(t, "Mutable", core.Mutable.String(), "mode name")
}
