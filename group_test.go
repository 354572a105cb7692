package xgxgroup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Basic(t *testing.T) {
	a := NewError(KindInvalid, "A")
	b := NewError(KindTimeout, "B")
	g, err := New("many error.", []error{a, b}, []string{"first", "second"})
	require.NoError(t, err)

	assert.Equal(t, "many error.", g.Message())
	assert.Equal(t, []error{a, b}, g.Exceptions())
	assert.Equal(t, []string{"first", "second"}, g.Sources())
	assert.Equal(t, 2, g.Len())
}

// The derived shape is the exact specialization over the member kinds, and
// identity-equal to an independently requested shape.
func TestNew_DerivesExactShape(t *testing.T) {
	g, err := New("m",
		[]error{NewError(KindNotFound, "a"), NewError(KindTimeout, "b")},
		[]string{"s1", "s2"})
	require.NoError(t, err)

	want := Grouped.MustSpecialize(KindNotFound, KindTimeout)
	assert.Same(t, want, g.Shape(), "derived shape must be the cached identity")
	assert.False(t, g.Shape().Inclusive(), "derived shapes are exact")
}

// Members of the same kind coalesce in the shape; the group keeps both.
func TestNew_DuplicateKindsCollapseInShape(t *testing.T) {
	g, err := New("m",
		[]error{NewError(KindNotFound, "a"), NewError(KindNotFound, "b")},
		[]string{"s1", "s2"})
	require.NoError(t, err)

	assert.Len(t, g.Exceptions(), 2)
	assert.Same(t, Grouped.MustSpecialize(KindNotFound), g.Shape())
}

func TestNew_ForeignMembersClassifyAsInternal(t *testing.T) {
	g, err := New("m", []error{errors.New("plain")}, []string{"here"})
	require.NoError(t, err)
	assert.Same(t, Grouped.MustSpecialize(KindInternal), g.Shape())
}

func TestNew_ValidationFailures(t *testing.T) {
	t.Run("nil member", func(t *testing.T) {
		_, err := New("m", []error{NewError(KindInvalid, "ok"), nil}, []string{"a", "b"})
		var ime *InvalidMemberError
		require.ErrorAs(t, err, &ime)
		assert.Equal(t, 1, ime.Index)
	})
	t.Run("source count mismatch", func(t *testing.T) {
		_, err := New("m", []error{NewError(KindInvalid, "A")}, []string{"one", "two"})
		var scm *SourceCountMismatchError
		require.ErrorAs(t, err, &scm)
		assert.Equal(t, 2, scm.Sources)
		assert.Equal(t, 1, scm.Exceptions)
	})
	t.Run("empty through specialized shape", func(t *testing.T) {
		sp := Grouped.MustSpecialize(KindNotFound, KindTimeout)
		_, err := sp.New("m", nil, nil)
		var ese *EmptySpecializationError
		require.ErrorAs(t, err, &ese)
		assert.Same(t, sp, ese.Shape)
	})
}

// Policy decision: an empty group is constructible through the unspecialized
// root; its shape is the root itself.
func TestNew_EmptyGroupThroughRoot(t *testing.T) {
	g, err := New("nothing failed, oddly", nil, nil)
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	assert.Same(t, Grouped, g.Shape())
}

// Construction through an explicit specialized shape adopts that shape.
func TestNew_ThroughSpecializedShape(t *testing.T) {
	sp := Grouped.MustSpecialize(KindLookup, Others)
	g, err := sp.New("m", []error{NewError(KindNotFound, "x")}, []string{"s"})
	require.NoError(t, err)
	assert.Same(t, sp, g.Shape())
}

// Input slices are copied; later caller mutation must not leak in.
func TestNew_DefensiveCopies(t *testing.T) {
	excs := []error{NewError(KindInvalid, "A")}
	srcs := []string{"s"}
	g, err := New("m", excs, srcs)
	require.NoError(t, err)

	excs[0] = nil
	srcs[0] = "clobbered"
	assert.NotNil(t, g.Exceptions()[0])
	assert.Equal(t, "s", g.Sources()[0])

	got := g.Sources()
	got[0] = "also clobbered"
	assert.Equal(t, "s", g.Sources()[0])
}

// errors.Is is the catch mechanism: shapes are Is targets.
func TestGroup_ErrorsIsCatching(t *testing.T) {
	g, err := New("message",
		[]error{NewError(KindNotFound, "first"), NewError(KindConflict, "second")},
		[]string{"first", "second"})
	require.NoError(t, err)

	assert.True(t, errors.Is(g, Grouped), "bare root catches every group of its family")
	assert.True(t, errors.Is(g, Grouped.MustSpecialize(KindNotFound, KindConflict)))
	assert.True(t, errors.Is(g, Grouped.MustSpecialize(KindLookup, KindConflict)), "covariant catch")
	assert.True(t, errors.Is(g, Grouped.MustSpecialize(KindLookup, Others)), "inclusive catch")
	assert.False(t, errors.Is(g, Grouped.MustSpecialize(KindNotFound)), "too-specific exact filter must not catch")
	assert.False(t, errors.Is(g, NewBase("TaskErrors")), "foreign family must not catch")

	wrapped := fmt.Errorf("boundary: %w", g)
	assert.True(t, errors.Is(wrapped, Grouped.MustSpecialize(KindLookup, Others)), "catching traverses wrappers")
}

// Unwrap() []error exposes members to stdlib traversal like errors.Join.
func TestGroup_UnwrapTraversal(t *testing.T) {
	member := NewError(KindTimeout, "slow")
	g, err := New("m", []error{member, errors.New("plain")}, []string{"a", "b"})
	require.NoError(t, err)

	assert.True(t, errors.Is(g, member))
	var m Member
	assert.True(t, errors.As(g, &m))
	assert.Same(t, KindTimeout, m.KindVal())
}

func TestGroup_ChainingMetadata(t *testing.T) {
	g, err := New("m", []error{NewError(KindInvalid, "A")}, []string{"s"})
	require.NoError(t, err)

	assert.Nil(t, g.Cause())
	assert.Nil(t, g.Prior())
	assert.False(t, g.SuppressPrior())

	prior := errors.New("was handling this")
	g.SetPrior(prior)
	assert.Same(t, prior, g.Prior())
	assert.False(t, g.SuppressPrior(), "SetPrior must not touch the flag")

	cause := errors.New("root origin")
	g.SetCause(cause)
	assert.Same(t, cause, g.Cause())
	assert.True(t, g.SuppressPrior(), "SetCause suppresses the prior context")

	g.SetSuppressPrior(false)
	assert.False(t, g.SuppressPrior())
}

func TestGroup_Copy(t *testing.T) {
	build := func(t *testing.T) *GroupError {
		t.Helper()
		g, err := New("many error.",
			[]error{NewError(KindNotFound, "a"), NewError(KindTimeout, "b")},
			[]string{"first", "second"})
		require.NoError(t, err)
		g.SetPrior(errors.New("handling"))
		g.SetCause(errors.New("origin"))
		return g
	}

	t.Run("suppress true", func(t *testing.T) {
		g := build(t) // SetCause left suppress == true
		n := g.Copy()
		assert.Equal(t, g.Message(), n.Message())
		assert.Equal(t, g.Exceptions(), n.Exceptions())
		assert.Equal(t, g.Sources(), n.Sources())
		assert.Same(t, g.Shape(), n.Shape())
		assert.Same(t, g.Cause(), n.Cause())
		assert.Same(t, g.Prior(), n.Prior())
		assert.True(t, n.SuppressPrior())
	})

	t.Run("suppress false survives the cause side effect", func(t *testing.T) {
		g := build(t)
		g.SetSuppressPrior(false)
		n := g.Copy()
		assert.Same(t, g.Cause(), n.Cause(), "cause still copied")
		assert.False(t, n.SuppressPrior(), "flag re-applied after the cause copy flipped it")
	})

	t.Run("copy is independent", func(t *testing.T) {
		g := build(t)
		n := g.Copy()
		n.SetSuppressPrior(false)
		n.SetPrior(nil)
		assert.True(t, g.SuppressPrior())
		assert.NotNil(t, g.Prior())
	})
}
