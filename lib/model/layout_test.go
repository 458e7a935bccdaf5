package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutMove(t *testing.T) {
	t.Parallel()

	l := Layout{"a", "b", "c", "d"}

	require.NoError(t, l.Move("a", 2))
	assert.Equal(t, Layout{"b", "c", "a", "d"}, l)

	require.NoError(t, l.Move("d", 0))
	assert.Equal(t, Layout{"d", "b", "c", "a"}, l)

	require.NoError(t, l.Move("c", 2))
	assert.Equal(t, Layout{"d", "b", "c", "a"}, l)
}

func TestLayoutMoveUnknown(t *testing.T) {
	t.Parallel()

	l := Layout{"a", "b"}

	err := l.Move("x", 0)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, Layout{"a", "b"}, l)
}

func TestLayoutMoveInvalidIndex(t *testing.T) {
	t.Parallel()

	l := Layout{"a", "b"}

	assert.ErrorIs(t, l.Move("a", 2), ErrInvalidIndex)
	assert.ErrorIs(t, l.Move("a", -1), ErrInvalidIndex)
	assert.Equal(t, Layout{"a", "b"}, l)
}

func TestLayoutInsert(t *testing.T) {
	t.Parallel()

	l := Layout{"a", "b"}

	require.NoError(t, l.Insert("x", 0))
	require.NoError(t, l.Insert("y", 3))
	require.NoError(t, l.Insert("z", 2))
	assert.Equal(t, Layout{"x", "a", "z", "b", "y"}, l)

	assert.ErrorIs(t, l.Insert("w", 6), ErrInvalidIndex)
}

func TestLayoutRemoveAndRename(t *testing.T) {
	t.Parallel()

	l := Layout{"a", "b", "c"}

	l.Remove("b")
	l.Remove("missing")
	assert.Equal(t, Layout{"a", "c"}, l)

	assert.True(t, l.Rename("c", "d"))
	assert.False(t, l.Rename("missing", "e"))
	assert.Equal(t, Layout{"a", "d"}, l)
}

func TestLayoutCloneIsIndependent(t *testing.T) {
	t.Parallel()

	l := Layout{"a"}
	c := l.Clone()
	c[0] = "b"

	assert.Equal(t, Layout{"a"}, l)
	assert.Equal(t, []string{}, Layout{}.Clone())
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	name, err := validateName("  Sports Bar ")
	assert.NoError(t, err)
	assert.Equal(t, "Sports Bar", name)

	_, err = validateName(" a ")
	assert.True(t, IsValidationError(err))

	_, err = validateName("")
	assert.True(t, IsValidationError(err))

	name, err = validateName("Café")
	assert.NoError(t, err)
	assert.Equal(t, "Café", name)
}
