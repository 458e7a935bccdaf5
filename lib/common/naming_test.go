package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 shelves", CountOf(0, "shelf"))
	assert.Equal(t, "1 shelf", CountOf(1, "shelf"))
	assert.Equal(t, "2 shelves", CountOf(2, "shelf"))
	assert.Equal(t, "1,200 spots", CountOf(1200, "spot"))
}

func TestPosition(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1st", Position(0))
	assert.Equal(t, "2nd", Position(1))
	assert.Equal(t, "11th", Position(10))
	assert.Equal(t, "23rd", Position(22))
}

func TestShorten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Main Bar", Shorten("Main Bar", 10))
	assert.Equal(t, "Upstairs...", Shorten("Upstairs Cocktail Lounge", 11))
}
