package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestNewSpotDefaults(t *testing.T) {
	t.Parallel()

	s := NewSpot("spot-1", "shelf-0")

	assert.Equal(t, 1, s.ColumnWidth())
	assert.Equal(t, 1, s.StackHeight())
	assert.False(t, s.HasProductLine())
}

func TestSpotDimensionsMustBePositive(t *testing.T) {
	t.Parallel()

	s := NewSpot("spot-1", "shelf-0")

	assert.True(t, IsValidationError(s.SetColumnWidth(0)))
	assert.True(t, IsValidationError(s.SetStackHeight(-2)))
	assert.NoError(t, s.SetColumnWidth(3))
	assert.NoError(t, s.SetStackHeight(2))
	assert.Equal(t, 3, s.ColumnWidth())
	assert.Equal(t, 2, s.StackHeight())
}

func TestSpotEditIsAllOrNothing(t *testing.T) {
	t.Parallel()

	s := NewSpot("spot-1", "shelf-0")

	err := s.apply(SpotEdit{ColumnWidth: lo.ToPtr(4), StackHeight: lo.ToPtr(0)})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 1, s.ColumnWidth())
	assert.Equal(t, 1, s.StackHeight())

	err = s.apply(SpotEdit{StackHeight: lo.ToPtr(5)})
	assert.NoError(t, err)
	assert.Equal(t, 1, s.ColumnWidth())
	assert.Equal(t, 5, s.StackHeight())
}

func TestSpotProductLineReference(t *testing.T) {
	t.Parallel()

	s := NewSpot("spot-1", "shelf-0")

	assert.Equal(t, "", s.RemoveProductLine())

	s.SetProductLine("productLine-3")
	s.SetProductLine("productLine-4")
	assert.Equal(t, "productLine-4", s.ProductLine())

	assert.Equal(t, "productLine-4", s.RemoveProductLine())
	assert.False(t, s.HasProductLine())
}

func TestProductLineEdit(t *testing.T) {
	t.Parallel()

	p := NewProductLine("productLine-1")

	err := p.apply(ProductLineEdit{ProductID: lo.ToPtr("beer"), ParLevel: lo.ToPtr(12)})
	assert.NoError(t, err)
	assert.Equal(t, "beer", *p.ProductID)
	assert.Equal(t, 12, *p.ParLevel())

	err = p.apply(ProductLineEdit{ParLevel: lo.ToPtr(-1)})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 12, *p.ParLevel())

	err = p.apply(ProductLineEdit{ClearProductID: true, ClearParLevel: true})
	assert.NoError(t, err)
	assert.Nil(t, p.ProductID)
	assert.Nil(t, p.ParLevel())
}
