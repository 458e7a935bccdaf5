package orm

import (
	"reflect"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"

	"github.com/pescuma/cellar/lib/model"
)

func TestEqualsEmpty(t *testing.T) {
	t.Parallel()

	a1 := &sqlVenueArea{}
	a2 := &sqlVenueArea{}

	assert.True(t, reflect.DeepEqual(a1, a2))

	a1.AreaName = "a"
	assert.False(t, reflect.DeepEqual(a1, a2))
}

func TestEqualsSomeFields(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a1 := &sqlVenueArea{
		ID:        "a",
		CreatedAt: now,
	}
	a2 := &sqlVenueArea{
		ID:        "a",
		CreatedAt: now,
	}

	assert.True(t, reflect.DeepEqual(a1, a2))

	a1.Version = 2
	assert.False(t, reflect.DeepEqual(a1, a2))
}

func TestEqualsProductLines(t *testing.T) {
	t.Parallel()

	a1 := &sqlVenueArea{
		ProductLines: map[string]model.ProductLineJSON{
			"productLine-3": {ID: "productLine-3", ParLevel: lo.ToPtr(1)},
		},
	}
	a2 := &sqlVenueArea{
		ProductLines: map[string]model.ProductLineJSON{
			"productLine-3": {ID: "productLine-3", ParLevel: lo.ToPtr(1)},
		},
	}

	assert.True(t, reflect.DeepEqual(a1, a2))

	*a1.ProductLines["productLine-3"].ParLevel = 2
	assert.False(t, reflect.DeepEqual(a1, a2))
}

func TestSameAggregateCreatesEqualRows(t *testing.T) {
	t.Parallel()

	area := newTestArea(t, "venue-1", "Main Bar")

	assert.True(t, reflect.DeepEqual(newSqlVenueArea(area), newSqlVenueArea(area)))
}

func TestNamingStrategy(t *testing.T) {
	t.Parallel()

	ns := &NamingStrategy{schema.NamingStrategy{IdentifierMaxLength: 64}}

	assert.Equal(t, "venue_areas", ns.TableName("sqlVenueArea"))
	assert.Equal(t, "configs", ns.TableName("sqlConfig"))
	assert.Equal(t, "idx_venue_areas_venue_id", ns.IndexName("venue_areas", "venue_id"))
}
