package orm

import (
	"time"

	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/storages"
)

type sqlVenueArea struct {
	ID                 model.UUID `gorm:"primaryKey"`
	VenueID            string     `gorm:"index"`
	AreaName           string
	StorageSpaceLayout []string                          `gorm:"serializer:json"`
	StorageSpaces      map[string]model.StorageSpaceJSON `gorm:"serializer:json"`
	ProductLines       map[string]model.ProductLineJSON  `gorm:"serializer:json"`
	CurrentIDSequence  int

	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlVenueArea(a *model.VenueArea) *sqlVenueArea {
	j := a.ToJSON()

	return &sqlVenueArea{
		ID:                 j.ID,
		VenueID:            j.VenueID,
		AreaName:           j.AreaName,
		StorageSpaceLayout: j.StorageSpaceLayout,
		StorageSpaces:      j.StorageSpaces,
		ProductLines:       j.ProductLines,
		CurrentIDSequence:  j.CurrentIDSequence,
	}
}

func (s *sqlVenueArea) ToModel() (*model.VenueArea, error) {
	return model.VenueAreaFromJSON(model.VenueAreaJSON{
		ID:                 s.ID,
		VenueID:            s.VenueID,
		AreaName:           s.AreaName,
		StorageSpaceLayout: s.StorageSpaceLayout,
		StorageSpaces:      s.StorageSpaces,
		ProductLines:       s.ProductLines,
		CurrentIDSequence:  s.CurrentIDSequence,
	})
}

func (s *sqlVenueArea) ToSummary() *storages.VenueAreaSummary {
	return &storages.VenueAreaSummary{
		ID:            s.ID,
		VenueID:       s.VenueID,
		AreaName:      s.AreaName,
		StorageSpaces: s.StorageSpaceLayout,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (s *sqlVenueArea) CacheKey() string {
	return string(s.ID)
}
