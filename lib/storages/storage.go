package storages

import (
	"time"

	"github.com/pkg/errors"

	"github.com/pescuma/cellar/lib/model"
)

var (
	ErrNotFound         = errors.New("venue area not found")
	ErrConcurrentUpdate = errors.New("venue area was changed by someone else")
)

type Storage interface {
	LoadVenueAreas() (*model.VenueAreas, error)
	LoadVenueArea(id model.UUID) (*model.VenueArea, error)
	WriteVenueArea(area *model.VenueArea) error
	DeleteVenueArea(id model.UUID) error
	QueryVenueAreas(venueID string) ([]*VenueAreaSummary, error)

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}

// VenueAreaSummary is the read model used to list venue areas without
// rebuilding their layouts.
type VenueAreaSummary struct {
	ID            model.UUID
	VenueID       string
	AreaName      string
	StorageSpaces []string
	UpdatedAt     time.Time
}
