package model

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

type VenueAreas struct {
	byID map[UUID]*VenueArea
}

func NewVenueAreas() *VenueAreas {
	return &VenueAreas{
		byID: map[UUID]*VenueArea{},
	}
}

func (as *VenueAreas) Add(area *VenueArea) {
	as.byID[area.ID] = area
}

func (as *VenueAreas) Remove(id UUID) {
	delete(as.byID, id)
}

func (as *VenueAreas) GetByID(id UUID) *VenueArea {
	return as.byID[id]
}

func (as *VenueAreas) Len() int {
	return len(as.byID)
}

func (as *VenueAreas) List() []*VenueArea {
	result := lo.Values(as.byID)
	sortVenueAreas(result)
	return result
}

func (as *VenueAreas) ListByVenue(venueID string) []*VenueArea {
	result := lo.Filter(lo.Values(as.byID), func(a *VenueArea, _ int) bool {
		return a.VenueID == venueID
	})
	sortVenueAreas(result)
	return result
}

func sortVenueAreas(result []*VenueArea) {
	sort.Slice(result, func(i, j int) bool {
		ai := result[i]
		aj := result[j]

		if ai.VenueID != aj.VenueID {
			return ai.VenueID < aj.VenueID
		}

		ni := strings.ToLower(ai.AreaName())
		nj := strings.ToLower(aj.AreaName())
		if ni != nj {
			return ni < nj
		}

		return ai.ID < aj.ID
	})
}
