package model

import (
	"encoding/json"

	"github.com/samber/lo"
)

type VenueAreaJSON struct {
	ID                 UUID                        `json:"id" yaml:"id"`
	VenueID            string                      `json:"venueId" yaml:"venueId"`
	AreaName           string                      `json:"areaName" yaml:"areaName"`
	StorageSpaceLayout []string                    `json:"storageSpaceLayout" yaml:"storageSpaceLayout"`
	StorageSpaces      map[string]StorageSpaceJSON `json:"storageSpaces" yaml:"storageSpaces"`
	ProductLines       map[string]ProductLineJSON  `json:"productLines" yaml:"productLines"`
	CurrentIDSequence  int                         `json:"currentIdSequence" yaml:"currentIdSequence"`
}

type StorageSpaceJSON struct {
	StorageName   string                 `json:"storageName" yaml:"storageName"`
	LayoutType    LayoutType             `json:"layoutType" yaml:"layoutType"`
	SectionLayout []string               `json:"sectionLayout" yaml:"sectionLayout"`
	Sections      map[string]SectionJSON `json:"sections" yaml:"sections"`
	Shelves       map[string]ShelfJSON   `json:"shelves" yaml:"shelves"`
	Spots         map[string]SpotJSON    `json:"spots" yaml:"spots"`
}

type SectionJSON struct {
	ShelfLayout []string `json:"shelfLayout" yaml:"shelfLayout"`
}

type ShelfJSON struct {
	SectionID  string   `json:"sectionId" yaml:"sectionId"`
	SpotLayout []string `json:"spotLayout" yaml:"spotLayout"`
}

type SpotJSON struct {
	ShelfID     string  `json:"shelfId" yaml:"shelfId"`
	ColumnWidth int     `json:"columnWidth" yaml:"columnWidth"`
	StackHeight int     `json:"stackHeight" yaml:"stackHeight"`
	ProductLine *string `json:"productLine" yaml:"productLine"`
}

type ProductLineJSON struct {
	ID        string  `json:"id" yaml:"id"`
	ProductID *string `json:"productId" yaml:"productId"`
	ParLevel  *int    `json:"parLevel" yaml:"parLevel"`
}

func (a *VenueArea) ToJSON() VenueAreaJSON {
	return VenueAreaJSON{
		ID:                 a.ID,
		VenueID:            a.VenueID,
		AreaName:           a.areaName,
		StorageSpaceLayout: a.storageSpaceLayout.Clone(),
		StorageSpaces: lo.MapValues(a.storageSpaces, func(s *StorageSpace, _ string) StorageSpaceJSON {
			return s.ToJSON()
		}),
		ProductLines: lo.MapValues(a.productLines, func(p *ProductLine, _ string) ProductLineJSON {
			return p.ToJSON()
		}),
		CurrentIDSequence: a.ids.Current(),
	}
}

func (s *StorageSpace) ToJSON() StorageSpaceJSON {
	return StorageSpaceJSON{
		StorageName:   s.Name,
		LayoutType:    s.Type,
		SectionLayout: s.SectionLayout.Clone(),
		Sections: lo.MapValues(s.sections, func(v *Section, _ string) SectionJSON {
			return SectionJSON{ShelfLayout: v.ShelfLayout.Clone()}
		}),
		Shelves: lo.MapValues(s.shelves, func(v *Shelf, _ string) ShelfJSON {
			return ShelfJSON{SectionID: v.SectionID, SpotLayout: v.SpotLayout.Clone()}
		}),
		Spots: lo.MapValues(s.spots, func(v *Spot, _ string) SpotJSON {
			return SpotJSON{
				ShelfID:     v.ShelfID,
				ColumnWidth: v.columnWidth,
				StackHeight: v.stackHeight,
				ProductLine: lo.Ternary(v.HasProductLine(), lo.ToPtr(v.productLine), nil),
			}
		}),
	}
}

func (p *ProductLine) ToJSON() ProductLineJSON {
	return ProductLineJSON{
		ID:        p.ID,
		ProductID: cloneString(p.ProductID),
		ParLevel:  cloneInt(p.parLevel),
	}
}

// VenueAreaFromJSON rebuilds a venue area from its persisted form and checks
// all invariants, so a document that describes a broken tree is rejected.
func VenueAreaFromJSON(j VenueAreaJSON) (*VenueArea, error) {
	if j.ID == "" {
		return nil, newStructuralError(ErrInconsistent, "venue area without id")
	}
	if j.CurrentIDSequence < 0 {
		return nil, newStructuralError(ErrInconsistent, "negative id sequence %v", j.CurrentIDSequence)
	}

	result := newVenueArea(j.ID, j.VenueID, j.CurrentIDSequence)

	err := result.SetAreaName(j.AreaName)
	if err != nil {
		return nil, err
	}

	for _, name := range j.StorageSpaceLayout {
		result.storageSpaceLayout.Add(name)
	}

	for name, sj := range j.StorageSpaces {
		space, err := storageSpaceFromJSON(sj, result.ids)
		if err != nil {
			return nil, err
		}

		result.storageSpaces[name] = space
	}

	for id, pj := range j.ProductLines {
		pl := NewProductLine(pj.ID)
		pl.ProductID = cloneString(pj.ProductID)
		if err = pl.SetParLevel(pj.ParLevel); err != nil {
			return nil, err
		}

		result.productLines[id] = pl
		result.ids.observe(id)
	}

	err = result.CheckInvariants()
	if err != nil {
		return nil, err
	}

	return result, nil
}

func storageSpaceFromJSON(j StorageSpaceJSON, ids *IDSequence) (*StorageSpace, error) {
	result := newStorageSpace(j.StorageName, j.LayoutType, ids)

	for _, id := range j.SectionLayout {
		result.SectionLayout.Add(id)
	}

	for id, sj := range j.Sections {
		section := NewSection(id)
		for _, shelfID := range sj.ShelfLayout {
			section.AddShelf(shelfID)
		}

		result.sections[id] = section
		ids.observe(id)
	}

	for id, sj := range j.Shelves {
		shelf := NewShelf(id, sj.SectionID)
		for _, spotID := range sj.SpotLayout {
			shelf.AddSpot(spotID)
		}

		result.shelves[id] = shelf
		ids.observe(id)
	}

	for id, sj := range j.Spots {
		spot := NewSpot(id, sj.ShelfID)
		if err := spot.SetColumnWidth(sj.ColumnWidth); err != nil {
			return nil, err
		}
		if err := spot.SetStackHeight(sj.StackHeight); err != nil {
			return nil, err
		}
		if sj.ProductLine != nil {
			spot.SetProductLine(*sj.ProductLine)
		}

		result.spots[id] = spot
		ids.observe(id)
	}

	return result, nil
}

func (a *VenueArea) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToJSON())
}

func (a *VenueArea) UnmarshalJSON(data []byte) error {
	var j VenueAreaJSON
	err := json.Unmarshal(data, &j)
	if err != nil {
		return err
	}

	result, err := VenueAreaFromJSON(j)
	if err != nil {
		return err
	}

	*a = *result
	return nil
}

// Clone returns a deep copy that shares nothing with a.
func (a *VenueArea) Clone() (*VenueArea, error) {
	return VenueAreaFromJSON(a.ToJSON())
}
