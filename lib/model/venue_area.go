package model

import (
	"sort"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// VenueArea is a named zone of a venue, like the bar or the cellar. It owns
// the storage spaces of the zone and every product line displayed in them.
//
// A VenueArea is not safe for concurrent use. It is loaded in full, mutated
// and then written back in full; a failed mutation must not be written.
type VenueArea struct {
	ID      UUID
	VenueID string

	areaName           string
	storageSpaceLayout Layout
	storageSpaces      map[string]*StorageSpace
	productLines       map[string]*ProductLine
	ids                *IDSequence
}

func NewVenueArea(venueID string, areaName string) (*VenueArea, error) {
	result := newVenueArea(NewUUID("a"), venueID, 0)

	err := result.SetAreaName(areaName)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func newVenueArea(id UUID, venueID string, sequence int) *VenueArea {
	return &VenueArea{
		ID:                 id,
		VenueID:            venueID,
		storageSpaceLayout: Layout{},
		storageSpaces:      map[string]*StorageSpace{},
		productLines:       map[string]*ProductLine{},
		ids:                NewIDSequence(sequence),
	}
}

func (a *VenueArea) AreaName() string {
	return a.areaName
}

func (a *VenueArea) SetAreaName(name string) error {
	validated, err := validateName(name)
	if err != nil {
		return err
	}

	a.areaName = validated
	return nil
}

func (a *VenueArea) CurrentIDSequence() int {
	return a.ids.Current()
}

func (a *VenueArea) StorageSpaceLayout() []string {
	return a.storageSpaceLayout.Clone()
}

func (a *VenueArea) ListStorageSpaces() []*StorageSpace {
	return lo.Map(a.storageSpaceLayout, func(name string, _ int) *StorageSpace { return a.storageSpaces[name] })
}

func (a *VenueArea) GetStorageSpace(name string) (*StorageSpace, error) {
	result, ok := a.storageSpaces[name]
	if !ok {
		return nil, newStructuralError(ErrNotFound, "storage space %v", name)
	}
	return result, nil
}

func (a *VenueArea) GetProductLine(id string) (*ProductLine, error) {
	result, ok := a.productLines[id]
	if !ok {
		return nil, newStructuralError(ErrNotFound, "product line %v", id)
	}
	return result, nil
}

func (a *VenueArea) ListProductLines() []*ProductLine {
	result := lo.Values(a.productLines)
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func (a *VenueArea) CreateStorageSpace(name string, layoutType LayoutType) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	if _, ok := a.storageSpaces[name]; ok {
		return newStructuralError(ErrAlreadyExists, "storage space with name %v", name)
	}

	switch layoutType {
	case DetailedLayout:
		a.storageSpaces[name] = newStorageSpace(name, layoutType, a.ids)
		a.storageSpaceLayout.Add(name)
		return nil

	default:
		return newStructuralError(ErrNotImplemented, "storage space layout type %v", layoutType)
	}
}

func (a *VenueArea) RemoveStorageSpace(name string) error {
	space, err := a.GetStorageSpace(name)
	if err != nil {
		return err
	}

	a.deleteProductLines(space.ProductLineIDs())

	a.storageSpaceLayout.Remove(name)
	delete(a.storageSpaces, name)

	return nil
}

func (a *VenueArea) RenameStorageSpace(oldName string, newName string) error {
	space, err := a.GetStorageSpace(oldName)
	if err != nil {
		return err
	}

	newName, err = validateName(newName)
	if err != nil {
		return err
	}

	if newName == oldName {
		return nil
	}

	if _, ok := a.storageSpaces[newName]; ok {
		return newStructuralError(ErrAlreadyExists, "storage space with name %v", newName)
	}

	a.storageSpaceLayout.Rename(oldName, newName)
	delete(a.storageSpaces, oldName)
	space.Name = newName
	a.storageSpaces[newName] = space

	return nil
}

func (a *VenueArea) MoveStorageSpace(name string, newIndex int) error {
	if _, err := a.GetStorageSpace(name); err != nil {
		return err
	}

	return a.storageSpaceLayout.Move(name, newIndex)
}

func (a *VenueArea) SetSectionCount(storageSpace string, count int) ([]string, error) {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return nil, err
	}

	return space.SetSectionCount(count)
}

func (a *VenueArea) SetShelfCount(storageSpace string, sectionID string, count int) ([]string, error) {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return nil, err
	}

	return space.SetShelfCount(sectionID, count)
}

func (a *VenueArea) SetSpotCount(storageSpace string, shelfID string, count int) ([]string, error) {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return nil, err
	}

	return space.SetSpotCount(shelfID, count)
}

func (a *VenueArea) RemoveSection(storageSpace string, sectionID string) error {
	return a.remove(storageSpace, func(space *StorageSpace) (*set.Set[string], error) {
		return space.RemoveSection(sectionID)
	})
}

func (a *VenueArea) RemoveShelf(storageSpace string, shelfID string) error {
	return a.remove(storageSpace, func(space *StorageSpace) (*set.Set[string], error) {
		return space.RemoveShelf(shelfID)
	})
}

func (a *VenueArea) RemoveSpot(storageSpace string, spotID string) error {
	return a.remove(storageSpace, func(space *StorageSpace) (*set.Set[string], error) {
		return space.RemoveSpot(spotID)
	})
}

func (a *VenueArea) remove(storageSpace string, f func(*StorageSpace) (*set.Set[string], error)) error {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return err
	}

	orphans, err := f(space)
	if err != nil {
		return err
	}

	a.deleteProductLines(orphans)
	return nil
}

func (a *VenueArea) deleteProductLines(ids *set.Set[string]) {
	for _, id := range ids.Slice() {
		delete(a.productLines, id)
	}
}

func (a *VenueArea) MoveSection(storageSpace string, sectionID string, newIndex int) error {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return err
	}

	return space.MoveSection(sectionID, newIndex)
}

func (a *VenueArea) MoveShelf(storageSpace string, shelfID string, targetSectionID string, newIndex int) error {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return err
	}

	return space.MoveShelf(shelfID, targetSectionID, newIndex)
}

func (a *VenueArea) MoveSpot(storageSpace string, spotID string, targetShelfID string, newIndex int) error {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return err
	}

	return space.MoveSpot(spotID, targetShelfID, newIndex)
}

func (a *VenueArea) EditSpot(storageSpace string, spotID string, edit SpotEdit) error {
	space, err := a.GetStorageSpace(storageSpace)
	if err != nil {
		return err
	}

	return space.EditSpot(spotID, edit)
}

// SetProductLine creates a new product line and assigns it to the spot at
// location. A product line already assigned to that spot is removed first.
func (a *VenueArea) SetProductLine(location StorageLocation, edit ProductLineEdit) (string, error) {
	space, spot, err := a.resolve(location)
	if err != nil {
		return "", err
	}

	if err = edit.validate(); err != nil {
		return "", err
	}

	if old, err := space.RemoveProductLine(spot.ID); err != nil {
		return "", err
	} else if old != "" {
		delete(a.productLines, old)
	}

	pl := NewProductLine(a.ids.Consume(productLinePrefix))
	if err = pl.apply(edit); err != nil {
		return "", err
	}

	a.productLines[pl.ID] = pl
	if err = space.SetProductLine(spot.ID, pl.ID); err != nil {
		return "", err
	}

	return pl.ID, nil
}

func (a *VenueArea) RemoveProductLine(location StorageLocation) error {
	space, spot, err := a.resolve(location)
	if err != nil {
		return err
	}

	if !spot.HasProductLine() {
		return newStructuralError(ErrNotFound, "spot %v has no product line", spot.ID)
	}

	old, err := space.RemoveProductLine(spot.ID)
	if err != nil {
		return err
	}

	delete(a.productLines, old)
	return nil
}

func (a *VenueArea) EditProductLine(id string, edit ProductLineEdit) error {
	pl, err := a.GetProductLine(id)
	if err != nil {
		return err
	}

	return pl.apply(edit)
}

// ProductLineAt returns the product line displayed at location, or nil when
// the spot is empty.
func (a *VenueArea) ProductLineAt(location StorageLocation) (*ProductLine, error) {
	_, spot, err := a.resolve(location)
	if err != nil {
		return nil, err
	}

	if !spot.HasProductLine() {
		return nil, nil
	}

	return a.GetProductLine(spot.ProductLine())
}

func (a *VenueArea) resolve(location StorageLocation) (*StorageSpace, *Spot, error) {
	space, err := a.GetStorageSpace(location.StorageSpaceName())
	if err != nil {
		return nil, nil, err
	}

	switch l := location.(type) {
	case SpotLocation:
		if space.Type != DetailedLayout {
			return nil, nil, newStructuralError(ErrNotImplemented, "spot location in a %v storage space", space.Type)
		}

		spot, err := space.GetSpot(l.SpotID)
		if err != nil {
			return nil, nil, err
		}

		return space, spot, nil

	default:
		return nil, nil, newStructuralError(ErrNotImplemented, "location %v", location)
	}
}

type VenueAreaStats struct {
	StorageSpaces int
	Sections      int
	Shelves       int
	Spots         int
	ProductLines  int
}

func (a *VenueArea) Stats() VenueAreaStats {
	result := VenueAreaStats{
		StorageSpaces: len(a.storageSpaces),
		ProductLines:  len(a.productLines),
	}

	for _, space := range a.storageSpaces {
		result.Sections += space.SectionCount()
		result.Shelves += space.ShelfCount()
		result.Spots += space.SpotCount()
	}

	return result
}

// CheckInvariants verifies the whole aggregate: storage space layout against
// the storage space map, every storage space tree, and that product lines and
// spots reference each other one to one.
func (a *VenueArea) CheckInvariants() error {
	if err := checkLayout(a.areaName, a.storageSpaceLayout, func(name string) bool {
		_, ok := a.storageSpaces[name]
		return ok
	}); err != nil {
		return err
	}
	if len(a.storageSpaceLayout) != len(a.storageSpaces) {
		return newStructuralError(ErrInconsistent, "%v has storage spaces missing from its layout", a.areaName)
	}

	referenced := set.New[string](len(a.productLines))
	nodes := set.New[string](0)
	for name, space := range a.storageSpaces {
		if space.Name != name {
			return newStructuralError(ErrInconsistent, "storage space %v is stored as %v", space.Name, name)
		}

		if err := space.Validate(); err != nil {
			return err
		}

		for _, id := range space.nodeIDs() {
			if !nodes.Insert(id) {
				return newStructuralError(ErrInconsistent, "id %v is used more than once", id)
			}
		}

		for _, spot := range space.spots {
			if !spot.HasProductLine() {
				continue
			}

			if _, ok := a.productLines[spot.ProductLine()]; !ok {
				return newStructuralError(ErrInconsistent, "spot %v references unknown product line %v", spot.ID, spot.ProductLine())
			}

			if !referenced.Insert(spot.ProductLine()) {
				return newStructuralError(ErrInconsistent, "product line %v is referenced by more than one spot", spot.ProductLine())
			}
		}
	}

	for id, pl := range a.productLines {
		if nodes.Contains(id) {
			return newStructuralError(ErrInconsistent, "id %v is used more than once", id)
		}
		if pl.ID != id {
			return newStructuralError(ErrInconsistent, "product line %v is stored as %v", pl.ID, id)
		}
		if !referenced.Contains(id) {
			return newStructuralError(ErrInconsistent, "product line %v is not referenced by any spot", id)
		}
	}

	return nil
}
