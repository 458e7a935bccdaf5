package model

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/oleiade/lane/v2"
	"github.com/samber/lo"
)

type LayoutType string

const (
	DetailedLayout LayoutType = "layout"
	ListLayout     LayoutType = "list"
)

// StorageSpace is a discrete place where a venue keeps stock: a display
// fridge, shelving, a keg room floor. It is made of sections, shelves and
// spots, all addressed by ID and stored in flat maps. Each parent only keeps
// the ordering of its children.
type StorageSpace struct {
	Name          string
	Type          LayoutType
	SectionLayout Layout

	sections map[string]*Section
	shelves  map[string]*Shelf
	spots    map[string]*Spot

	ids *IDSequence
}

func newStorageSpace(name string, layoutType LayoutType, ids *IDSequence) *StorageSpace {
	return &StorageSpace{
		Name:          name,
		Type:          layoutType,
		SectionLayout: Layout{},
		sections:      map[string]*Section{},
		shelves:       map[string]*Shelf{},
		spots:         map[string]*Spot{},
		ids:           ids,
	}
}

func (s *StorageSpace) GetSection(id string) (*Section, error) {
	result, ok := s.sections[id]
	if !ok {
		return nil, newStructuralError(ErrNotFound, "section %v does not exist in %v", id, s.Name)
	}
	return result, nil
}

func (s *StorageSpace) GetShelf(id string) (*Shelf, error) {
	result, ok := s.shelves[id]
	if !ok {
		return nil, newStructuralError(ErrNotFound, "shelf %v does not exist in %v", id, s.Name)
	}
	return result, nil
}

func (s *StorageSpace) GetSpot(id string) (*Spot, error) {
	result, ok := s.spots[id]
	if !ok {
		return nil, newStructuralError(ErrNotFound, "spot %v does not exist in %v", id, s.Name)
	}
	return result, nil
}

func (s *StorageSpace) ListSections() []*Section {
	return lo.Map(s.SectionLayout, func(id string, _ int) *Section { return s.sections[id] })
}

func (s *StorageSpace) ListShelves(section *Section) []*Shelf {
	return lo.Map(section.ShelfLayout, func(id string, _ int) *Shelf { return s.shelves[id] })
}

func (s *StorageSpace) ListSpots(shelf *Shelf) []*Spot {
	return lo.Map(shelf.SpotLayout, func(id string, _ int) *Spot { return s.spots[id] })
}

func (s *StorageSpace) SectionCount() int {
	return len(s.sections)
}

func (s *StorageSpace) ShelfCount() int {
	return len(s.shelves)
}

func (s *StorageSpace) SpotCount() int {
	return len(s.spots)
}

// ProductLineIDs returns the product lines referenced by any spot of this space.
func (s *StorageSpace) ProductLineIDs() *set.Set[string] {
	result := set.New[string](len(s.spots))
	for _, spot := range s.spots {
		if spot.HasProductLine() {
			result.Insert(spot.ProductLine())
		}
	}
	return result
}

// SetSectionCount only grows the space. Shrinking has to go through
// RemoveSection so the removal cascade always runs.
func (s *StorageSpace) SetSectionCount(count int) ([]string, error) {
	current := len(s.SectionLayout)
	if count <= current {
		return nil, newStructuralError(ErrNonDestructive,
			"%v already has %v sections, use remove section to reduce them", s.Name, current)
	}

	result := make([]string, 0, count-current)
	for len(s.SectionLayout) < count {
		section := NewSection(s.ids.Consume(sectionPrefix))
		s.sections[section.ID] = section
		s.SectionLayout.Add(section.ID)
		result = append(result, section.ID)
	}

	return result, nil
}

func (s *StorageSpace) SetShelfCount(sectionID string, count int) ([]string, error) {
	section, err := s.GetSection(sectionID)
	if err != nil {
		return nil, err
	}

	current := len(section.ShelfLayout)
	if count <= current {
		return nil, newStructuralError(ErrNonDestructive,
			"section %v already has %v shelves, use remove shelf to reduce them", sectionID, current)
	}

	result := make([]string, 0, count-current)
	for len(section.ShelfLayout) < count {
		shelf := NewShelf(s.ids.Consume(shelfPrefix), section.ID)
		s.shelves[shelf.ID] = shelf
		section.AddShelf(shelf.ID)
		result = append(result, shelf.ID)
	}

	return result, nil
}

func (s *StorageSpace) SetSpotCount(shelfID string, count int) ([]string, error) {
	shelf, err := s.GetShelf(shelfID)
	if err != nil {
		return nil, err
	}

	current := len(shelf.SpotLayout)
	if count <= current {
		return nil, newStructuralError(ErrNonDestructive,
			"shelf %v already has %v spots, use remove spot to reduce them", shelfID, current)
	}

	result := make([]string, 0, count-current)
	for len(shelf.SpotLayout) < count {
		spot := NewSpot(s.ids.Consume(spotPrefix), shelf.ID)
		s.spots[spot.ID] = spot
		shelf.AddSpot(spot.ID)
		result = append(result, spot.ID)
	}

	return result, nil
}

// RemoveSection deletes the section with all its shelves and spots and
// returns the product lines that are no longer referenced.
func (s *StorageSpace) RemoveSection(id string) (*set.Set[string], error) {
	if _, err := s.GetSection(id); err != nil {
		return nil, err
	}

	s.SectionLayout.Remove(id)

	return s.deleteTree(layoutNode{kind: sectionNode, id: id}), nil
}

func (s *StorageSpace) RemoveShelf(id string) (*set.Set[string], error) {
	shelf, err := s.GetShelf(id)
	if err != nil {
		return nil, err
	}

	if section, ok := s.sections[shelf.SectionID]; ok {
		section.RemoveShelf(id)
	}

	return s.deleteTree(layoutNode{kind: shelfNode, id: id}), nil
}

func (s *StorageSpace) RemoveSpot(id string) (*set.Set[string], error) {
	spot, err := s.GetSpot(id)
	if err != nil {
		return nil, err
	}

	if shelf, ok := s.shelves[spot.ShelfID]; ok {
		shelf.RemoveSpot(id)
	}

	return s.deleteTree(layoutNode{kind: spotNode, id: id}), nil
}

type layoutNodeKind int

const (
	sectionNode layoutNodeKind = iota
	shelfNode
	spotNode
)

type layoutNode struct {
	kind layoutNodeKind
	id   string
}

func (s *StorageSpace) deleteTree(root layoutNode) *set.Set[string] {
	orphans := set.New[string](0)

	pending := lane.NewStack(root)
	for {
		node, ok := pending.Pop()
		if !ok {
			break
		}

		switch node.kind {
		case sectionNode:
			for _, shelfID := range s.sections[node.id].ShelfLayout {
				pending.Push(layoutNode{kind: shelfNode, id: shelfID})
			}
			delete(s.sections, node.id)

		case shelfNode:
			for _, spotID := range s.shelves[node.id].SpotLayout {
				pending.Push(layoutNode{kind: spotNode, id: spotID})
			}
			delete(s.shelves, node.id)

		case spotNode:
			if pl := s.spots[node.id].ProductLine(); pl != "" {
				orphans.Insert(pl)
			}
			delete(s.spots, node.id)
		}
	}

	return orphans
}

func (s *StorageSpace) MoveSection(id string, newIndex int) error {
	if _, err := s.GetSection(id); err != nil {
		return err
	}

	return s.SectionLayout.Move(id, newIndex)
}

// MoveShelf reorders a shelf inside its section or, when targetSectionID is
// another section, moves it there at newIndex.
func (s *StorageSpace) MoveShelf(id string, targetSectionID string, newIndex int) error {
	shelf, err := s.GetShelf(id)
	if err != nil {
		return err
	}

	source, err := s.GetSection(shelf.SectionID)
	if err != nil {
		return err
	}

	if targetSectionID == "" || targetSectionID == source.ID {
		return source.MoveShelf(id, newIndex)
	}

	target, err := s.GetSection(targetSectionID)
	if err != nil {
		return err
	}

	if newIndex < 0 || newIndex > len(target.ShelfLayout) {
		return newStructuralError(ErrInvalidIndex, "index %v is outside [0, %v]", newIndex, len(target.ShelfLayout))
	}

	source.RemoveShelf(id)
	err = target.InsertShelf(id, newIndex)
	if err != nil {
		return err
	}
	shelf.SectionID = target.ID

	return nil
}

func (s *StorageSpace) MoveSpot(id string, targetShelfID string, newIndex int) error {
	spot, err := s.GetSpot(id)
	if err != nil {
		return err
	}

	source, err := s.GetShelf(spot.ShelfID)
	if err != nil {
		return err
	}

	if targetShelfID == "" || targetShelfID == source.ID {
		return source.MoveSpot(id, newIndex)
	}

	target, err := s.GetShelf(targetShelfID)
	if err != nil {
		return err
	}

	if newIndex < 0 || newIndex > len(target.SpotLayout) {
		return newStructuralError(ErrInvalidIndex, "index %v is outside [0, %v]", newIndex, len(target.SpotLayout))
	}

	source.RemoveSpot(id)
	err = target.InsertSpot(id, newIndex)
	if err != nil {
		return err
	}
	spot.ShelfID = target.ID

	return nil
}

func (s *StorageSpace) SetProductLine(spotID string, productLineID string) error {
	spot, err := s.GetSpot(spotID)
	if err != nil {
		return err
	}

	spot.SetProductLine(productLineID)
	return nil
}

func (s *StorageSpace) RemoveProductLine(spotID string) (string, error) {
	spot, err := s.GetSpot(spotID)
	if err != nil {
		return "", err
	}

	return spot.RemoveProductLine(), nil
}

func (s *StorageSpace) EditSpot(spotID string, edit SpotEdit) error {
	spot, err := s.GetSpot(spotID)
	if err != nil {
		return err
	}

	return spot.apply(edit)
}

// Validate checks that layouts and flat maps describe the same tree.
func (s *StorageSpace) Validate() error {
	if s.Type != DetailedLayout {
		return newStructuralError(ErrNotImplemented, "layout type %v of %v", s.Type, s.Name)
	}

	if err := checkLayout(s.Name, s.SectionLayout, func(id string) bool {
		_, ok := s.sections[id]
		return ok
	}); err != nil {
		return err
	}
	if len(s.SectionLayout) != len(s.sections) {
		return newStructuralError(ErrInconsistent, "%v has sections missing from its layout", s.Name)
	}

	shelvesSeen := 0
	for _, section := range s.sections {
		if err := checkLayout(section.ID, section.ShelfLayout, func(id string) bool {
			shelf, ok := s.shelves[id]
			return ok && shelf.SectionID == section.ID
		}); err != nil {
			return err
		}
		shelvesSeen += len(section.ShelfLayout)
	}
	if shelvesSeen != len(s.shelves) {
		return newStructuralError(ErrInconsistent, "%v has shelves missing from their section layout", s.Name)
	}

	spotsSeen := 0
	for _, shelf := range s.shelves {
		if err := checkLayout(shelf.ID, shelf.SpotLayout, func(id string) bool {
			spot, ok := s.spots[id]
			return ok && spot.ShelfID == shelf.ID
		}); err != nil {
			return err
		}
		spotsSeen += len(shelf.SpotLayout)
	}
	if spotsSeen != len(s.spots) {
		return newStructuralError(ErrInconsistent, "%v has spots missing from their shelf layout", s.Name)
	}

	return nil
}

func (s *StorageSpace) nodeIDs() []string {
	result := make([]string, 0, len(s.sections)+len(s.shelves)+len(s.spots))
	result = append(result, lo.Keys(s.sections)...)
	result = append(result, lo.Keys(s.shelves)...)
	result = append(result, lo.Keys(s.spots)...)
	return result
}

func checkLayout(owner string, layout Layout, exists func(string) bool) error {
	seen := set.New[string](len(layout))
	for _, id := range layout {
		if !seen.Insert(id) {
			return newStructuralError(ErrInconsistent, "%v appears twice in the layout of %v", id, owner)
		}
		if !exists(id) {
			return newStructuralError(ErrInconsistent, "%v in the layout of %v does not exist", id, owner)
		}
	}
	return nil
}
