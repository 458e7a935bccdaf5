package model

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/samber/lo"
)

func TestStorageSpace(t *testing.T) {
	testgroup.RunInParallel(t, &StorageSpaceTests{})
}

type StorageSpaceTests struct {
}

func (g *StorageSpaceTests) newSpace(t *testgroup.T) (*StorageSpace, []string, []string, []string) {
	space := newStorageSpace("Fridge", DetailedLayout, NewIDSequence(0))

	sections, err := space.SetSectionCount(2)
	t.Require.NoError(err)

	shelves, err := space.SetShelfCount(sections[0], 2)
	t.Require.NoError(err)

	spots, err := space.SetSpotCount(shelves[0], 3)
	t.Require.NoError(err)

	return space, sections, shelves, spots
}

func (g *StorageSpaceTests) GrowthAppendsNewIDs(t *testgroup.T) {
	space, sections, shelves, spots := g.newSpace(t)

	t.Equal([]string{"section-0", "section-1"}, sections)
	t.Equal([]string{"shelf-2", "shelf-3"}, shelves)
	t.Equal([]string{"spot-4", "spot-5", "spot-6"}, spots)

	more, err := space.SetSpotCount(shelves[0], 5)
	t.NoError(err)
	t.Equal([]string{"spot-7", "spot-8"}, more)

	shelf, _ := space.GetShelf(shelves[0])
	t.Equal(Layout{"spot-4", "spot-5", "spot-6", "spot-7", "spot-8"}, shelf.SpotLayout)
	t.NoError(space.Validate())
}

func (g *StorageSpaceTests) CountSettersAreNonDestructive(t *testgroup.T) {
	space, sections, shelves, _ := g.newSpace(t)
	before := space.ToJSON()

	_, err := space.SetSectionCount(2)
	t.ErrorIs(err, ErrNonDestructive)

	_, err = space.SetShelfCount(sections[0], 1)
	t.ErrorIs(err, ErrNonDestructive)

	_, err = space.SetSpotCount(shelves[0], 3)
	t.ErrorIs(err, ErrNonDestructive)

	t.Equal(before, space.ToJSON())
}

func (g *StorageSpaceTests) UnknownIDsFail(t *testgroup.T) {
	space, _, _, _ := g.newSpace(t)

	_, err := space.SetShelfCount("section-99", 1)
	t.ErrorIs(err, ErrNotFound)

	_, err = space.SetSpotCount("shelf-99", 1)
	t.ErrorIs(err, ErrNotFound)

	_, err = space.RemoveSpot("spot-99")
	t.ErrorIs(err, ErrNotFound)

	t.ErrorIs(space.MoveShelf("shelf-99", "", 0), ErrNotFound)
	t.ErrorIs(space.EditSpot("spot-99", SpotEdit{}), ErrNotFound)
	t.ErrorIs(space.SetProductLine("spot-99", "productLine-1"), ErrNotFound)
}

func (g *StorageSpaceTests) RemoveSectionCascades(t *testgroup.T) {
	space, sections, _, spots := g.newSpace(t)
	t.NoError(space.SetProductLine(spots[1], "productLine-10"))

	orphans, err := space.RemoveSection(sections[0])
	t.NoError(err)

	t.Equal([]string{"productLine-10"}, orphans.Slice())
	t.Equal(Layout{"section-1"}, space.SectionLayout)
	t.Equal(1, space.SectionCount())
	t.Equal(0, space.ShelfCount())
	t.Equal(0, space.SpotCount())
	t.NoError(space.Validate())
}

func (g *StorageSpaceTests) RemoveShelfCascades(t *testgroup.T) {
	space, sections, shelves, spots := g.newSpace(t)
	t.NoError(space.SetProductLine(spots[0], "productLine-10"))
	t.NoError(space.SetProductLine(spots[2], "productLine-11"))

	orphans, err := space.RemoveShelf(shelves[0])
	t.NoError(err)

	t.ElementsMatch([]string{"productLine-10", "productLine-11"}, orphans.Slice())
	section, _ := space.GetSection(sections[0])
	t.Equal(Layout{"shelf-3"}, section.ShelfLayout)
	t.Equal(0, space.SpotCount())
	t.NoError(space.Validate())
}

func (g *StorageSpaceTests) RemoveSpotWithoutProductLine(t *testgroup.T) {
	space, _, shelves, spots := g.newSpace(t)

	orphans, err := space.RemoveSpot(spots[1])
	t.NoError(err)

	t.Equal(0, orphans.Size())
	shelf, _ := space.GetShelf(shelves[0])
	t.Equal(Layout{"spot-4", "spot-6"}, shelf.SpotLayout)
	t.NoError(space.Validate())
}

func (g *StorageSpaceTests) MoveSectionReorders(t *testgroup.T) {
	space, sections, _, _ := g.newSpace(t)

	t.NoError(space.MoveSection(sections[1], 0))
	t.Equal(Layout{"section-1", "section-0"}, space.SectionLayout)

	t.ErrorIs(space.MoveSection(sections[1], 2), ErrInvalidIndex)
}

func (g *StorageSpaceTests) MoveShelfWithinSection(t *testgroup.T) {
	space, sections, shelves, _ := g.newSpace(t)

	t.NoError(space.MoveShelf(shelves[1], "", 0))

	section, _ := space.GetSection(sections[0])
	t.Equal(Layout{"shelf-3", "shelf-2"}, section.ShelfLayout)
}

func (g *StorageSpaceTests) MoveShelfAcrossSections(t *testgroup.T) {
	space, sections, shelves, _ := g.newSpace(t)
	_, err := space.SetShelfCount(sections[1], 1)
	t.NoError(err)

	t.NoError(space.MoveShelf(shelves[0], sections[1], 0))

	shelf, _ := space.GetShelf(shelves[0])
	a, _ := space.GetSection(sections[0])
	b, _ := space.GetSection(sections[1])
	t.Equal(sections[1], shelf.SectionID)
	t.False(a.ShelfLayout.Contains(shelves[0]))
	t.Equal(0, b.ShelfLayout.IndexOf(shelves[0]))
	t.Equal(2, b.ShelfLayout.Len())
	t.NoError(space.Validate())
}

func (g *StorageSpaceTests) MoveShelfAcrossSectionsInvalidIndex(t *testgroup.T) {
	space, sections, shelves, _ := g.newSpace(t)
	before := space.ToJSON()

	t.ErrorIs(space.MoveShelf(shelves[0], sections[1], 1), ErrInvalidIndex)
	t.Equal(before, space.ToJSON())
}

func (g *StorageSpaceTests) MoveSpotAcrossShelves(t *testgroup.T) {
	space, _, shelves, spots := g.newSpace(t)

	t.NoError(space.MoveSpot(spots[2], shelves[1], 0))

	spot, _ := space.GetSpot(spots[2])
	from, _ := space.GetShelf(shelves[0])
	to, _ := space.GetShelf(shelves[1])
	t.Equal(shelves[1], spot.ShelfID)
	t.Equal(Layout{"spot-4", "spot-5"}, from.SpotLayout)
	t.Equal(Layout{"spot-6"}, to.SpotLayout)
	t.NoError(space.Validate())
}

func (g *StorageSpaceTests) EditSpot(t *testgroup.T) {
	space, _, _, spots := g.newSpace(t)

	t.NoError(space.EditSpot(spots[0], SpotEdit{ColumnWidth: lo.ToPtr(2)}))
	t.True(IsValidationError(space.EditSpot(spots[0], SpotEdit{StackHeight: lo.ToPtr(0)})))

	spot, _ := space.GetSpot(spots[0])
	t.Equal(2, spot.ColumnWidth())
	t.Equal(1, spot.StackHeight())
}

func (g *StorageSpaceTests) ListsFollowLayoutOrder(t *testgroup.T) {
	space, sections, shelves, spots := g.newSpace(t)
	t.NoError(space.MoveSpot(spots[0], "", 2))

	t.Equal(sections, lo.Map(space.ListSections(), func(s *Section, _ int) string { return s.ID }))

	section, _ := space.GetSection(sections[0])
	t.Equal(shelves, lo.Map(space.ListShelves(section), func(s *Shelf, _ int) string { return s.ID }))

	shelf, _ := space.GetShelf(shelves[0])
	t.Equal([]string{spots[1], spots[2], spots[0]}, lo.Map(space.ListSpots(shelf), func(s *Spot, _ int) string { return s.ID }))
}

func (g *StorageSpaceTests) ValidateDetectsBrokenLayouts(t *testgroup.T) {
	space, sections, shelves, _ := g.newSpace(t)

	section, _ := space.GetSection(sections[0])
	section.AddShelf(shelves[0])
	t.ErrorIs(space.Validate(), ErrInconsistent)
	section.ShelfLayout = Layout{shelves[0]}
	t.ErrorIs(space.Validate(), ErrInconsistent)
	section.ShelfLayout = Layout{shelves[0], shelves[1]}
	t.NoError(space.Validate())

	space.SectionLayout.Remove(sections[1])
	t.ErrorIs(space.Validate(), ErrInconsistent)
}
