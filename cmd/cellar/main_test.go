package main

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/cellar/lib/consoles"
	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/workspace"
)

func TestCreateStorageSpaceSeedsLayout(t *testing.T) {
	t.Parallel()

	area, err := model.NewVenueArea("venue-1", "Main Bar")
	require.NoError(t, err)

	require.NoError(t, createStorageSpace(area, "Fridge", model.DetailedLayout, 2, 1))

	assert.Equal(t, model.VenueAreaStats{StorageSpaces: 1, Sections: 2, Shelves: 2}, area.Stats())

	space, err := area.GetStorageSpace("Fridge")
	require.NoError(t, err)
	assert.Equal(t, []string{"section-0", "section-1"}, []string(space.SectionLayout))
}

func TestCreateStorageSpaceWithoutSections(t *testing.T) {
	t.Parallel()

	area, err := model.NewVenueArea("venue-1", "Main Bar")
	require.NoError(t, err)

	require.NoError(t, createStorageSpace(area, "Fridge", model.DetailedLayout, 0, 1))

	assert.Equal(t, model.VenueAreaStats{StorageSpaces: 1}, area.Stats())
}

func TestCreateListStorageSpace(t *testing.T) {
	t.Parallel()

	area, err := model.NewVenueArea("venue-1", "Main Bar")
	require.NoError(t, err)

	err = createStorageSpace(area, "Kegs", model.ListLayout, 1, 1)
	assert.ErrorIs(t, err, model.ErrNotImplemented)
}

func TestParseOptionalInt(t *testing.T) {
	t.Parallel()

	v, err := parseOptionalInt("width", "")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseOptionalInt("width", " 3 ")
	require.NoError(t, err)
	assert.Equal(t, lo.ToPtr(3), v)

	_, err = parseOptionalInt("width", "wide")
	assert.Error(t, err)
}

func TestParseProductLineEdit(t *testing.T) {
	t.Parallel()

	edit, err := parseProductLineEdit("lager", "6")
	require.NoError(t, err)
	assert.Equal(t, model.ProductLineEdit{ProductID: lo.ToPtr("lager"), ParLevel: lo.ToPtr(6)}, edit)

	edit, err = parseProductLineEdit("none", "none")
	require.NoError(t, err)
	assert.Equal(t, model.ProductLineEdit{ClearProductID: true, ClearParLevel: true}, edit)

	edit, err = parseProductLineEdit("", "")
	require.NoError(t, err)
	assert.Equal(t, model.ProductLineEdit{}, edit)

	_, err = parseProductLineEdit("", "lots")
	assert.Error(t, err)
}

func TestPrintCreated(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	(&editFlags{}).printCreated(out, []string{"section-0", "section-1"})
	(&editFlags{DryRun: true}).printCreated(out, []string{"productLine-2"})
	(&editFlags{}).printCreated(out, nil)

	assert.Equal(t, "Created section-0, section-1\nWould create productLine-2\n", out.String())
}

func TestPrintArea(t *testing.T) {
	t.Parallel()

	area, err := model.NewVenueArea("venue-1", "Main Bar")
	require.NoError(t, err)
	require.NoError(t, createStorageSpace(area, "Fridge", model.DetailedLayout, 1, 1))

	_, err = area.SetSpotCount("Fridge", "shelf-1", 2)
	require.NoError(t, err)

	_, err = area.SetProductLine(model.SpotLocation{StorageSpace: "Fridge", SpotID: "spot-3"},
		model.ProductLineEdit{ProductID: lo.ToPtr("lager"), ParLevel: lo.ToPtr(6)})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	printArea(out, area)

	assert.Equal(t, fmt.Sprintf(`Main Bar (%v) in venue venue-1
1 storage space, 1 section, 1 shelf, 2 spots, 1 product line
  1st Fridge
    1st section section-0
      1st shelf shelf-1
        1st spot spot-2 1x1
        2nd spot spot-3 1x1: productLine-4 product lager par 6
`, area.ID), out.String())
}

func TestCommands(t *testing.T) {
	t.Parallel()

	ws, err := workspace.NewWorkspaceWithConsole(":memory:", consoles.NewWriterConsole(io.Discard))
	require.NoError(t, err)
	defer ws.Close()

	ctx := &context{ws: ws}

	require.NoError(t, (&AreaCreateCmd{Venue: "venue-1", Name: "Main Bar"}).Run(ctx))
	require.NoError(t, (&SpaceCreateCmd{Area: "Main Bar", Name: "Fridge", LayoutType: "layout", Sections: 2, Shelves: 1}).Run(ctx))
	require.NoError(t, (&SpotCountCmd{Area: "Main Bar", Space: "Fridge", Shelf: "shelf-2", Count: 3}).Run(ctx))
	require.NoError(t, (&LineSetCmd{Area: "Main Bar", Space: "Fridge", Spot: "spot-5", Product: "lager", ParLevel: "6"}).Run(ctx))
	require.NoError(t, (&SpotEditCmd{Area: "Main Bar", Space: "Fridge", Spot: "spot-5", Width: "2"}).Run(ctx))
	require.NoError(t, (&ShelfMoveCmd{Area: "Main Bar", Space: "Fridge", Shelf: "shelf-3", Index: 1, To: "section-0"}).Run(ctx))

	err = (&SectionCountCmd{Area: "Main Bar", Space: "Fridge", Count: 1}).Run(ctx)
	assert.ErrorIs(t, err, model.ErrNonDestructive)

	dryRun := &AreaRenameCmd{Area: "Main Bar", Name: "Rooftop Bar"}
	dryRun.DryRun = true
	require.NoError(t, dryRun.Run(ctx))

	area, err := ws.LoadVenueArea("Main Bar")
	require.NoError(t, err)

	space, err := area.GetStorageSpace("Fridge")
	require.NoError(t, err)

	section, err := space.GetSection("section-0")
	require.NoError(t, err)
	assert.Equal(t, []string{"shelf-2", "shelf-3"}, []string(section.ShelfLayout))

	spot, err := space.GetSpot("spot-5")
	require.NoError(t, err)
	assert.Equal(t, 2, spot.ColumnWidth())
	assert.Equal(t, "productLine-7", spot.ProductLine())

	require.NoError(t, (&SpotRemoveCmd{Area: "Main Bar", Space: "Fridge", Spot: "spot-5"}).Run(ctx))

	area, err = ws.LoadVenueArea("Main Bar")
	require.NoError(t, err)
	assert.Empty(t, area.ListProductLines())
	assert.Equal(t, 8, area.CurrentIDSequence())
}
