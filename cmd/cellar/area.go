package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pescuma/cellar/lib/common"
	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/workspace"
)

type AreaCreateCmd struct {
	Venue string `arg:"" help:"Venue that owns the area."`
	Name  string `arg:"" help:"Name of the area."`
}

func (c *AreaCreateCmd) Run(ctx *context) error {
	area, err := ctx.ws.CreateVenueArea(c.Venue, c.Name)
	if err != nil {
		return err
	}

	fmt.Println(area.ID)
	return nil
}

type AreaRenameCmd struct {
	editFlags

	Area string `arg:"" help:"ID or name of the area."`
	Name string `arg:"" help:"New name."`
}

func (c *AreaRenameCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.SetAreaName(c.Name)
	})
}

type AreaRemoveCmd struct {
	Area string `arg:"" help:"ID or name of the area."`
}

func (c *AreaRemoveCmd) Run(ctx *context) error {
	err := ctx.ws.DeleteVenueArea(c.Area)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %v\n", c.Area)
	return nil
}

type AreaListCmd struct {
	Venue string   `help:"Only list areas of this venue. Defaults to the venue.default config."`
	Name  []string `help:"Filter by area name. Globs and re: regexps are allowed, a leading ! excludes."`
	All   bool     `short:"a" help:"List areas of all venues, ignoring venue.default."`
}

func (c *AreaListCmd) Run(ctx *context) error {
	venue := c.Venue
	if venue == "" && !c.All {
		v, _, err := ctx.ws.GetConfig(workspace.DefaultVenueConfig)
		if err != nil {
			return err
		}
		venue = v
	}

	areas, err := ctx.ws.ListVenueAreas(venue, c.Name)
	if err != nil {
		return err
	}

	for _, a := range areas {
		fmt.Printf("%-12v %-20v %-30v %v\n",
			a.ID, common.Shorten(a.VenueID, 20), common.Shorten(a.AreaName, 30),
			common.CountOf(len(a.StorageSpaces), "storage space"))
	}

	return nil
}

type AreaShowCmd struct {
	Area string `arg:"" help:"ID or name of the area."`
	Json bool   `help:"Print the area as json."`
}

func (c *AreaShowCmd) Run(ctx *context) error {
	area, err := ctx.ws.LoadVenueArea(c.Area)
	if err != nil {
		return err
	}

	if c.Json {
		return printAreaJSON(os.Stdout, area)
	}

	printArea(os.Stdout, area)
	return nil
}

func printArea(w io.Writer, area *model.VenueArea) {
	stats := area.Stats()

	fmt.Fprintf(w, "%v (%v) in venue %v\n", area.AreaName(), area.ID, area.VenueID)
	fmt.Fprintf(w, "%v, %v, %v, %v, %v\n",
		common.CountOf(stats.StorageSpaces, "storage space"), common.CountOf(stats.Sections, "section"),
		common.CountOf(stats.Shelves, "shelf"), common.CountOf(stats.Spots, "spot"),
		common.CountOf(stats.ProductLines, "product line"))

	for i, space := range area.ListStorageSpaces() {
		fmt.Fprintf(w, "  %v %v\n", common.Position(i), space.Name)

		for j, section := range space.ListSections() {
			fmt.Fprintf(w, "    %v section %v\n", common.Position(j), section.ID)

			for k, shelf := range space.ListShelves(section) {
				fmt.Fprintf(w, "      %v shelf %v\n", common.Position(k), shelf.ID)

				for l, spot := range space.ListSpots(shelf) {
					fmt.Fprintf(w, "        %v spot %v %vx%v%v\n", common.Position(l), spot.ID,
						spot.ColumnWidth(), spot.StackHeight(), describeProductLine(area, spot))
				}
			}
		}
	}
}

func describeProductLine(area *model.VenueArea, spot *model.Spot) string {
	if !spot.HasProductLine() {
		return ""
	}

	pl, err := area.GetProductLine(spot.ProductLine())
	if err != nil {
		return ": " + spot.ProductLine() + " (missing)"
	}

	result := ": " + pl.ID
	if pl.ProductID != nil {
		result += " product " + *pl.ProductID
	}
	if pl.ParLevel() != nil {
		result += fmt.Sprintf(" par %v", *pl.ParLevel())
	}
	return result
}
