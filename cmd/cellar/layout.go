package main

import "github.com/pescuma/cellar/lib/model"

type SectionCountCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Count int    `arg:"" help:"New number of sections. Must be bigger than the current one."`
}

func (c *SectionCountCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		ids, err := area.SetSectionCount(c.Space, c.Count)
		if err != nil {
			return err
		}

		c.created(ids...)
		return nil
	})
}

type SectionRemoveCmd struct {
	editFlags

	Area    string `arg:"" help:"ID or name of the area."`
	Space   string `arg:"" help:"Name of the storage space."`
	Section string `arg:"" help:"ID of the section."`
}

func (c *SectionRemoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.RemoveSection(c.Space, c.Section)
	})
}

type SectionMoveCmd struct {
	editFlags

	Area    string `arg:"" help:"ID or name of the area."`
	Space   string `arg:"" help:"Name of the storage space."`
	Section string `arg:"" help:"ID of the section."`
	Index   int    `arg:"" help:"New zero based position."`
}

func (c *SectionMoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.MoveSection(c.Space, c.Section, c.Index)
	})
}

type ShelfCountCmd struct {
	editFlags

	Area    string `arg:"" help:"ID or name of the area."`
	Space   string `arg:"" help:"Name of the storage space."`
	Section string `arg:"" help:"ID of the section."`
	Count   int    `arg:"" help:"New number of shelves. Must be bigger than the current one."`
}

func (c *ShelfCountCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		ids, err := area.SetShelfCount(c.Space, c.Section, c.Count)
		if err != nil {
			return err
		}

		c.created(ids...)
		return nil
	})
}

type ShelfRemoveCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Shelf string `arg:"" help:"ID of the shelf."`
}

func (c *ShelfRemoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.RemoveShelf(c.Space, c.Shelf)
	})
}

type ShelfMoveCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Shelf string `arg:"" help:"ID of the shelf."`
	Index int    `arg:"" help:"New zero based position."`
	To    string `help:"ID of the section to move the shelf to. Defaults to its current section."`
}

func (c *ShelfMoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.MoveShelf(c.Space, c.Shelf, c.To, c.Index)
	})
}

type SpotCountCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Shelf string `arg:"" help:"ID of the shelf."`
	Count int    `arg:"" help:"New number of spots. Must be bigger than the current one."`
}

func (c *SpotCountCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		ids, err := area.SetSpotCount(c.Space, c.Shelf, c.Count)
		if err != nil {
			return err
		}

		c.created(ids...)
		return nil
	})
}

type SpotRemoveCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Spot  string `arg:"" help:"ID of the spot."`
}

func (c *SpotRemoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.RemoveSpot(c.Space, c.Spot)
	})
}

type SpotMoveCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Spot  string `arg:"" help:"ID of the spot."`
	Index int    `arg:"" help:"New zero based position."`
	To    string `help:"ID of the shelf to move the spot to. Defaults to its current shelf."`
}

func (c *SpotMoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.MoveSpot(c.Space, c.Spot, c.To, c.Index)
	})
}

type SpotEditCmd struct {
	editFlags

	Area   string `arg:"" help:"ID or name of the area."`
	Space  string `arg:"" help:"Name of the storage space."`
	Spot   string `arg:"" help:"ID of the spot."`
	Width  string `help:"Column width, in facings."`
	Height string `help:"Stack height, in units."`
}

func (c *SpotEditCmd) Run(ctx *context) error {
	width, err := parseOptionalInt("width", c.Width)
	if err != nil {
		return err
	}

	height, err := parseOptionalInt("height", c.Height)
	if err != nil {
		return err
	}

	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.EditSpot(c.Space, c.Spot, model.SpotEdit{
			ColumnWidth: width,
			StackHeight: height,
		})
	})
}
