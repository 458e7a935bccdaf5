package main

import (
	"github.com/pescuma/cellar/lib/model"
)

type SpaceCreateCmd struct {
	editFlags

	Area       string `arg:"" help:"ID or name of the area."`
	Name       string `arg:"" help:"Name of the storage space."`
	LayoutType string `default:"layout" enum:"layout,list" help:"Layout type of the storage space."`
	Sections   int    `default:"1" help:"Number of sections to create."`
	Shelves    int    `default:"1" help:"Number of shelves to create in each section."`
}

func (c *SpaceCreateCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return createStorageSpace(area, c.Name, model.LayoutType(c.LayoutType), c.Sections, c.Shelves)
	})
}

// createStorageSpace also seeds sections and shelves, so a new space is
// usable right away.
func createStorageSpace(area *model.VenueArea, name string, layoutType model.LayoutType, sections int, shelves int) error {
	err := area.CreateStorageSpace(name, layoutType)
	if err != nil {
		return err
	}

	space, err := area.GetStorageSpace(name)
	if err != nil {
		return err
	}

	if sections <= 0 {
		return nil
	}

	sectionIDs, err := area.SetSectionCount(space.Name, sections)
	if err != nil {
		return err
	}

	if shelves <= 0 {
		return nil
	}

	for _, id := range sectionIDs {
		_, err = area.SetShelfCount(space.Name, id, shelves)
		if err != nil {
			return err
		}
	}

	return nil
}

type SpaceRemoveCmd struct {
	editFlags

	Area string `arg:"" help:"ID or name of the area."`
	Name string `arg:"" help:"Name of the storage space."`
}

func (c *SpaceRemoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.RemoveStorageSpace(c.Name)
	})
}

type SpaceRenameCmd struct {
	editFlags

	Area    string `arg:"" help:"ID or name of the area."`
	Name    string `arg:"" help:"Current name of the storage space."`
	NewName string `arg:"" help:"New name of the storage space."`
}

func (c *SpaceRenameCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.RenameStorageSpace(c.Name, c.NewName)
	})
}

type SpaceMoveCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Name  string `arg:"" help:"Name of the storage space."`
	Index int    `arg:"" help:"New zero based position."`
}

func (c *SpaceMoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.MoveStorageSpace(c.Name, c.Index)
	})
}
