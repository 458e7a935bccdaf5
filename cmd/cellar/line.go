package main

import "github.com/pescuma/cellar/lib/model"

type LineSetCmd struct {
	editFlags

	Area     string `arg:"" help:"ID or name of the area."`
	Space    string `arg:"" help:"Name of the storage space."`
	Spot     string `arg:"" help:"ID of the spot."`
	Product  string `help:"Product shown in the spot."`
	ParLevel string `help:"Quantity to keep in stock."`
}

func (c *LineSetCmd) Run(ctx *context) error {
	edit, err := parseProductLineEdit(c.Product, c.ParLevel)
	if err != nil {
		return err
	}

	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		id, err := area.SetProductLine(model.SpotLocation{StorageSpace: c.Space, SpotID: c.Spot}, edit)
		if err != nil {
			return err
		}

		c.created(id)
		return nil
	})
}

type LineRemoveCmd struct {
	editFlags

	Area  string `arg:"" help:"ID or name of the area."`
	Space string `arg:"" help:"Name of the storage space."`
	Spot  string `arg:"" help:"ID of the spot."`
}

func (c *LineRemoveCmd) Run(ctx *context) error {
	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.RemoveProductLine(model.SpotLocation{StorageSpace: c.Space, SpotID: c.Spot})
	})
}

type LineEditCmd struct {
	editFlags

	Area     string `arg:"" help:"ID or name of the area."`
	Line     string `arg:"" help:"ID of the product line."`
	Product  string `help:"Product shown in the spot. Use none to clear it."`
	ParLevel string `help:"Quantity to keep in stock. Use none to clear it."`
}

func (c *LineEditCmd) Run(ctx *context) error {
	edit, err := parseProductLineEdit(c.Product, c.ParLevel)
	if err != nil {
		return err
	}

	return c.edit(ctx, c.Area, func(area *model.VenueArea) error {
		return area.EditProductLine(c.Line, edit)
	})
}
