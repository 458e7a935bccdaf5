package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/transfer"
)

type ExportCmd struct {
	File   string `arg:"" help:"File to write." type:"path"`
	Format string `help:"json or yaml. Defaults to the file extension."`
	Venue  string `help:"Only export areas of this venue."`
}

func (c *ExportCmd) Run(ctx *context) error {
	var format transfer.Format
	var err error
	if c.Format != "" {
		format, err = transfer.ParseFormat(c.Format)
	} else {
		format, err = transfer.FormatFromFile(c.File)
	}
	if err != nil {
		return err
	}

	_, err = ctx.ws.Export(c.File, format, c.Venue)
	return err
}

type ImportCmd struct {
	File string `arg:"" help:"File to read." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *context) error {
	count, err := ctx.ws.Import(c.File)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %v venue areas\n", count)
	return nil
}

func printAreaJSON(w io.Writer, area *model.VenueArea) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(area)
}
