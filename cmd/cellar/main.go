package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/cellar/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data: a .sqlite file, :memory:, or a postgres:// or mysql:// URL. Default is ./.cellar or ~/.cellar if that does not exist."`

	Area struct {
		Create AreaCreateCmd `cmd:"" help:"Create a venue area."`
		Rename AreaRenameCmd `cmd:"" help:"Rename a venue area."`
		Remove AreaRemoveCmd `cmd:"" help:"Remove a venue area and everything inside it."`
		List   AreaListCmd   `cmd:"" help:"List venue areas."`
		Show   AreaShowCmd   `cmd:"" help:"Show the storage layout of a venue area."`
	} `cmd:"" help:"Manage venue areas."`

	Space struct {
		Create SpaceCreateCmd `cmd:"" help:"Create a storage space."`
		Remove SpaceRemoveCmd `cmd:"" help:"Remove a storage space and its product lines."`
		Rename SpaceRenameCmd `cmd:"" help:"Rename a storage space."`
		Move   SpaceMoveCmd   `cmd:"" help:"Move a storage space to another position."`
	} `cmd:"" help:"Manage storage spaces."`

	Section struct {
		Count  SectionCountCmd  `cmd:"" help:"Grow the number of sections of a storage space."`
		Remove SectionRemoveCmd `cmd:"" help:"Remove a section with its shelves, spots and product lines."`
		Move   SectionMoveCmd   `cmd:"" help:"Move a section to another position."`
	} `cmd:"" help:"Manage sections."`

	Shelf struct {
		Count  ShelfCountCmd  `cmd:"" help:"Grow the number of shelves of a section."`
		Remove ShelfRemoveCmd `cmd:"" help:"Remove a shelf with its spots and product lines."`
		Move   ShelfMoveCmd   `cmd:"" help:"Move a shelf to another position or section."`
	} `cmd:"" help:"Manage shelves."`

	Spot struct {
		Count  SpotCountCmd  `cmd:"" help:"Grow the number of spots of a shelf."`
		Remove SpotRemoveCmd `cmd:"" help:"Remove a spot and its product line."`
		Move   SpotMoveCmd   `cmd:"" help:"Move a spot to another position or shelf."`
		Edit   SpotEditCmd   `cmd:"" help:"Change the size of a spot."`
	} `cmd:"" help:"Manage spots."`

	Line struct {
		Set    LineSetCmd    `cmd:"" help:"Place a new product line in a spot, replacing the current one."`
		Remove LineRemoveCmd `cmd:"" help:"Remove the product line of a spot."`
		Edit   LineEditCmd   `cmd:"" help:"Change a product line."`
	} `cmd:"" help:"Manage product lines."`

	Export ExportCmd `cmd:"" help:"Export venue areas to a json or yaml file."`
	Import ImportCmd `cmd:"" help:"Import venue areas from a json or yaml file."`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters. An empty value removes it."`
		Get ConfigGetCmd `cmd:"" help:"Show a configuration parameter."`
	} `cmd:""`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cellar"),
		kong.Description("Storage layouts of venue areas."),
		kong.ShortUsageOnError(),
	)

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})

	closeErr := ws.Close()
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(closeErr)
}
