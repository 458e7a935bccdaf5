package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cellar/lib/common"
	"github.com/pescuma/cellar/lib/layoutdiff"
	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/workspace"
)

type editFlags struct {
	DryRun bool `help:"Show what would change without saving."`
}

func (e *editFlags) edit(ctx *context, area string, f func(area *model.VenueArea) error) error {
	result, err := ctx.ws.EditVenueArea(area, workspace.EditOptions{DryRun: e.DryRun}, f)
	if err != nil {
		return err
	}

	inserted, deleted := layoutdiff.Summary(result.Diffs)

	switch {
	case e.DryRun:
		fmt.Print(layoutdiff.Format(result.Diffs, 3))
		fmt.Printf("Dry run: %v added, %v removed, nothing saved\n",
			common.CountOf(inserted, "line"), common.CountOf(deleted, "line"))

	case result.Saved:
		fmt.Printf("Saved %v (%v added, %v removed)\n",
			result.Area.AreaName(), common.CountOf(inserted, "line"), common.CountOf(deleted, "line"))

	default:
		fmt.Printf("Nothing changed in %v\n", result.Area.AreaName())
	}

	return nil
}

func (e *editFlags) created(ids ...string) {
	e.printCreated(os.Stdout, ids)
}

func (e *editFlags) printCreated(w io.Writer, ids []string) {
	if len(ids) == 0 {
		return
	}

	verb := lo.Ternary(e.DryRun, "Would create", "Created")
	_, _ = fmt.Fprintf(w, "%v %v\n", verb, strings.Join(ids, ", "))
}

// parseOptionalInt returns nil for an empty value.
func parseOptionalInt(name string, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %v", name)
	}

	return &v, nil
}

// parseProductLineEdit understands "none" as clearing the field.
func parseProductLineEdit(product string, parLevel string) (model.ProductLineEdit, error) {
	var result model.ProductLineEdit

	switch strings.TrimSpace(product) {
	case "":
	case "none":
		result.ClearProductID = true
	default:
		result.ProductID = lo.ToPtr(strings.TrimSpace(product))
	}

	if strings.TrimSpace(parLevel) == "none" {
		result.ClearParLevel = true
	} else {
		v, err := parseOptionalInt("par level", parLevel)
		if err != nil {
			return result, err
		}
		result.ParLevel = v
	}

	return result, nil
}
