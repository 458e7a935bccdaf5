package workspace

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cellar/lib/layoutdiff"
	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/storages"
)

func (w *Workspace) CreateVenueArea(venueID string, areaName string) (*model.VenueArea, error) {
	if strings.TrimSpace(venueID) == "" {
		return nil, model.NewValidationError("a venue is required")
	}

	area, err := model.NewVenueArea(venueID, areaName)
	if err != nil {
		return nil, err
	}

	err = w.storage.WriteVenueArea(area)
	if err != nil {
		return nil, err
	}

	w.console.Printf("Created venue area %v (%v) in venue %v\n", area.AreaName(), area.ID, area.VenueID)

	return area, nil
}

// FindVenueArea resolves ref as an ID and then as a case insensitive area name.
func (w *Workspace) FindVenueArea(ref string) (model.UUID, error) {
	summaries, err := w.storage.QueryVenueAreas("")
	if err != nil {
		return "", err
	}

	if s, ok := lo.Find(summaries, func(s *storages.VenueAreaSummary) bool { return string(s.ID) == ref }); ok {
		return s.ID, nil
	}

	byName := lo.Filter(summaries, func(s *storages.VenueAreaSummary, _ int) bool {
		return strings.EqualFold(s.AreaName, strings.TrimSpace(ref))
	})

	switch len(byName) {
	case 0:
		return "", errors.Wrapf(storages.ErrNotFound, "%v", ref)
	case 1:
		return byName[0].ID, nil
	default:
		return "", errors.Wrapf(ErrAmbiguous, "%v matches %v, use the ID instead", ref,
			strings.Join(lo.Map(byName, func(s *storages.VenueAreaSummary, _ int) string { return string(s.ID) }), ", "))
	}
}

func (w *Workspace) LoadVenueArea(ref string) (*model.VenueArea, error) {
	id, err := w.FindVenueArea(ref)
	if err != nil {
		return nil, err
	}

	return w.storage.LoadVenueArea(id)
}

func (w *Workspace) DeleteVenueArea(ref string) error {
	id, err := w.FindVenueArea(ref)
	if err != nil {
		return err
	}

	return w.storage.DeleteVenueArea(id)
}

type EditOptions struct {
	DryRun bool
}

type EditResult struct {
	Area  *model.VenueArea
	Diffs []layoutdiff.Diff
	Saved bool
}

// EditVenueArea loads the area, applies edit and writes the result back. When
// edit fails nothing is written: the whole aggregate is discarded.
func (w *Workspace) EditVenueArea(ref string, opts EditOptions, edit func(area *model.VenueArea) error) (*EditResult, error) {
	area, err := w.LoadVenueArea(ref)
	if err != nil {
		return nil, err
	}

	before, err := area.Clone()
	if err != nil {
		return nil, err
	}

	err = edit(area)
	if err != nil {
		return nil, err
	}

	err = area.CheckInvariants()
	if err != nil {
		return nil, errors.Wrapf(err, "edit left %v inconsistent", area.AreaName())
	}

	diffs, err := layoutdiff.Areas(before, area)
	if err != nil {
		return nil, err
	}

	result := &EditResult{
		Area:  area,
		Diffs: diffs,
	}

	if opts.DryRun || !layoutdiff.HasChanges(diffs) {
		return result, nil
	}

	err = w.storage.WriteVenueArea(area)
	if err != nil {
		return nil, err
	}

	result.Saved = true
	return result, nil
}
