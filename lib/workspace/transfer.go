package workspace

import (
	"github.com/pkg/errors"

	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/storages"
	"github.com/pescuma/cellar/lib/transfer"
	"github.com/pescuma/cellar/lib/utils"
)

// Export writes all venue areas of venueID, or of every venue when empty.
func (w *Workspace) Export(file string, format transfer.Format, venueID string) (int, error) {
	areas, err := w.storage.LoadVenueAreas()
	if err != nil {
		return 0, err
	}

	list := areas.List()
	if venueID != "" {
		list = areas.ListByVenue(venueID)
	}

	err = transfer.WriteFile(file, format, transfer.NewDocument(list))
	if err != nil {
		return 0, err
	}

	w.console.Printf("Exported %v venue areas to %v\n", len(list), file)

	return len(list), nil
}

// Import validates every area of the file before writing any of them. Areas
// that already exist are replaced.
func (w *Workspace) Import(file string) (int, error) {
	doc, err := transfer.ReadFile(file)
	if err != nil {
		return 0, err
	}

	group := utils.ParallelFor(doc.VenueAreas, func(j model.VenueAreaJSON) (*model.VenueArea, error) {
		area, err := model.VenueAreaFromJSON(j)
		if err != nil {
			return nil, errors.Wrapf(err, "venue area %v", j.ID)
		}
		return area, nil
	})

	var areas []*model.VenueArea
	for area := range group.Output {
		areas = append(areas, area)
	}

	if err = group.Error(); err != nil {
		return 0, err
	}

	w.console.Printf("Importing %v venue areas...\n", len(areas))

	bar := utils.NewProgressBar(len(areas), "Importing")
	for _, area := range areas {
		_, err = w.storage.LoadVenueArea(area.ID)
		if err != nil && !errors.Is(err, storages.ErrNotFound) {
			return 0, err
		}

		err = w.storage.WriteVenueArea(area)
		if err != nil {
			return 0, err
		}

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return len(areas), nil
}
