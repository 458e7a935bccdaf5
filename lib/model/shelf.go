package model

type Shelf struct {
	ID         string
	SectionID  string
	SpotLayout Layout
}

func NewShelf(id string, sectionID string) *Shelf {
	return &Shelf{
		ID:         id,
		SectionID:  sectionID,
		SpotLayout: Layout{},
	}
}

func (s *Shelf) AddSpot(spotID string) {
	s.SpotLayout.Add(spotID)
}

func (s *Shelf) InsertSpot(spotID string, index int) error {
	return s.SpotLayout.Insert(spotID, index)
}

func (s *Shelf) MoveSpot(spotID string, newIndex int) error {
	return s.SpotLayout.Move(spotID, newIndex)
}

func (s *Shelf) RemoveSpot(spotID string) {
	s.SpotLayout.Remove(spotID)
}
