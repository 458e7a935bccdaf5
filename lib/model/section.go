package model

// Section is a logical part of a storage space, like a fridge door. Stock is
// usually counted section by section, top to bottom.
type Section struct {
	ID          string
	ShelfLayout Layout
}

func NewSection(id string) *Section {
	return &Section{
		ID:          id,
		ShelfLayout: Layout{},
	}
}

func (s *Section) AddShelf(shelfID string) {
	s.ShelfLayout.Add(shelfID)
}

func (s *Section) InsertShelf(shelfID string, index int) error {
	return s.ShelfLayout.Insert(shelfID, index)
}

func (s *Section) MoveShelf(shelfID string, newIndex int) error {
	return s.ShelfLayout.Move(shelfID, newIndex)
}

func (s *Section) RemoveShelf(shelfID string) {
	s.ShelfLayout.Remove(shelfID)
}
