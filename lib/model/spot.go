package model

type Spot struct {
	ID      string
	ShelfID string

	columnWidth int
	stackHeight int
	productLine string
}

func NewSpot(id string, shelfID string) *Spot {
	return &Spot{
		ID:          id,
		ShelfID:     shelfID,
		columnWidth: 1,
		stackHeight: 1,
	}
}

func (s *Spot) ColumnWidth() int {
	return s.columnWidth
}

func (s *Spot) SetColumnWidth(width int) error {
	if err := validateDimension("column width", width); err != nil {
		return err
	}

	s.columnWidth = width
	return nil
}

func (s *Spot) StackHeight() int {
	return s.stackHeight
}

func (s *Spot) SetStackHeight(height int) error {
	if err := validateDimension("stack height", height); err != nil {
		return err
	}

	s.stackHeight = height
	return nil
}

func validateDimension(name string, v int) error {
	if v < 1 {
		return NewValidationError("%v must be at least 1, got %v", name, v)
	}
	return nil
}

// ProductLine returns the referenced product line ID, or "" when the spot is empty.
func (s *Spot) ProductLine() string {
	return s.productLine
}

func (s *Spot) HasProductLine() bool {
	return s.productLine != ""
}

// SetProductLine does not check that the product line exists; the venue area does.
func (s *Spot) SetProductLine(id string) {
	s.productLine = id
}

func (s *Spot) RemoveProductLine() string {
	old := s.productLine
	s.productLine = ""
	return old
}

type SpotEdit struct {
	ColumnWidth *int
	StackHeight *int
}

func (s *Spot) apply(edit SpotEdit) error {
	if edit.ColumnWidth != nil {
		if err := validateDimension("column width", *edit.ColumnWidth); err != nil {
			return err
		}
	}
	if edit.StackHeight != nil {
		if err := validateDimension("stack height", *edit.StackHeight); err != nil {
			return err
		}
	}

	if edit.ColumnWidth != nil {
		s.columnWidth = *edit.ColumnWidth
	}
	if edit.StackHeight != nil {
		s.stackHeight = *edit.StackHeight
	}

	return nil
}
