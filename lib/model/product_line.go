package model

// ProductLine assigns a product and its par level to a spot. Spots only keep
// its ID; the venue area owns the product line itself.
type ProductLine struct {
	ID        string
	ProductID *string

	parLevel *int
}

func NewProductLine(id string) *ProductLine {
	return &ProductLine{ID: id}
}

func (p *ProductLine) ParLevel() *int {
	return p.parLevel
}

func (p *ProductLine) SetParLevel(parLevel *int) error {
	if err := validateParLevel(parLevel); err != nil {
		return err
	}

	p.parLevel = cloneInt(parLevel)
	return nil
}

func validateParLevel(parLevel *int) error {
	if parLevel != nil && *parLevel < 0 {
		return NewValidationError("par level must not be negative, got %v", *parLevel)
	}
	return nil
}

// ProductLineEdit is a partial update. Nil fields are left untouched; the
// Clear* flags set the field back to null.
type ProductLineEdit struct {
	ProductID      *string
	ParLevel       *int
	ClearProductID bool
	ClearParLevel  bool
}

func (e ProductLineEdit) validate() error {
	return validateParLevel(e.ParLevel)
}

func (p *ProductLine) apply(edit ProductLineEdit) error {
	if err := edit.validate(); err != nil {
		return err
	}

	switch {
	case edit.ClearProductID:
		p.ProductID = nil
	case edit.ProductID != nil:
		p.ProductID = cloneString(edit.ProductID)
	}

	switch {
	case edit.ClearParLevel:
		p.parLevel = nil
	case edit.ParLevel != nil:
		p.parLevel = cloneInt(edit.ParLevel)
	}

	return nil
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	r := *v
	return &r
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	r := *v
	return &r
}
