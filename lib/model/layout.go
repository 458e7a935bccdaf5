package model

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

const minNameLength = 2

func validateName(name string) (string, error) {
	result := strings.TrimSpace(norm.NFC.String(name))

	if utf8.RuneCountInString(result) < minNameLength {
		return "", MinimumLength(result, minNameLength)
	}

	return result, nil
}

// Layout is the display order of the children of a node. It only owns the
// ordering: the children themselves live in the flat maps of the owner.
type Layout []string

func (l Layout) Len() int {
	return len(l)
}

func (l Layout) Contains(id string) bool {
	return lo.Contains(l, id)
}

func (l Layout) IndexOf(id string) int {
	return lo.IndexOf(l, id)
}

func (l Layout) Clone() []string {
	result := make([]string, len(l))
	copy(result, l)
	return result
}

func (l *Layout) Add(id string) {
	*l = append(*l, id)
}

// Insert accepts any index from 0 to Len(), inclusive.
func (l *Layout) Insert(id string, index int) error {
	if index < 0 || index > len(*l) {
		return newStructuralError(ErrInvalidIndex, "index %v is outside [0, %v]", index, len(*l))
	}

	*l = slices.Insert(*l, index, id)
	return nil
}

func (l *Layout) Move(id string, newIndex int) error {
	oldIndex := l.IndexOf(id)
	if oldIndex == -1 {
		return newStructuralError(ErrNotFound, "couldn't find %v in layout", id)
	}

	if newIndex < 0 || newIndex >= len(*l) {
		return newStructuralError(ErrInvalidIndex, "index %v is outside [0, %v)", newIndex, len(*l))
	}

	without := slices.Delete(l.Clone(), oldIndex, oldIndex+1)
	*l = slices.Insert(without, newIndex, id)
	return nil
}

func (l *Layout) Remove(id string) {
	*l = lo.Without(*l, id)
}

// Rename replaces oldID in place, keeping its position.
func (l *Layout) Rename(oldID, newID string) bool {
	i := l.IndexOf(oldID)
	if i == -1 {
		return false
	}

	(*l)[i] = newID
	return true
}
