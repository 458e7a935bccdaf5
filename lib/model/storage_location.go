package model

import "fmt"

// StorageLocation addresses a spot inside a venue area. SpotLocation is used
// by detailed layouts; IndexLocation is reserved for list layouts.
type StorageLocation interface {
	StorageSpaceName() string
	fmt.Stringer
}

type SpotLocation struct {
	StorageSpace string
	SpotID       string
}

func (l SpotLocation) StorageSpaceName() string {
	return l.StorageSpace
}

func (l SpotLocation) String() string {
	return fmt.Sprintf("%v/%v", l.StorageSpace, l.SpotID)
}

type IndexLocation struct {
	StorageSpace string
	Index        int
}

func (l IndexLocation) StorageSpaceName() string {
	return l.StorageSpace
}

func (l IndexLocation) String() string {
	return fmt.Sprintf("%v[%v]", l.StorageSpace, l.Index)
}
