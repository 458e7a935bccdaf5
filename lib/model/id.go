package model

import (
	"strconv"
	"strings"

	"github.com/teris-io/shortid"
	"golang.org/x/exp/rand"
)

type UUID string

func NewUUID(t string) UUID {
	return UUID(shortid.MustGenerate() + t)
}

func init() {
	sid := shortid.MustNew(0, "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_.", rand.Uint64())
	shortid.SetDefault(sid)
}

const (
	sectionPrefix     = "section"
	shelfPrefix       = "shelf"
	spotPrefix        = "spot"
	productLinePrefix = "productLine"
)

// IDSequence issues the IDs of sections, shelves, spots and product lines of
// one venue area. There is a single counter for all prefixes.
type IDSequence struct {
	current int
}

func NewIDSequence(current int) *IDSequence {
	return &IDSequence{current: current}
}

func (s *IDSequence) Current() int {
	return s.current
}

func (s *IDSequence) Consume(prefix string) string {
	id := strconv.Itoa(s.current)
	s.current++

	if prefix == "" {
		return id
	}

	return prefix + "-" + id
}

// observe moves the counter past an ID that was issued before, so a
// reconstructed sequence never hands it out again.
func (s *IDSequence) observe(id string) {
	n, ok := sequenceNumber(id)
	if ok && n >= s.current {
		s.current = n + 1
	}
}

func sequenceNumber(id string) (int, bool) {
	if i := strings.LastIndex(id, "-"); i >= 0 {
		id = id[i+1:]
	}

	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}
