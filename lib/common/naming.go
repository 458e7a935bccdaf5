package common

import (
	"fmt"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
)

var pc = pluralize.NewClient()

// CountOf formats a count with the noun in the right number: "1 shelf",
// "1,200 spots".
func CountOf(count int, noun string) string {
	return fmt.Sprintf("%v %v", humanize.Comma(int64(count)), pc.Pluralize(noun, count, false))
}

// Position names a zero based index the way people count: 0 is "1st".
func Position(index int) string {
	return humanize.Ordinal(index + 1)
}

func Shorten(name string, length int) string {
	return truncate.Truncate(name, length, "...", truncate.PositionEnd)
}
