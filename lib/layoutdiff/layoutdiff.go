package layoutdiff

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pescuma/cellar/lib/model"
)

type Diff struct {
	Type  Operation
	Lines []string
}

type Operation int8

const (
	DiffDelete Operation = Operation(diffmatchpatch.DiffDelete)
	DiffInsert Operation = Operation(diffmatchpatch.DiffInsert)
	DiffEqual  Operation = Operation(diffmatchpatch.DiffEqual)
)

// Areas diffs the indented JSON form of two versions of a venue area. Map
// keys are sorted by encoding/json, so only real changes show up.
func Areas(before, after *model.VenueArea) ([]Diff, error) {
	src, err := json.MarshalIndent(before.ToJSON(), "", "  ")
	if err != nil {
		return nil, err
	}

	dst, err := json.MarshalIndent(after.ToJSON(), "", "  ")
	if err != nil {
		return nil, err
	}

	return Do(string(src)+"\n", string(dst)+"\n"), nil
}

func Do(src, dst string) []Diff {
	return DoWithTimeout(src, dst, 5*time.Second)
}

func DoWithTimeout(src, dst string, timeout time.Duration) []Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	wSrc, wDst, lines := textsToLineIndexes(src, dst)
	dmpd := dmp.DiffMainRunes(wSrc, wDst, false)
	return lineIndexesToDiff(dmpd, lines)
}

func (d Diff) prefix() string {
	switch d.Type {
	case DiffDelete:
		return "- "
	case DiffInsert:
		return "+ "
	default:
		return "  "
	}
}

// Format prints changed lines with context unchanged lines around them.
// Longer unchanged runs are collapsed to "...".
func Format(diffs []Diff, context int) string {
	sb := strings.Builder{}

	for i, d := range diffs {
		lines := d.Lines

		if d.Type == DiffEqual {
			keepStart := 0
			if i > 0 {
				keepStart = context
			}
			keepEnd := 0
			if i < len(diffs)-1 {
				keepEnd = context
			}

			if len(lines) > keepStart+keepEnd {
				for _, l := range lines[:keepStart] {
					sb.WriteString(d.prefix() + l)
				}
				sb.WriteString("  ...\n")
				for _, l := range lines[len(lines)-keepEnd:] {
					sb.WriteString(d.prefix() + l)
				}
				continue
			}
		}

		for _, l := range lines {
			sb.WriteString(d.prefix() + l)
		}
	}

	return sb.String()
}

// Summary counts inserted and deleted lines.
func Summary(diffs []Diff) (inserted int, deleted int) {
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			inserted += len(d.Lines)
		case DiffDelete:
			deleted += len(d.Lines)
		}
	}
	return
}

func HasChanges(diffs []Diff) bool {
	inserted, deleted := Summary(diffs)
	return inserted+deleted > 0
}

func lineIndexesToDiff(diffs []diffmatchpatch.Diff, lines []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		text := []rune(aDiff.Text)

		d := Diff{
			Type:  Operation(aDiff.Type),
			Lines: make([]string, len(text)),
		}
		for i, r := range text {
			d.Lines[i] = lines[r]
		}

		hydrated = append(hydrated, d)
	}
	return hydrated
}

func textsToLineIndexes(text1, text2 string) ([]rune, []rune, []string) {
	lineToIndex := make(map[string]int)
	var lines []string
	indexes1 := textToLineIndexes(text1, lineToIndex, &lines)
	indexes2 := textToLineIndexes(text2, lineToIndex, &lines)
	return indexes1, indexes2, lines
}

func textToLineIndexes(text string, lineToIndex map[string]int, lines *[]string) []rune {
	if text == "" {
		return nil
	}

	split := strings.SplitAfter(text, "\n")
	if split[len(split)-1] == "" {
		split = split[:len(split)-1]
	}

	result := make([]rune, len(split))
	for i, line := range split {
		lineValue, ok := lineToIndex[line]

		if !ok {
			lineValue = len(*lines)
			lineToIndex[line] = lineValue
			*lines = append(*lines, line)
		}

		result[i] = rune(lineValue)
	}
	return result
}
