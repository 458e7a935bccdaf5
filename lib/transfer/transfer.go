package transfer

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/pescuma/cellar/lib/model"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Document is the file format used to move venue areas between workspaces.
type Document struct {
	VenueAreas []model.VenueAreaJSON `json:"venueAreas" yaml:"venueAreas"`
}

func NewDocument(areas []*model.VenueArea) *Document {
	result := &Document{
		VenueAreas: lo.Map(areas, func(a *model.VenueArea, _ int) model.VenueAreaJSON { return a.ToJSON() }),
	}

	sort.Slice(result.VenueAreas, func(i, j int) bool {
		return result.VenueAreas[i].ID < result.VenueAreas[j].ID
	})

	return result
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", errors.Errorf("unknown format: %v", name)
	}
}

func FormatFromFile(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Errorf("could not detect format of %v", path)
	}

	return ParseFormat(ext)
}

func Encode(w io.Writer, format Format, doc *Document) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(doc)
		if err != nil {
			return err
		}
		return enc.Close()

	default:
		return errors.Errorf("unknown format: %v", format)
	}
}

// Decode rejects fields it does not know, so typos in hand edited files are
// not silently dropped.
func Decode(r io.Reader, format Format) (*Document, error) {
	var result Document

	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err := dec.Decode(&result)
		if err != nil {
			return nil, errors.Wrap(err, "invalid json document")
		}

	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(&result)
		if err != nil {
			return nil, errors.Wrap(err, "invalid yaml document")
		}

	default:
		return nil, errors.Errorf("unknown format: %v", format)
	}

	return &result, nil
}

func WriteFile(path string, format Format, doc *Document) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(file, format, doc)
	if err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func ReadFile(path string) (*Document, error) {
	format, err := FormatFromFile(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file, format)
}
