package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	catalogerrors "github.com/alexisbeaulieu97/bookcatalog/pkg/errors"
)

// SampleName is the name reported for the embedded dataset.
const SampleName = "<sample>"

//go:embed sample/catalog.yaml
var sampleDataset []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

var publishedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDataset loads a dataset file from disk, validates it and returns the
// catalog dataset.
func ParseDataset(path string) (*catalog.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, catalogerrors.NewParseError(path, 0, err)
	}
	return DecodeDataset(path, data)
}

// SampleDataset returns the dataset embedded in the binary.
func SampleDataset() (*catalog.Dataset, error) {
	return DecodeDataset(SampleName, sampleDataset)
}

// DecodeDataset decodes and validates dataset content. name is used in error
// messages only.
func DecodeDataset(name string, data []byte) (*catalog.Dataset, error) {
	file, err := decodeDatasetFile(name, data)
	if err != nil {
		return nil, err
	}
	if err := ValidateDataset(file); err != nil {
		return nil, err
	}
	return toDataset(file)
}

func decodeDatasetFile(name string, data []byte) (*DatasetFile, error) {
	var file DatasetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, catalogerrors.NewParseError(name, extractLine(err), err)
	}
	return &file, nil
}

func toDataset(file *DatasetFile) (*catalog.Dataset, error) {
	books := make([]catalog.Book, len(file.Books))
	for i, record := range file.Books {
		published, err := parsePublished(record.Published)
		if err != nil {
			return nil, catalogerrors.NewValidationError(fieldForBook(i, "published"), err.Error(), err)
		}
		books[i] = catalog.Book{
			ID:          record.ID,
			Title:       record.Title,
			Author:      record.Author,
			Image:       record.Image,
			Description: record.Description,
			Published:   published,
			Genres:      append([]string(nil), record.Genres...),
		}
	}

	return catalog.NewDataset(books, toMapping(file.Authors), toMapping(file.Genres), file.PageSize)
}

func toMapping(names OrderedNames) catalog.Mapping {
	entries := make([]catalog.Entry, len(names))
	for i, n := range names {
		entries[i] = catalog.Entry{ID: n.ID, Name: n.Name}
	}
	return catalog.NewMapping(entries...)
}

func parsePublished(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
