package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DatasetFile is the on-disk catalog document. JSON documents decode through
// the same YAML decoder.
type DatasetFile struct {
	PageSize int          `yaml:"page_size" validate:"required,gt=0"`
	Authors  OrderedNames `yaml:"authors" validate:"dive"`
	Genres   OrderedNames `yaml:"genres" validate:"dive"`
	Books    []BookRecord `yaml:"books" validate:"dive"`
}

// BookRecord is a single book as written in the dataset file.
type BookRecord struct {
	ID          string   `yaml:"id" validate:"required,book_id"`
	Title       string   `yaml:"title" validate:"required"`
	Author      string   `yaml:"author" validate:"required"`
	Image       string   `yaml:"image,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Published   string   `yaml:"published" validate:"required,published_date"`
	Genres      []string `yaml:"genres" validate:"required,min=1,dive,required"`
}

// NameEntry is one id/name pair of an ordered mapping.
type NameEntry struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

// OrderedNames decodes a YAML mapping while keeping the document's key order.
type OrderedNames []NameEntry

// UnmarshalYAML reads the mapping node pair by pair. Repeated keys are
// rejected.
func (o *OrderedNames) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*o = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of id to name", value.Line)
	}

	seen := make(map[string]struct{}, len(value.Content)/2)
	entries := make(OrderedNames, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]

		var id, name string
		if err := keyNode.Decode(&id); err != nil {
			return err
		}
		if err := valueNode.Decode(&name); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("line %d: duplicate id %q", keyNode.Line, id)
		}
		seen[id] = struct{}{}
		entries = append(entries, NameEntry{ID: id, Name: name})
	}

	*o = entries
	return nil
}
