// Package catalog holds the bilingual content shown for each diagram region.
//
// A Catalog is built once and never mutated; share it by pointer.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrDuplicateID is returned when two records share an id.
var ErrDuplicateID = errors.New("duplicate record id")

// Catalog is an immutable, ordered set of records keyed by region id.
type Catalog struct {
	records []Record
	index   map[string]int
}

// New validates records and builds a catalog preserving their order.
func New(records []Record) (*Catalog, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}

	c := &Catalog{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(err, &validationErrors) {
				return nil, fmt.Errorf("validate.Struct(records[%d]) > %w", i, err)
			}
			var errorMsgs []string
			for _, e := range validationErrors {
				errorMsgs = append(errorMsgs, e.Translate(trans))
			}
			return nil, fmt.Errorf("invalid record %d (%s): %s", i, record.ID, strings.Join(errorMsgs, ", "))
		}
		if _, ok := c.index[record.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
		}
		c.index[record.ID] = len(c.records)
		c.records = append(c.records, record)
	}
	return c, nil
}

// Lookup returns the record for id.
func (c *Catalog) Lookup(id string) (Record, bool) {
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Records returns all records in catalog order.
func (c *Catalog) Records() []Record {
	return slices.Clone(c.records)
}

// IDs returns all ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.records))
	for _, record := range c.records {
		ids = append(ids, record.ID)
	}
	return ids
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Categories returns the categories used by the catalog, in order of first use.
func (c *Catalog) Categories() []Category {
	var categories []Category
	for _, record := range c.records {
		if !slices.Contains(categories, record.Category) {
			categories = append(categories, record.Category)
		}
	}
	return categories
}

// ByCategory returns the records of category in catalog order.
func (c *Catalog) ByCategory(category Category) []Record {
	var records []Record
	for _, record := range c.records {
		if record.Category == category {
			records = append(records, record)
		}
	}
	return records
}
