package catalog

import (
	"fmt"
	"strings"
)

// ValidationError is a single finding of a consistency check.
type ValidationError struct {
	RegionID    string
	Message     string
	Severity    string // "error" or "warning"
	Suggestions []string
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.RegionID, e.Message)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" [Suggestion: %s]", strings.Join(e.Suggestions, "; "))
	}
	return msg
}

// ValidationResult groups the findings of CheckRegions.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) AddError(err ValidationError) {
	err.Severity = "error"
	r.Errors = append(r.Errors, err)
}

func (r *ValidationResult) AddWarning(err ValidationError) {
	err.Severity = "warning"
	r.Warnings = append(r.Warnings, err)
}

// CheckRegions compares the region ids of a diagram against the catalog.
// A region without a record is an error; a record without a region is only a warning.
func (c *Catalog) CheckRegions(regionIDs []string) *ValidationResult {
	result := &ValidationResult{}

	seen := make(map[string]bool, len(regionIDs))
	for _, id := range regionIDs {
		if seen[id] {
			result.AddError(ValidationError{
				RegionID: id,
				Message:  "region id is used by more than one region",
			})
			continue
		}
		seen[id] = true

		if _, ok := c.Lookup(id); !ok {
			result.AddError(ValidationError{
				RegionID:    id,
				Message:     "region has no catalog record",
				Suggestions: c.suggest(id),
			})
		}
	}

	for _, record := range c.records {
		if !seen[record.ID] {
			result.AddWarning(ValidationError{
				RegionID: record.ID,
				Message:  "catalog record is not reachable from any region",
			})
		}
	}
	return result
}

// suggest returns catalog ids sharing a prefix with id.
func (c *Catalog) suggest(id string) []string {
	prefix, _, _ := strings.Cut(id, "_")
	var suggestions []string
	for _, record := range c.records {
		if strings.HasPrefix(record.ID, prefix) {
			suggestions = append(suggestions, record.ID)
		}
	}
	return suggestions
}
