package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_CheckRegions(t *testing.T) {
	c, err := New([]Record{
		newTestRecord("sulfur_ox", CategorySulfurOxidation),
		newTestRecord("dealk_n", CategoryOxidativeDealkylation),
		newTestRecord("dealk_o", CategoryOxidativeDealkylation),
	})
	require.NoError(t, err)

	tests := []struct {
		name         string
		regionIDs    []string
		wantErrors   []ValidationError
		wantWarnings []ValidationError
	}{
		{
			name:      "every region and record matched",
			regionIDs: []string{"sulfur_ox", "dealk_n", "dealk_o"},
		},
		{
			name:      "record without region is a warning",
			regionIDs: []string{"sulfur_ox", "dealk_n"},
			wantWarnings: []ValidationError{
				{RegionID: "dealk_o", Message: "catalog record is not reachable from any region", Severity: "warning"},
			},
		},
		{
			name:      "orphan region is an error",
			regionIDs: []string{"sulfur_ox", "dealk_n", "dealk_o", "dealk_s"},
			wantErrors: []ValidationError{
				{
					RegionID:    "dealk_s",
					Message:     "region has no catalog record",
					Severity:    "error",
					Suggestions: []string{"dealk_n", "dealk_o"},
				},
			},
		},
		{
			name:      "duplicate region id is an error",
			regionIDs: []string{"sulfur_ox", "sulfur_ox", "dealk_n", "dealk_o"},
			wantErrors: []ValidationError{
				{RegionID: "sulfur_ox", Message: "region id is used by more than one region", Severity: "error"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CheckRegions(tt.regionIDs)
			assert.Equal(t, tt.wantErrors, got.Errors)
			assert.Equal(t, tt.wantWarnings, got.Warnings)
			assert.Equal(t, len(tt.wantErrors) > 0, got.HasErrors())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		RegionID:    "dealk_x",
		Message:     "region has no catalog record",
		Suggestions: []string{"dealk_n", "dealk_o"},
	}
	assert.Equal(t, "dealk_x: region has no catalog record [Suggestion: dealk_n; dealk_o]", err.Error())
}
