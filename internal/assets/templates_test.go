package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReference() Reference {
	return Reference{
		Language: "en",
		Heading:  "Complete Metabolic Reference",
		Labels: ReferenceLabels{
			Description: "Description",
			Products:    "Major Products",
			Mechanism:   "Mechanism Note",
			Source:      "PDF Reference:",
		},
		Entries: []ReferenceEntry{
			{
				ID:          "sulfur_ox",
				Title:       "Sulfur Oxidation",
				Category:    "Sulfur Oxidation",
				Description: "d",
				Products:    "p",
				SourcePages: "Page 14-15",
			},
			{
				ID:          "dealk_n",
				Title:       "N-Dealkylation",
				Category:    "Oxidative Dealkylation (N/O/S)",
				Description: "d2",
				Products:    "p2",
				Mechanism:   "m",
				SourcePages: "Page 15-16",
			},
		},
		Footer: "footer",
	}
}

func TestParseReferenceTemplate(t *testing.T) {
	embeddedOutput := "# Complete Metabolic Reference\n" +
		"\n## Sulfur Oxidation\n\n_Sulfur Oxidation_ | PDF Reference: Page 14-15\n\n**Description:** d\n\n**Major Products:** p\n\n---\n" +
		"\n## N-Dealkylation\n\n_Oxidative Dealkylation (N/O/S)_ | PDF Reference: Page 15-16\n\n**Description:** d2\n\n**Major Products:** p2\n\n> **Mechanism Note:** m\n\n---\n" +
		"\nfooter\n"

	tests := []struct {
		name         string
		templatePath string

		wantTemplateName     string
		wantTemplateContents string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "custom.md.go.tmpl")
				content := `{{ .Heading }}: {{ range .Entries }}{{ .ID }} {{ end }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(t),
			wantTemplateName:     "custom.md.go.tmpl",
			wantTemplateContents: "Complete Metabolic Reference: sulfur_ox dealk_n ",
		},
		{
			name:                 "uses embedded template when file doesn't exist",
			templatePath:         "/non/existent/invalid.md.go.tmpl",
			wantTemplateName:     "reference.md.go.tmpl",
			wantTemplateContents: embeddedOutput,
		},
		{
			name:                 "uses embedded template when no path is configured",
			templatePath:         "",
			wantTemplateName:     "reference.md.go.tmpl",
			wantTemplateContents: embeddedOutput,
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "invalid.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644))
				return templatePath
			}(t),
			wantTemplateName:     "reference.md.go.tmpl",
			wantTemplateContents: embeddedOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := ParseReferenceTemplate(tt.templatePath)
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantTemplateName, got.Name())

			var buf bytes.Buffer
			require.NoError(t, WriteReference(&buf, got, testReference()))
			assert.Equal(t, tt.wantTemplateContents, buf.String())
		})
	}
}

func TestWriteReference_ExecuteError(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "missing-field.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Missing.Field }}`), 0644))

	tmpl, err := ParseReferenceTemplate(templatePath)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteReference(&buf, tmpl, testReference())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmpl.Execute() > ")
}
