package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	writeMarkdown := func(t *testing.T) string {
		tmpDir := t.TempDir()
		mdPath := filepath.Join(tmpDir, "test.md")
		content := []byte("# Test Document\n\nThis is a test markdown file.\n")
		require.NoError(t, os.WriteFile(mdPath, content, 0644))
		return mdPath
	}

	tests := []struct {
		name         string
		markdownPath string
		setupFile    func(t *testing.T) string
		orientation  string
		pageSize     string
		wantErr      bool
		wantErrMsg   string
	}{
		{
			name:         "invalid extension",
			markdownPath: "test.txt",
			wantErr:      true,
			wantErrMsg:   "input file must have .md extension",
		},
		{
			name:         "file not found",
			markdownPath: "nonexistent.md",
			wantErr:      true,
			wantErrMsg:   "os.ReadFile",
		},
		{
			name:         "unsupported orientation",
			markdownPath: "test.md",
			orientation:  "X",
			wantErr:      true,
			wantErrMsg:   "unsupported orientation: X",
		},
		{
			name:         "unsupported page size",
			markdownPath: "test.md",
			pageSize:     "B5",
			wantErr:      true,
			wantErrMsg:   "unsupported page size: B5",
		},
		{
			name:      "successful conversion with defaults",
			setupFile: writeMarkdown,
		},
		{
			name:        "successful landscape letter conversion",
			setupFile:   writeMarkdown,
			orientation: OrientationLandscape,
			pageSize:    "Letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mdPath := tt.markdownPath
			if tt.setupFile != nil {
				mdPath = tt.setupFile(t)
			}

			pdfPath, err := ConvertMarkdownToPDF(mdPath, tt.orientation, tt.pageSize)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(pdfPath))
			assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
			_, err = os.Stat(pdfPath)
			assert.NoError(t, err, "PDF file should be created")
		})
	}
}
