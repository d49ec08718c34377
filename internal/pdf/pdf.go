package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

const (
	OrientationPortrait  = "P"
	OrientationLandscape = "L"

	DefaultPageSize = "A4"
)

var pageSizes = map[string]bool{
	"A4":     true,
	"Letter": true,
	"Legal":  true,
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string, orientation string, pageSize string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	if orientation == "" {
		orientation = OrientationPortrait
	}
	if orientation != OrientationPortrait && orientation != OrientationLandscape {
		return "", fmt.Errorf("unsupported orientation: %s", orientation)
	}
	if pageSize == "" {
		pageSize = DefaultPageSize
	}
	if !pageSizes[pageSize] {
		return "", fmt.Errorf("unsupported page size: %s", pageSize)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer(orientation, pageSize, pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
