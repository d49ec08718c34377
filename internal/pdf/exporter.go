package pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/at-ishikawa/metaboschema/internal/assets"
	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

var ErrNoListing = errors.New("view has no listing")

// typesetLanguages are the languages the core PDF fonts can show. Arabic needs glyphs
// and contextual shaping that the renderer does not have.
var typesetLanguages = map[language.Language]bool{
	language.English: true,
}

// Exporter writes the reference document of a print view as markdown and converts it to PDF.
type Exporter struct {
	Directory   string
	Template    *template.Template
	Orientation string
	PageSize    string
	Logger      *slog.Logger
}

func NewExporter(directory string, tmpl *template.Template, orientation string, pageSize string) *Exporter {
	return &Exporter{
		Directory:   directory,
		Template:    tmpl,
		Orientation: orientation,
		PageSize:    pageSize,
		Logger:      slog.Default(),
	}
}

// FileName is the base name of the markdown document for a language.
func FileName(lang string) string {
	return fmt.Sprintf("metaboschema-reference-%s.md", lang)
}

// Export implements shell.Exporter and returns the absolute path of the PDF.
// Views in a language the renderer cannot typeset fail with shell.ErrUnsupportedLanguage
// before anything is written.
func (e *Exporter) Export(ctx context.Context, view shell.View) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !typesetLanguages[view.Language] {
		return "", fmt.Errorf("%w: %s", shell.ErrUnsupportedLanguage, view.Language)
	}
	reference, err := NewReference(view)
	if err != nil {
		return "", err
	}

	tmpl := e.Template
	if tmpl == nil {
		tmpl, err = assets.ParseReferenceTemplate("")
		if err != nil {
			return "", fmt.Errorf("assets.ParseReferenceTemplate() > %w", err)
		}
	}

	directory := e.Directory
	if directory == "" {
		directory = "."
	}
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	markdownPath := filepath.Join(directory, FileName(reference.Language))
	file, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	if err := assets.WriteReference(file, tmpl, reference); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("assets.WriteReference() > %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("file.Close() > %w", err)
	}

	pdfPath, err := ConvertMarkdownToPDF(markdownPath, e.Orientation, e.PageSize)
	if err != nil {
		return "", fmt.Errorf("ConvertMarkdownToPDF() > %w", err)
	}

	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("exported the reference",
		slog.String("markdown", markdownPath),
		slog.String("pdf", pdfPath),
	)
	return pdfPath, nil
}

// NewReference converts the listing of a print view into template data.
func NewReference(view shell.View) (assets.Reference, error) {
	if view.Listing == nil {
		return assets.Reference{}, ErrNoListing
	}

	reference := assets.Reference{
		Language: view.Language.String(),
		Heading:  view.Listing.Heading,
		Labels: assets.ReferenceLabels{
			Description: view.Labels.Description,
			Products:    view.Labels.Products,
			Mechanism:   view.Labels.Mechanism,
			Source:      view.Labels.Source,
		},
		Footer: view.Listing.Footer,
	}
	for _, d := range view.Listing.Entries {
		entry := assets.ReferenceEntry{
			ID:          d.ID,
			Title:       d.Title,
			Category:    d.Badge,
			Description: d.Description,
			Products:    d.Products,
			SourcePages: d.SourcePages,
		}
		if d.Mechanism != nil {
			entry.Mechanism = *d.Mechanism
		}
		reference.Entries = append(reference.Entries, entry)
	}
	return reference, nil
}
