package assets

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

const referenceTemplateName = "reference.md.go.tmpl"

//go:embed templates/reference.md.go.tmpl
var fallbackReferenceTemplate string

// Reference is the data of the full reference document in one language.
type Reference struct {
	Language string
	Heading  string
	Labels   ReferenceLabels
	Entries  []ReferenceEntry
	Footer   string
}

// ReferenceLabels are the localized headings of each entry
type ReferenceLabels struct {
	Description string
	Products    string
	Mechanism   string
	Source      string
}

// ReferenceEntry is one catalog record. Mechanism is empty when the record has no note in the language.
type ReferenceEntry struct {
	ID          string
	Title       string
	Category    string
	Description string
	Products    string
	Mechanism   string
	SourcePages string
}

// ParseReferenceTemplate parses the template at templatePath, or the embedded one when the file is missing or broken.
func ParseReferenceTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, referenceTemplateName, fallbackReferenceTemplate)
}

func WriteReference(output io.Writer, tmpl *template.Template, reference Reference) error {
	if err := tmpl.Execute(output, reference); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
