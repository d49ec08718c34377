package catalog

import "github.com/at-ishikawa/metaboschema/internal/language"

// Text is a string authored in both languages.
type Text struct {
	En string `yaml:"en" validate:"required"`
	Ar string `yaml:"ar" validate:"required"`
}

// In returns the text for lang.
func (t Text) In(lang language.Language) string {
	if lang == language.Arabic {
		return t.Ar
	}
	return t.En
}

// Note is a string that may be authored in only one language, or none.
type Note struct {
	En string `yaml:"en,omitempty"`
	Ar string `yaml:"ar,omitempty"`
}

// In returns the note for lang, or an empty string when it was not authored in lang.
func (n Note) In(lang language.Language) string {
	if lang == language.Arabic {
		return n.Ar
	}
	return n.En
}

// Has reports whether the note exists in lang.
func (n Note) Has(lang language.Language) bool {
	return n.In(lang) != ""
}

// Record describes one metabolic reaction, keyed by the id of its diagram region.
type Record struct {
	ID            string   `yaml:"id" validate:"required"`
	Category      Category `yaml:"category" validate:"required,category"`
	Title         Text     `yaml:"title"`
	Description   Text     `yaml:"description"`
	Products      Text     `yaml:"products"`
	MechanismNote Note     `yaml:"mechanism_note,omitempty"`
	SourcePages   string   `yaml:"source_pages" validate:"required"`
}
