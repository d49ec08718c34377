package shell

import (
	"log/slog"

	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/language"
)

// Mode selects between the interactive page and the full listing used for paginated export.
type Mode int

const (
	ModeInteractive Mode = iota
	ModePrint
)

func (m Mode) String() string {
	if m == ModePrint {
		return "print"
	}
	return "interactive"
}

// View is everything needed to draw one screen in one language.
type View struct {
	Mode        Mode
	Language    language.Language
	Direction   string
	Title       string
	Instruction string
	SwitchLabel string
	SwitchTitle string
	CopyLabel   string
	ExportLabel string
	PrintLabel  string
	Labels      Labels

	// Highlighted is the region to highlight, empty when nothing is.
	Highlighted string

	// Interactive mode: exactly one of Detail and Placeholder is set.
	Detail      *Detail
	Placeholder string

	// Print mode.
	Listing *Listing
}

// Labels are the localized section headings.
type Labels struct {
	Description string
	Products    string
	Mechanism   string
	Source      string
}

// Detail is the panel of the selected record.
type Detail struct {
	ID          string
	Badge       string
	Title       string
	Description string
	Products    string
	SourcePages string
	// Mechanism is nil when the record has no note in the active language.
	Mechanism *string
}

// Listing is the full reference of every record, in catalog order.
type Listing struct {
	Heading string
	Entries []Detail
	Footer  string
}

// View derives the view of the current state in mode.
func (s *Shell) View(mode Mode) View {
	lang := s.state.Language
	v := View{
		Mode:        mode,
		Language:    lang,
		Direction:   lang.Direction(),
		Title:       s.messages.Text(lang, language.KeyTitle),
		Instruction: s.messages.Text(lang, language.KeyInstruction),
		SwitchLabel: lang.SwitchLabel(),
		SwitchTitle: s.messages.Text(lang, language.KeySwitchTitle),
		CopyLabel:   s.messages.Text(lang, language.KeyCopyButton),
		ExportLabel: s.messages.Text(lang, language.KeyExportButton),
		PrintLabel:  s.messages.Text(lang, language.KeyPrintButton),
		Labels: Labels{
			Description: s.messages.Text(lang, language.KeyDescription),
			Products:    s.messages.Text(lang, language.KeyProducts),
			Mechanism:   s.messages.Text(lang, language.KeyMechanism),
			Source:      s.messages.Text(lang, language.KeySource),
		},
	}

	if mode == ModePrint {
		listing := &Listing{
			Heading: s.messages.Text(lang, language.KeyFullReference),
			Footer:  s.messages.Text(lang, language.KeyFooter),
		}
		for _, record := range s.catalog.Records() {
			listing.Entries = append(listing.Entries, newDetail(record, lang))
		}
		v.Listing = listing
		return v
	}

	if !s.state.Idle() {
		record, ok := s.catalog.Lookup(s.state.Selected)
		if ok {
			detail := newDetail(record, lang)
			v.Detail = &detail
			v.Highlighted = record.ID
			return v
		}
		s.logger.Debug("selected region has no record", slog.String("region", s.state.Selected))
	}
	v.Placeholder = s.messages.Text(lang, language.KeyEmptyState)
	return v
}

func newDetail(record catalog.Record, lang language.Language) Detail {
	d := Detail{
		ID:          record.ID,
		Badge:       record.Category.Label(),
		Title:       record.Title.In(lang),
		Description: record.Description.In(lang),
		Products:    record.Products.In(lang),
		SourcePages: record.SourcePages,
	}
	if record.MechanismNote.Has(lang) {
		note := record.MechanismNote.In(lang)
		d.Mechanism = &note
	}
	return d
}
