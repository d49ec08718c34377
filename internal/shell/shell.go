// Package shell holds the presentation state of the diagram: the selected region and the
// display language, and derives everything the user sees from it.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/language"
)

// Notation is the linear notation of the depicted molecule.
const Notation = "CN(C)c1cccnc1-c2cc(OC)c(SC)cc2CC=CC(O)CCC"

var (
	// ErrOrphanRegion is returned when a diagram region has no catalog record.
	ErrOrphanRegion = errors.New("diagram region without catalog record")
	// ErrManualCopy is returned by clipboards that cannot reach the user's clipboard.
	// The notation is then shown for a manual copy.
	ErrManualCopy = errors.New("the text has to be copied manually")
	// ErrUnsupportedLanguage is returned by exporters that cannot typeset the view's language.
	ErrUnsupportedLanguage = errors.New("language is not supported by the exporter")
)

//go:generate mockgen -source=shell.go -destination=../mocks/shell/mock_shell.go -package=mock_shell

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Exporter renders a print view into a paginated document and returns its location.
type Exporter interface {
	Export(ctx context.Context, view View) (string, error)
}

// State is the selection and the display language. An empty Selected means nothing is selected.
type State struct {
	Selected string
	Language language.Language
}

// Idle reports whether nothing is selected.
func (s State) Idle() bool {
	return s.Selected == ""
}

// Notice is the localized outcome of a side action. Manual is set when nothing was copied
// and Message carries the text to copy by hand.
type Notice struct {
	OK      bool
	Manual  bool
	Message string
}

// Result is the outcome of the notice as a metric label.
func (n Notice) Result() string {
	switch {
	case n.OK:
		return "ok"
	case n.Manual:
		return "manual"
	default:
		return "failed"
	}
}

// Shell owns the State. It is not safe for concurrent use: callers feed it one event at a time.
type Shell struct {
	catalog   *catalog.Catalog
	scene     *diagram.Scene
	messages  *language.Messages
	clipboard Clipboard
	exporter  Exporter
	logger    *slog.Logger

	state State
}

type Option func(*Shell)

func WithClipboard(c Clipboard) Option {
	return func(s *Shell) {
		s.clipboard = c
	}
}

func WithExporter(e Exporter) Option {
	return func(s *Shell) {
		s.exporter = e
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New creates a shell in the idle English state. Every region of scene must have a catalog record.
func New(cat *catalog.Catalog, scene *diagram.Scene, messages *language.Messages, opts ...Option) (*Shell, error) {
	result := cat.CheckRegions(scene.RegionIDs())
	if result.HasErrors() {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, e.Error())
		}
		return nil, fmt.Errorf("%w: %s", ErrOrphanRegion, strings.Join(msgs, ", "))
	}

	s := &Shell{
		catalog:  cat,
		scene:    scene,
		messages: messages,
		logger:   slog.Default(),
		state:    State{Language: language.English},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

func (s *Shell) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Shell) Scene() *diagram.Scene {
	return s.scene
}

// Click activates the region id: it selects it, or clears the selection when it is already selected.
// It returns false and leaves the state unchanged when id is not a region of the scene.
func (s *Shell) Click(id string) bool {
	if _, ok := s.scene.Region(id); !ok {
		s.logger.Debug("ignored click on unknown region", slog.String("region", id))
		return false
	}
	if s.state.Selected == id {
		s.state.Selected = ""
	} else {
		s.state.Selected = id
	}
	s.logger.Debug("region clicked",
		slog.String("region", id),
		slog.String("selected", s.state.Selected),
	)
	return true
}

// ClickAt hit-tests p against the scene and clicks the region under it.
func (s *Shell) ClickAt(p diagram.Point) bool {
	return s.scene.Click(p, func(id string) {
		s.Click(id)
	})
}

// ToggleLanguage switches between English and Arabic. The selection is kept.
func (s *Shell) ToggleLanguage() {
	s.state.Language = s.state.Language.Toggle()
	s.logger.Debug("language toggled", slog.String("language", s.state.Language.String()))
}

// SetLanguage sets the display language.
func (s *Shell) SetLanguage(lang language.Language) {
	s.state.Language = lang
}

// RenderDiagram writes the diagram with the current selection highlighted.
func (s *Shell) RenderDiagram(w io.Writer, opts diagram.RenderOptions) error {
	return s.scene.Render(w, s.highlighted(), opts)
}

// highlighted is the selected id when it resolves to a record.
func (s *Shell) highlighted() string {
	if s.state.Idle() {
		return ""
	}
	if _, ok := s.catalog.Lookup(s.state.Selected); !ok {
		return ""
	}
	return s.state.Selected
}

// CopyNotation writes Notation to the clipboard and returns a notice telling whether it worked.
func (s *Shell) CopyNotation(ctx context.Context) Notice {
	lang := s.state.Language
	if s.clipboard == nil {
		return Notice{Message: s.messages.Text(lang, language.KeyCopyFailed, Notation)}
	}
	if err := s.clipboard.WriteText(ctx, Notation); err != nil {
		if errors.Is(err, ErrManualCopy) {
			return Notice{Manual: true, Message: s.messages.Text(lang, language.KeyCopyManual, Notation)}
		}
		s.logger.Warn("failed to copy the notation", slog.Any("error", err))
		return Notice{Message: s.messages.Text(lang, language.KeyCopyFailed, Notation)}
	}
	return Notice{OK: true, Message: s.messages.Text(lang, language.KeyCopied)}
}

// Export renders the print view through the exporter. The state is not changed.
func (s *Shell) Export(ctx context.Context) (string, Notice) {
	lang := s.state.Language
	if s.exporter == nil {
		return "", Notice{Message: s.messages.Text(lang, language.KeyExportFailed)}
	}
	path, err := s.exporter.Export(ctx, s.View(ModePrint))
	if errors.Is(err, ErrUnsupportedLanguage) {
		s.logger.Info("the exporter does not support the language", slog.String("language", lang.String()))
		return "", Notice{Message: s.messages.Text(lang, language.KeyExportNoPDF)}
	}
	if err != nil {
		s.logger.Error("failed to export the reference", slog.Any("error", err))
		return "", Notice{Message: s.messages.Text(lang, language.KeyExportFailed)}
	}
	return path, Notice{OK: true, Message: s.messages.Text(lang, language.KeyExported, path)}
}
