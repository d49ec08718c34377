package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/at-ishikawa/metaboschema/internal/assets"
	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/pdf"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

func regionHref(id string) string {
	return "/regions/" + url.PathEscape(id)
}

func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, sess *session) {
	view := sess.shell.View(shell.ModeInteractive)

	var regions []regionButton
	for _, id := range sess.shell.Scene().RegionIDs() {
		label := id
		if record, ok := sess.shell.Catalog().Lookup(id); ok {
			label = record.Title.In(view.Language)
		}
		regions = append(regions, regionButton{
			Action:   regionHref(id),
			Label:    label,
			Selected: id == view.Highlighted,
		})
	}

	s.renderPage(w, "index", indexPage{
		View:    view,
		Regions: regions,
		Notice:  sess.takeFlash(),
	})
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request, sess *session) {
	id := chi.URLParam(r, "id")
	if !sess.shell.Click(id) {
		http.NotFound(w, r)
		return
	}
	s.deps.Metrics.RegionClicked(id)
	s.redirectHome(w, r)
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request, sess *session) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	x, errX := strconv.ParseFloat(r.PostForm.Get("x"), 64)
	y, errY := strconv.ParseFloat(r.PostForm.Get("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}

	sess.shell.Scene().Click(diagram.Point{X: x, Y: y}, func(id string) {
		sess.shell.Click(id)
		s.deps.Metrics.RegionClicked(id)
	})
	s.redirectHome(w, r)
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request, sess *session) {
	sess.shell.ToggleLanguage()
	s.deps.Metrics.LanguageToggled(sess.shell.State().Language.String())
	s.redirectHome(w, r)
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request, sess *session) {
	notice := sess.shell.CopyNotation(r.Context())
	s.deps.Metrics.NotationCopied(notice.Result())
	sess.flash = &notice
	s.redirectHome(w, r)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, sess *session) {
	path, notice := sess.shell.Export(r.Context())
	s.deps.Metrics.ReferenceExported(notice.Result())
	if !notice.OK {
		sess.flash = &notice
		s.redirectHome(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(path)))
	http.ServeFile(w, r, path)
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request, sess *session) {
	view := sess.shell.View(shell.ModePrint)
	reference, err := pdf.NewReference(view)
	if err != nil {
		s.serverError(w, "pdf.NewReference", err)
		return
	}

	var markdown bytes.Buffer
	if err := assets.WriteReference(&markdown, s.deps.Reference, reference); err != nil {
		s.serverError(w, "assets.WriteReference", err)
		return
	}
	var body bytes.Buffer
	if err := s.markdown.Convert(markdown.Bytes(), &body); err != nil {
		s.serverError(w, "markdown.Convert", err)
		return
	}

	var svg bytes.Buffer
	if err := sess.shell.RenderDiagram(&svg, diagram.RenderOptions{Class: "diagram"}); err != nil {
		s.serverError(w, "RenderDiagram", err)
		return
	}

	s.renderPage(w, "print", printPage{
		View:    view,
		Diagram: template.HTML(svg.String()),
		Body:    template.HTML(body.String()),
	})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request, sess *session) {
	var svg bytes.Buffer
	if err := sess.shell.RenderDiagram(&svg, diagram.RenderOptions{}); err != nil {
		s.serverError(w, "RenderDiagram", err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(svg.Bytes())
}

type stateResponse struct {
	Selected    string          `json:"selected"`
	Language    string          `json:"language"`
	Direction   string          `json:"direction"`
	Title       string          `json:"title"`
	Detail      *detailResponse `json:"detail,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
}

type detailResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Products    string  `json:"products"`
	Mechanism   *string `json:"mechanism,omitempty"`
	SourcePages string  `json:"source_pages"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request, sess *session) {
	state := sess.shell.State()
	view := sess.shell.View(shell.ModeInteractive)

	resp := stateResponse{
		Selected:    state.Selected,
		Language:    state.Language.String(),
		Direction:   view.Direction,
		Title:       view.Title,
		Placeholder: view.Placeholder,
	}
	if d := view.Detail; d != nil {
		resp.Detail = &detailResponse{
			ID:          d.ID,
			Category:    d.Badge,
			Title:       d.Title,
			Description: d.Description,
			Products:    d.Products,
			Mechanism:   d.Mechanism,
			SourcePages: d.SourcePages,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode the state", slog.Any("error", err))
	}
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.serverError(w, "pages.ExecuteTemplate", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) serverError(w http.ResponseWriter, call string, err error) {
	s.logger.Error("failed to handle a request",
		slog.String("call", call),
		slog.Any("error", err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
