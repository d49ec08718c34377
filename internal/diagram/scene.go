// Package diagram draws the teaching molecule as a fixed SVG scene with clickable regions.
package diagram

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const (
	// ViewBoxWidth and ViewBoxHeight bound every coordinate of the scene.
	ViewBoxWidth  = 600
	ViewBoxHeight = 350

	// HighlightOpacity is the opacity of the overlay of the selected region.
	HighlightOpacity = 0.3
	highlightFill    = "#ef4444"
	highlightEasing  = "opacity 0.2s ease-in-out"
)

// Region is an interactive part of the scene. Elements and Highlight are relative to Offset.
type Region struct {
	ID        string
	Offset    Point
	Elements  []Element
	Highlight Shape
}

// Scene is the static drawing. Regions drawn later sit on top of earlier ones.
type Scene struct {
	Static  []Element
	Regions []Region
}

// RenderOptions controls the root element of the document.
type RenderOptions struct {
	// Class is set on the root svg element.
	Class string
}

// RegionIDs returns the region ids in draw order.
func (s *Scene) RegionIDs() []string {
	ids := make([]string, 0, len(s.Regions))
	for _, r := range s.Regions {
		ids = append(ids, r.ID)
	}
	return ids
}

// Region returns the region with id.
func (s *Scene) Region(id string) (Region, bool) {
	for _, r := range s.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Opacity is the highlight opacity of the region id while selectedID is selected.
func Opacity(id, selectedID string) float64 {
	if selectedID != "" && id == selectedID {
		return HighlightOpacity
	}
	return 0
}

// Render writes the SVG document for the current selection.
func (s *Scene) Render(w io.Writer, selectedID string, opts RenderOptions) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d"`, ViewBoxWidth, ViewBoxHeight)
	if opts.Class != "" {
		fmt.Fprintf(&b, ` class="%s"`, html.EscapeString(opts.Class))
	}
	b.WriteString(">\n")

	for _, e := range s.Static {
		e.writeSVG(&b)
		b.WriteString("\n")
	}
	for _, r := range s.Regions {
		r.writeSVG(&b, Opacity(r.ID, selectedID))
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString() > %w", err)
	}
	return nil
}

func (r Region) writeSVG(b *strings.Builder, opacity float64) {
	id := html.EscapeString(r.ID)
	fmt.Fprintf(b, `<g class="region" data-region="%s" transform="translate(%s, %s)">`, id, num(r.Offset.X), num(r.Offset.Y))
	for _, e := range r.Elements {
		e.writeSVG(b)
	}
	if r.Highlight != nil {
		r.Highlight.writeHighlight(b, opacity)
	}
	b.WriteString("</g>")
}

func highlightAttrs(opacity float64) string {
	return fmt.Sprintf(`fill="%s" opacity="%s" style="transition: %s"`, highlightFill, num(opacity), highlightEasing)
}

// HitTest returns the top-most region whose highlight contains p.
func (s *Scene) HitTest(p Point) (string, bool) {
	for i := len(s.Regions) - 1; i >= 0; i-- {
		r := s.Regions[i]
		if r.Highlight != nil && r.Highlight.Contains(p.sub(r.Offset)) {
			return r.ID, true
		}
	}
	return "", false
}

// Click reports a pointer activation at p. onRegionClick is called exactly once when a region is hit
// and never for empty space.
func (s *Scene) Click(p Point, onRegionClick func(id string)) bool {
	id, ok := s.HitTest(p)
	if !ok {
		return false
	}
	onRegionClick(id)
	return true
}
