package diagram

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

const (
	bondColor     = "#1e293b"
	bondWidth     = 2.5
	nitrogenColor = "#2563eb"
	oxygenColor   = "#dc2626"
	sulfurColor   = "#d97706"
	markerColor   = "#64748b"
)

// Point is a position in view box units.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Element is a piece of static markup.
type Element interface {
	writeSVG(b *strings.Builder)
}

// Shape is a highlight overlay that also serves as the hit area of a region.
type Shape interface {
	Contains(p Point) bool
	writeHighlight(b *strings.Builder, opacity float64)
}

type Line struct {
	From, To Point
	Width    float64
	Round    bool
}

func (l Line) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
		num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y), bondColor, num(widthOr(l.Width)))
	if l.Round {
		b.WriteString(` stroke-linecap="round"`)
	}
	b.WriteString("/>")
}

type Polygon struct {
	Points []Point
	Width  float64
}

func (p Polygon) writeSVG(b *strings.Builder) {
	points := make([]string, 0, len(p.Points))
	for _, pt := range p.Points {
		points = append(points, num(pt.X)+","+num(pt.Y))
	}
	fmt.Fprintf(b, `<polygon points="%s" stroke="%s" stroke-width="%s" fill="none"/>`,
		strings.Join(points, " "), bondColor, num(widthOr(p.Width)))
}

// Path is a skeletal bond chain.
type Path struct {
	D     string
	Width float64
}

func (p Path) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<path d="%s" stroke="%s" stroke-width="%s" fill="none" stroke-linecap="round" stroke-linejoin="round"/>`,
		html.EscapeString(p.D), bondColor, num(widthOr(p.Width)))
}

// Circle is drawn as markup (Fill/Stroke) or used as a highlight shape.
type Circle struct {
	Center Point
	R      float64
	Fill   string
	Stroke float64
	Dash   string
}

func (c Circle) writeSVG(b *strings.Builder) {
	fill := c.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"`, num(c.Center.X), num(c.Center.Y), num(c.R), fill)
	if c.Stroke > 0 {
		fmt.Fprintf(b, ` stroke="%s" stroke-width="%s"`, bondColor, num(c.Stroke))
	}
	if c.Dash != "" {
		fmt.Fprintf(b, ` stroke-dasharray="%s"`, c.Dash)
	}
	b.WriteString("/>")
}

func (c Circle) Contains(p Point) bool {
	dx, dy := p.X-c.Center.X, p.Y-c.Center.Y
	return dx*dx+dy*dy <= c.R*c.R
}

func (c Circle) writeHighlight(b *strings.Builder, opacity float64) {
	fmt.Fprintf(b, `<circle class="highlight" cx="%s" cy="%s" r="%s" %s/>`,
		num(c.Center.X), num(c.Center.Y), num(c.R), highlightAttrs(opacity))
}

// Rect is a rounded rectangle highlight.
type Rect struct {
	Min           Point
	Width, Height float64
	Radius        float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Min.X+r.Width && p.Y >= r.Min.Y && p.Y <= r.Min.Y+r.Height
}

func (r Rect) writeHighlight(b *strings.Builder, opacity float64) {
	fmt.Fprintf(b, `<rect class="highlight" x="%s" y="%s" width="%s" height="%s" rx="%s" %s/>`,
		num(r.Min.X), num(r.Min.Y), num(r.Width), num(r.Height), num(r.Radius), highlightAttrs(opacity))
}

// Text is an atom or marker label. Subscript is rendered as a lowered span, as in CH₃.
type Text struct {
	At            Point
	Content       string
	Subscript     string
	Size          float64
	SubscriptSize float64
	Fill          string
	Middle        bool
	Bold          bool
}

func (t Text) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<text x="%s" y="%s" font-size="%s"`, num(t.At.X), num(t.At.Y), num(t.Size))
	if t.Middle {
		b.WriteString(` text-anchor="middle"`)
	}
	if t.Bold {
		b.WriteString(` font-weight="bold"`)
	}
	if t.Fill != "" {
		fmt.Fprintf(b, ` fill="%s"`, t.Fill)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(t.Content))
	if t.Subscript != "" {
		b.WriteString(`<tspan dy="3"`)
		if t.SubscriptSize > 0 {
			fmt.Fprintf(b, ` font-size="%s"`, num(t.SubscriptSize))
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(t.Subscript))
		b.WriteString("</tspan>")
	}
	b.WriteString("</text>")
}

// Group translates its children.
type Group struct {
	Offset   Point
	Children []Element
}

func (g Group) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<g transform="translate(%s, %s)">`, num(g.Offset.X), num(g.Offset.Y))
	for _, child := range g.Children {
		child.writeSVG(b)
	}
	b.WriteString("</g>")
}

func widthOr(w float64) float64 {
	if w == 0 {
		return bondWidth
	}
	return w
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
