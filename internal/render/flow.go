// Package render drives the document construction library: page flow with
// sidebar repainting, text and image placement, hyperlink annotations, and
// the top-level CV assembler.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/statick88/statick88.github.io/internal/assets"
	"github.com/statick88/statick88.github.io/internal/fonts"
	"github.com/statick88/statick88.github.io/internal/layout"
	"github.com/statick88/statick88.github.io/internal/typeset"
)

type color struct{ r, g, b int }

var (
	sidebarBG   = color{38, 50, 56}
	sidebarFG   = color{236, 239, 241}
	sidebarLink = color{128, 203, 196}
	accent      = color{0, 150, 136}
	ink         = color{33, 33, 33}
	subtle      = color{96, 105, 110}
)

// LinkRect is a hyperlink annotation rectangle in bottom-left page
// coordinates, recorded as it is attached. Kept around so callers and tests
// can audit annotation placement.
type LinkRect struct {
	Page int
	X    float64
	Y    float64
	W    float64
	H    float64
	URL  string
}

// Flow owns the current page and is the single source of truth for which page
// is being written to. All drawing and annotation goes through it; callers
// never cache a page reference across a potential page break.
type Flow struct {
	doc          *fpdf.Fpdf
	fonts        *fonts.Set
	cur          *layout.Cursor
	links        []LinkRect
	sidebarPages []int
}

// newFlow builds a document at the fixed page size, loads fonts, and opens
// the first page.
func newFlow(fontDir string) *Flow {
	doc := fpdf.New("P", "pt", "A4", "")
	// Catalog sorting fixes the order of font and image entries in the PDF
	// dictionaries, which otherwise follows map iteration order; without it
	// identical inputs do not yield byte-identical output.
	doc.SetCatalogSort(true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	f := &Flow{doc: doc}
	f.fonts = fonts.Load(doc, fontDir)
	f.cur = layout.NewCursor(nil)
	f.cur.SetBreakFunc(f.NewPage)
	f.NewPage()
	return f
}

// NewPage allocates a fresh page, repaints the sidebar background so
// overflowed sidebar content keeps its visual framing, and resets both
// cursors to the top margin.
func (f *Flow) NewPage() {
	f.doc.AddPage()
	f.doc.SetFillColor(sidebarBG.r, sidebarBG.g, sidebarBG.b)
	f.doc.Rect(0, 0, layout.SidebarWidth, layout.PageHeight, "F")
	f.sidebarPages = append(f.sidebarPages, f.doc.PageNo())
	f.cur.Reset()
}

// PageCount returns the number of pages produced so far.
func (f *Flow) PageCount() int {
	return f.doc.PageCount()
}

// Links returns every hyperlink rectangle attached so far.
func (f *Flow) Links() []LinkRect {
	return f.links
}

// SidebarPages returns the page numbers whose sidebar background rectangle
// has been painted. Every produced page must appear here exactly once.
func (f *Flow) SidebarPages() []int {
	return f.sidebarPages
}

func (f *Flow) setFont(style string, size float64) {
	f.doc.SetFont(f.fonts.Family, style, size)
}

// DrawText draws a single prepared line with its baseline at baselineY
// (distance from the page bottom) and returns its measured width.
func (f *Flow) DrawText(x, baselineY float64, s, style string, size float64, c color) float64 {
	f.setFont(style, size)
	f.doc.SetTextColor(c.r, c.g, c.b)
	encoded := f.fonts.Tr(s)
	f.doc.Text(x, layout.PageHeight-baselineY, encoded)
	return f.doc.GetStringWidth(encoded)
}

// Rule draws a horizontal accent line at the given height.
func (f *Flow) Rule(x1, x2, y, width float64, c color) {
	f.doc.SetDrawColor(c.r, c.g, c.b)
	f.doc.SetLineWidth(width)
	f.doc.Line(x1, layout.PageHeight-y, x2, layout.PageHeight-y)
}

// PlaceImage embeds a prepared asset with its top edge at topY (distance from
// the page bottom). Nil assets are skipped silently.
func (f *Flow) PlaceImage(img *assets.Image, x, topY, w, h float64) {
	if img == nil {
		return
	}
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	f.doc.RegisterImageOptionsReader(img.Name, opt, bytes.NewReader(img.PNG))
	f.doc.ImageOptions(img.Name, x, layout.PageHeight-topY, w, h, false, opt, 0, "")
}

// Link-box vertical allowances relative to the baseline, as fractions of the
// font size.
const (
	ascenderAllowance  = 0.8
	descenderAllowance = 0.2
)

// AttachLink attaches a clickable URI annotation over a just-drawn text run.
// The rectangle spans from baseline minus a small descender allowance to
// baseline plus an ascender allowance for a reasonably tight hit box. A no-op
// when the URL is empty; nothing is drawn either way.
func (f *Flow) AttachLink(x, baselineY, width, size float64, url string) {
	if url == "" || width <= 0 {
		return
	}
	h := (ascenderAllowance + descenderAllowance) * size
	yBottom := baselineY - descenderAllowance*size
	f.doc.LinkString(x, layout.PageHeight-(yBottom+h), width, h, url)
	f.links = append(f.links, LinkRect{
		Page: f.doc.PageNo(),
		X:    x,
		Y:    yBottom,
		W:    width,
		H:    h,
		URL:  url,
	})
}

type faceMeasurer struct {
	f     *Flow
	style string
}

func (m *faceMeasurer) Width(s string, size float64) float64 {
	m.f.setFont(m.style, size)
	return m.f.doc.GetStringWidth(m.f.fonts.Tr(s))
}

// Measurer returns a width measurer bound to one face of the loaded font set.
func (f *Flow) Measurer(style string) typeset.Measurer {
	return &faceMeasurer{f: f, style: style}
}

// Output serializes the finished document.
func (f *Flow) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
