package render

import (
	"time"

	"github.com/statick88/statick88.github.io/internal/assets"
	"github.com/statick88/statick88.github.io/internal/cv"
	"github.com/statick88/statick88.github.io/internal/layout"
	"github.com/statick88/statick88.github.io/internal/typeset"
)

// Font sizes (points) of the fixed design.
const (
	sizeName     = 20.0
	sizeSideName = 14.0
	sizeLabel    = 11.0
	sizeTitle    = 13.0
	sizeEntry    = 10.5
	sizeBody     = 9.5
	sizeSmall    = 8.5

	lineFactor = 1.4

	entryGap   = 8.0
	sectionGap = 14.0

	avatarSize = 90.0
	qrSizePt   = 70.0
	qrSizePx   = 256

	// bioMaxLines caps the fixed-height biography box in the sidebar.
	bioMaxLines = 10

	// publicationsMinHeight is the vertical budget required to start the
	// publications section at all; below it the whole section is skipped
	// rather than rendered with a single orphan line.
	publicationsMinHeight = 110.0
)

// creationDate is pinned so that identical inputs produce byte-identical
// documents.
var creationDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func lineH(size float64) float64 {
	return size * lineFactor
}

// Options parameterizes one variant build. Avatar bytes and the font
// directory are read-only and shared safely across concurrent variants.
type Options struct {
	// Avatar holds the raw avatar image bytes; nil or undecodable bytes
	// simply omit the picture.
	Avatar []byte
	// FontDir is the directory holding the preferred TrueType faces.
	FontDir string
	// Now anchors "in progress" date decisions. Zero means time.Now().
	Now time.Time
}

// Result is a finished language variant.
type Result struct {
	PDF   []byte
	Pages int
	Links []LinkRect
}

type assembler struct {
	flow *Flow
	rec  *cv.Record
	lang cv.Language
	now  time.Time
}

// Render lays out one complete language variant of the CV record. It is a
// pure function of its inputs: no shared mutable state survives between
// calls, so the two variants may run concurrently.
func Render(rec *cv.Record, lang cv.Language, opts Options) (*Result, error) {
	return newAssembler(rec, lang, opts).run(opts)
}

func newAssembler(rec *cv.Record, lang cv.Language, opts Options) *assembler {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &assembler{
		flow: newFlow(opts.FontDir),
		rec:  rec,
		lang: lang,
		now:  now,
	}
}

func (a *assembler) run(opts Options) (*Result, error) {
	a.setMetadata()

	a.renderSidebar(assets.Avatar(opts.Avatar), assets.QR(a.rec.Basics.URL, qrSizePx))
	a.renderMainHeader()
	a.renderExperience()
	a.renderEducation()
	a.renderProjects()
	a.renderSkills()
	a.renderSoftSkills()
	a.renderLanguages()
	a.renderPublications()

	pdf, err := a.flow.Output()
	if err != nil {
		return nil, err
	}
	return &Result{
		PDF:   pdf,
		Pages: a.flow.PageCount(),
		Links: a.flow.Links(),
	}, nil
}

func (a *assembler) setMetadata() {
	doc := a.flow.doc
	doc.SetTitle(a.rec.Basics.Name+" - CV", true)
	doc.SetAuthor(a.rec.Basics.Name, true)
	doc.SetSubject(a.rec.Basics.Label.Resolve(a.lang), true)
	doc.SetCreator("cvgen", true)
	doc.SetCreationDate(creationDate)
	doc.SetModificationDate(creationDate)
}

// writeLine gates, draws and advances a single line in a region, returning
// the drawn width.
func (a *assembler) writeLine(region layout.Region, x float64, s, style string, size float64, c color) float64 {
	h := lineH(size)
	a.flow.cur.EnsureSpace(region, h)
	baseline := a.flow.cur.Y(region)
	w := a.flow.DrawText(x, baseline, s, style, size, c)
	a.flow.cur.Advance(region, h)
	return w
}

// writeLinkedLine draws a line and attaches a clickable annotation over it.
func (a *assembler) writeLinkedLine(region layout.Region, x float64, s, style string, size float64, c color, url string) {
	h := lineH(size)
	a.flow.cur.EnsureSpace(region, h)
	baseline := a.flow.cur.Y(region)
	w := a.flow.DrawText(x, baseline, s, style, size, c)
	a.flow.AttachLink(x, baseline, w, size, url)
	a.flow.cur.Advance(region, h)
}

// writeParagraph wraps text into a region column and draws it line by line,
// justifying every line but the last when asked.
func (a *assembler) writeParagraph(region layout.Region, x, width float64, text, style string, size float64, c color, justified bool) {
	m := a.flow.Measurer(style)
	lines := typeset.Wrap(m, text, width, size)
	a.writeWrapped(region, x, width, lines, m, style, size, c, justified)
}

func (a *assembler) writeWrapped(region layout.Region, x, width float64, lines []string, m typeset.Measurer, style string, size float64, c color, justified bool) {
	for i, line := range lines {
		if justified && i < len(lines)-1 {
			line = typeset.Justify(m, line, width, size)
		}
		a.writeLine(region, x, line, style, size, c)
	}
}

// sectionTitle draws a main-column section heading with its accent rule a
// fixed offset below the title baseline.
func (a *assembler) sectionTitle(key string) {
	title := label(a.lang, key)
	h := lineH(sizeTitle) + 10
	// Keep the title together with at least one entry line.
	a.flow.cur.EnsureSpace(layout.Main, h+2*lineH(sizeBody))
	baseline := a.flow.cur.Y(layout.Main)
	a.flow.DrawText(layout.MainX, baseline, title, "B", sizeTitle, ink)
	a.flow.Rule(layout.MainX, layout.MainX+36, baseline-4, 1.5, accent)
	a.flow.cur.Advance(layout.Main, h)
}

func (a *assembler) renderMainHeader() {
	b := a.rec.Basics
	a.writeLine(layout.Main, layout.MainX, b.Name, "B", sizeName, ink)
	if l := b.Label.Resolve(a.lang); l != "" {
		a.writeLine(layout.Main, layout.MainX, l, "", sizeLabel, accent)
	}
	baseline := a.flow.cur.Y(layout.Main)
	a.flow.Rule(layout.MainX, layout.MainX+layout.MainWidth, baseline+4, 0.8, accent)
	a.flow.cur.Advance(layout.Main, sectionGap)
}
