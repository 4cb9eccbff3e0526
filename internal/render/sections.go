package render

import (
	"strings"

	"github.com/statick88/statick88.github.io/internal/cv"
	"github.com/statick88/statick88.github.io/internal/layout"
	"github.com/statick88/statick88.github.io/internal/typeset"
)

// header builds the "institution | dateRange" entry line; the separator is
// dropped when either side is empty.
func (a *assembler) header(name, start, end string) string {
	rng := cv.DateRange(start, end, a.lang, a.now)
	if name == "" {
		return rng
	}
	if rng == "" {
		return name
	}
	return name + " | " + rng
}

func (a *assembler) renderExperience() {
	if len(a.rec.Work) == 0 {
		return
	}
	a.sectionTitle("experience")
	for _, w := range a.rec.Work {
		a.writeLine(layout.Main, layout.MainX, a.header(w.Name, w.StartDate, w.EndDate),
			"B", sizeEntry, ink)
		if p := w.Position.Resolve(a.lang); p != "" {
			a.writeLine(layout.Main, layout.MainX, p, "", sizeBody, accent)
		}
		if s := w.Summary.Resolve(a.lang); s != "" {
			a.writeParagraph(layout.Main, layout.MainX, layout.MainWidth,
				s, "", sizeBody, subtle, true)
		}
		a.flow.cur.Advance(layout.Main, entryGap)
	}
	a.flow.cur.Advance(layout.Main, sectionGap-entryGap)
}

func (a *assembler) renderEducation() {
	if len(a.rec.Education) == 0 {
		return
	}
	a.sectionTitle("education")
	for _, e := range a.rec.Education {
		a.writeLine(layout.Main, layout.MainX, a.header(e.Institution, e.StartDate, e.EndDate),
			"B", sizeEntry, ink)
		if area := e.Area.Resolve(a.lang); area != "" {
			a.writeLine(layout.Main, layout.MainX, area, "", sizeBody, subtle)
		}
		a.flow.cur.Advance(layout.Main, entryGap)
	}
	a.flow.cur.Advance(layout.Main, sectionGap-entryGap)
}

func (a *assembler) renderProjects() {
	if len(a.rec.Projects) == 0 {
		return
	}
	a.sectionTitle("projects")
	for _, p := range a.rec.Projects {
		a.writeLine(layout.Main, layout.MainX, p.Name, "B", sizeEntry, ink)
		if d := p.Description.Resolve(a.lang); d != "" {
			a.writeParagraph(layout.Main, layout.MainX, layout.MainWidth,
				d, "", sizeBody, subtle, true)
		}
		a.projectLink("demo", p.URL)
		if p.Source != p.URL {
			a.projectLink("source", p.Source)
		}
		a.flow.cur.Advance(layout.Main, entryGap)
	}
	a.flow.cur.Advance(layout.Main, sectionGap-entryGap)
}

// projectLink draws a labeled, clickable URL line; empty URLs draw nothing.
func (a *assembler) projectLink(key, url string) {
	if url == "" {
		return
	}
	h := lineH(sizeSmall)
	a.flow.cur.EnsureSpace(layout.Main, h)
	baseline := a.flow.cur.Y(layout.Main)
	lw := a.flow.DrawText(layout.MainX, baseline, label(a.lang, key)+": ", "B", sizeSmall, ink)
	uw := a.flow.DrawText(layout.MainX+lw, baseline, url, "", sizeSmall, accent)
	a.flow.AttachLink(layout.MainX+lw, baseline, uw, sizeSmall, url)
	a.flow.cur.Advance(layout.Main, h)
}

func (a *assembler) renderSkills() {
	if len(a.rec.Skills) == 0 {
		return
	}
	a.sectionTitle("skills")
	names := make([]string, 0, len(a.rec.Skills))
	for _, s := range a.rec.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	a.writeParagraph(layout.Main, layout.MainX, layout.MainWidth,
		strings.Join(names, ", "), "", sizeBody, subtle, false)
	a.flow.cur.Advance(layout.Main, sectionGap)
}

func (a *assembler) renderSoftSkills() {
	if len(a.rec.SoftSkills) == 0 {
		return
	}
	a.sectionTitle("softskills")
	const bullet = "• "
	m := a.flow.Measurer("")
	indent := m.Width(bullet, sizeBody)
	for _, s := range a.rec.SoftSkills {
		lines := typeset.Wrap(m, s, layout.MainWidth-indent, sizeBody)
		for i, line := range lines {
			// Continuation lines hang under the first word, not the glyph.
			if i == 0 {
				a.writeLine(layout.Main, layout.MainX, bullet+line, "", sizeBody, subtle)
			} else {
				a.writeLine(layout.Main, layout.MainX+indent, line, "", sizeBody, subtle)
			}
		}
	}
	a.flow.cur.Advance(layout.Main, sectionGap)
}

func (a *assembler) renderLanguages() {
	if len(a.rec.Languages) == 0 {
		return
	}
	a.sectionTitle("languages")
	for _, l := range a.rec.Languages {
		line := cv.Translate(l.Language, a.lang)
		if l.Fluency != "" {
			line += " - " + cv.Translate(l.Fluency, a.lang)
		}
		a.writeLine(layout.Main, layout.MainX, line, "", sizeBody, subtle)
	}
	a.flow.cur.Advance(layout.Main, sectionGap)
}

// renderPublications is gated on remaining vertical budget: with less than
// publicationsMinHeight left on the current page the whole section is skipped
// rather than rendered as an orphan.
func (a *assembler) renderPublications() {
	if len(a.rec.Publications) == 0 {
		return
	}
	if !a.flow.cur.Fits(layout.Main, publicationsMinHeight) {
		return
	}
	a.sectionTitle("publications")
	for _, p := range a.rec.Publications {
		if !a.flow.cur.Fits(layout.Main, lineH(sizeEntry)+lineH(sizeSmall)) {
			return
		}
		title := p.Name.Resolve(a.lang)
		if y := cv.Year(p.ReleaseDate); y != "" {
			title += " (" + y + ")"
		}
		a.writeLinkedLine(layout.Main, layout.MainX, title, "B", sizeEntry, ink, p.URL)
		if p.Publisher != "" {
			a.writeLinkedLine(layout.Main, layout.MainX, p.Publisher, "", sizeSmall, subtle, p.URL)
		}
		a.flow.cur.Advance(layout.Main, entryGap)
	}
}
