package render

import (
	"github.com/statick88/statick88.github.io/internal/assets"
	"github.com/statick88/statick88.github.io/internal/layout"
	"github.com/statick88/statick88.github.io/internal/typeset"
)

// renderSidebar lays out the persistent left column: avatar, identity block,
// biography box, contact and profile links, and the QR code anchored at the
// bottom of the column. Image slots sit at fixed layout points; a nil asset
// simply leaves its slot empty.
func (a *assembler) renderSidebar(avatar, qr *assets.Image) {
	b := a.rec.Basics
	cur := a.flow.cur

	// Claim the QR slot before any text flows, so the column floor keeps it
	// clear on whichever page the sidebar finishes on.
	if qr != nil {
		cur.ReserveFloor(layout.Sidebar, qrSizePt+entryGap)
	}

	if avatar != nil {
		x := (layout.SidebarWidth - avatarSize) / 2
		cur.EnsureSpace(layout.Sidebar, avatarSize+16)
		a.flow.PlaceImage(avatar, x, cur.Y(layout.Sidebar), avatarSize, avatarSize)
		cur.Advance(layout.Sidebar, avatarSize+16)
	}

	a.writeParagraph(layout.Sidebar, layout.SidebarX, layout.SidebarTextWidth,
		b.Name, "B", sizeSideName, sidebarFG, false)
	if l := b.Label.Resolve(a.lang); l != "" {
		a.writeParagraph(layout.Sidebar, layout.SidebarX, layout.SidebarTextWidth,
			l, "", sizeBody, sidebarLink, false)
	}
	cur.Advance(layout.Sidebar, entryGap)

	a.renderBio()
	a.renderContact()

	// QR slot: fixed position at the bottom of the column on the page the
	// sidebar finished on.
	if qr != nil {
		x := (layout.SidebarWidth - qrSizePt) / 2
		a.flow.PlaceImage(qr, x, layout.SidebarFloor+qrSizePt, qrSizePt, qrSizePt)
	}
}

// renderBio draws the fixed-height biography box, truncating overflow with an
// ellipsis rather than letting the summary push the contact block around.
func (a *assembler) renderBio() {
	summary := a.rec.Basics.Summary.Resolve(a.lang)
	m := a.flow.Measurer("")
	lines := typeset.Wrap(m, summary, layout.SidebarTextWidth, sizeSmall)
	lines = typeset.TruncateWithEllipsis(m, lines, bioMaxLines, layout.SidebarTextWidth, sizeSmall)
	if len(lines) == 0 {
		return
	}
	a.writeWrapped(layout.Sidebar, layout.SidebarX, layout.SidebarTextWidth,
		lines, m, "", sizeSmall, sidebarFG, false)
	a.flow.cur.Advance(layout.Sidebar, entryGap)
}

func (a *assembler) renderContact() {
	b := a.rec.Basics
	cur := a.flow.cur

	a.writeLine(layout.Sidebar, layout.SidebarX, label(a.lang, "contact"), "B", sizeBody, sidebarFG)
	cur.Advance(layout.Sidebar, 2)

	if b.Email != "" {
		a.writeLinkedLine(layout.Sidebar, layout.SidebarX, b.Email, "", sizeSmall,
			sidebarLink, "mailto:"+b.Email)
	}
	if b.Phone != "" {
		a.writeLine(layout.Sidebar, layout.SidebarX, b.Phone, "", sizeSmall, sidebarFG)
	}
	if b.URL != "" {
		a.writeLinkedLine(layout.Sidebar, layout.SidebarX, b.URL, "", sizeSmall,
			sidebarLink, b.URL)
	}
	for _, p := range b.Profiles {
		if p.Network == "" {
			continue
		}
		a.writeLinkedLine(layout.Sidebar, layout.SidebarX, p.Network, "", sizeSmall,
			sidebarLink, p.URL)
	}
	cur.Advance(layout.Sidebar, entryGap)
}
