// Package layout provides the fixed page geometry and the per-region vertical
// cursors that gate every drawing operation of the rendering engine.
//
// All vertical coordinates in this package measure the distance from the page
// bottom to the next writable baseline; conversion to the construction
// library's top-down space happens at the draw boundary.
package layout

// Fixed A4 geometry, in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	TopMargin    = 40.0
	BottomMargin = 40.0

	// SidebarWidth is the width of the solid background column painted on
	// every page.
	SidebarWidth = 180.0
	// SidebarX is the left inset of sidebar content.
	SidebarX = 20.0
	// SidebarTextWidth is the wrapping width available to sidebar text.
	SidebarTextWidth = SidebarWidth - 2*SidebarX

	// MainX is the left edge of the main column.
	MainX = SidebarWidth + 25.0
	// MainRightMargin is the gap between the main column and the page edge.
	MainRightMargin = 40.0
	// MainWidth is the wrapping width available to main-column text.
	MainWidth = PageWidth - MainX - MainRightMargin

	// SidebarFloor lets sidebar content run closer to the bottom edge than
	// the main column, which stops at the page margin.
	SidebarFloor = 18.0
	MainFloor    = BottomMargin
)
