package layout

// Region selects which of the two independently flowing columns a cursor
// operation applies to.
type Region int

const (
	// Sidebar is the persistent left column.
	Sidebar Region = iota
	// Main is the flowing right column.
	Main
)

func regionFloor(r Region) float64 {
	if r == Sidebar {
		return SidebarFloor
	}
	return MainFloor
}

// Cursor tracks the next writable baseline of both regions, measured from the
// page bottom. It never draws; it only gates space and tracks position. A
// page break resets both regions to the top margin, independently of how far
// either had advanced.
type Cursor struct {
	y       [2]float64
	raise   [2]float64
	onBreak func()
}

// NewCursor returns a cursor positioned at the top margin of a fresh page.
// onBreak is invoked when EnsureSpace detects overflow; it must make a new
// page current and call Reset.
func NewCursor(onBreak func()) *Cursor {
	c := &Cursor{onBreak: onBreak}
	c.Reset()
	return c
}

// SetBreakFunc replaces the page-break callback. Used by the page flow
// manager to wire itself in after construction.
func (c *Cursor) SetBreakFunc(onBreak func()) {
	c.onBreak = onBreak
}

// Reset moves both regions back to the top margin of the current page.
func (c *Cursor) Reset() {
	c.y[Sidebar] = PageHeight - TopMargin
	c.y[Main] = PageHeight - TopMargin
}

// Y returns the next writable baseline of the region.
func (c *Cursor) Y(r Region) float64 {
	return c.y[r]
}

// ReserveFloor raises the region's floor by h so that text never flows into a
// slot claimed near the page bottom. The reservation survives page breaks;
// the slot must stay free on whichever page the region finishes on.
func (c *Cursor) ReserveFloor(r Region, h float64) {
	c.raise[r] += h
}

// Floor returns the region's effective floor including reservations.
func (c *Cursor) Floor(r Region) float64 {
	return regionFloor(r) + c.raise[r]
}

// EnsureSpace gates a draw of the given height: when the region cannot fit it
// above its floor, the page-break callback fires before the caller draws.
// Reports whether a break occurred.
func (c *Cursor) EnsureSpace(r Region, required float64) bool {
	if c.y[r]-required >= c.Floor(r) {
		return false
	}
	if c.onBreak != nil {
		c.onBreak()
	}
	return true
}

// Fits reports whether the region still has the given height available on the
// current page, without triggering a break.
func (c *Cursor) Fits(r Region, required float64) bool {
	return c.y[r]-required >= c.Floor(r)
}

// Advance moves the region's baseline down by h after a draw.
func (c *Cursor) Advance(r Region, h float64) {
	c.y[r] -= h
}
