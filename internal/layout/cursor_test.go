package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_StartsAtTopMargin(t *testing.T) {
	c := NewCursor(nil)
	assert.Equal(t, PageHeight-TopMargin, c.Y(Sidebar))
	assert.Equal(t, PageHeight-TopMargin, c.Y(Main))
}

func TestCursor_AdvanceIsMonotonic(t *testing.T) {
	c := NewCursor(nil)
	before := c.Y(Main)
	c.Advance(Main, 12)
	c.Advance(Main, 30)
	assert.Equal(t, before-42, c.Y(Main))
	// The other region is untouched.
	assert.Equal(t, before, c.Y(Sidebar))
}

func TestCursor_EnsureSpaceNoBreakWhenFits(t *testing.T) {
	broke := false
	c := NewCursor(func() { broke = true })
	assert.False(t, c.EnsureSpace(Main, 100))
	assert.False(t, broke)
}

func TestCursor_EnsureSpaceFiresBreakOnOverflow(t *testing.T) {
	var c *Cursor
	broke := false
	c = NewCursor(func() {
		broke = true
		c.Reset()
	})
	c.Advance(Main, PageHeight-TopMargin-MainFloor-10)

	assert.True(t, c.EnsureSpace(Main, 20))
	assert.True(t, broke)
	// The break reset both regions to the top margin.
	assert.Equal(t, PageHeight-TopMargin, c.Y(Main))
	assert.Equal(t, PageHeight-TopMargin, c.Y(Sidebar))
}

func TestCursor_SidebarRunsCloserToBottom(t *testing.T) {
	c := NewCursor(func() { t.Fatal("unexpected page break") })
	drop := PageHeight - TopMargin - MainFloor - 5
	c.Advance(Main, drop)
	c.Advance(Sidebar, drop)

	// 5 points above the main floor: only the sidebar still fits 15 more.
	assert.False(t, c.Fits(Main, 15))
	assert.True(t, c.Fits(Sidebar, 15))
}

func TestCursor_ReserveFloorRaisesTheBreakPoint(t *testing.T) {
	var c *Cursor
	broke := false
	c = NewCursor(func() {
		broke = true
		c.Reset()
	})
	c.ReserveFloor(Sidebar, 78)
	assert.Equal(t, SidebarFloor+78, c.Floor(Sidebar))
	// The other region keeps its unreserved floor.
	assert.Equal(t, MainFloor, c.Floor(Main))

	// 10 points above the raised floor: a 20-point draw must break even
	// though the unreserved floor would have fit it.
	c.Advance(Sidebar, PageHeight-TopMargin-c.Floor(Sidebar)-10)
	assert.False(t, c.Fits(Sidebar, 20))
	assert.True(t, c.EnsureSpace(Sidebar, 20))
	assert.True(t, broke)

	// The reservation survives the page break.
	assert.Equal(t, SidebarFloor+78, c.Floor(Sidebar))
}

func TestCursor_FitsDoesNotBreak(t *testing.T) {
	c := NewCursor(func() { t.Fatal("Fits must never trigger a break") })
	c.Advance(Main, PageHeight)
	assert.False(t, c.Fits(Main, 1))
}
