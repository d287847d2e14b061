package render

// A4 portrait in millimetres.
const (
	pageWidthA4  = 210.0
	pageHeightA4 = 297.0

	topMargin = 20.0
	// bottomReserve keeps the footer band clear of content.
	bottomReserve = 50.0
)

// Block height estimates used for page-break checks. They are approximations:
// a day with many activities can run past its estimate into the footer band.
const (
	estimateDay         = 80.0
	estimateFlights     = 60.0
	estimateFlightRow   = 20.0
	estimateHotels      = 80.0
	estimateTableRow    = 12.0
	estimatePaymentPlan = 100.0
	estimateVisa        = 40.0
)

// Geometry describes the fixed page frame a layout runs in.
type Geometry struct {
	Width         float64
	Height        float64
	Top           float64
	BottomReserve float64
}

// Limit is the lowest y a block may reach before a page break is forced.
func (g Geometry) Limit() float64 {
	return g.Height - g.BottomReserve
}

// LayoutState is the layout cursor: the current page and the next free y on it.
type LayoutState struct {
	Page int
	Y    float64
}

// Advance moves the cursor down by dy on the same page.
func (s LayoutState) Advance(dy float64) LayoutState {
	s.Y += dy
	return s
}

// PlaceBlock decides where a block of estimated height h starts. If it would cross
// the footer band the cursor moves to the top of the next page and broke is true.
// Content already placed is never reflowed.
func PlaceBlock(s LayoutState, g Geometry, h float64) (next LayoutState, broke bool) {
	if s.Y+h > g.Limit() {
		return LayoutState{Page: s.Page + 1, Y: g.Top}, true
	}
	return s, false
}
