// Package render lays out an itinerary onto a page canvas and finalizes it as PDF.
//
// Layout is a single greedy pass: a LayoutState cursor walks down the current page,
// each block is placed with PlaceBlock against a heuristic height estimate, and a
// new page is started whenever the estimate would cross into the footer band.
// Footers are stamped onto every page only after all content has been drawn.
package render

import "io"

// Color is an RGB triple in the 0–255 range.
type Color struct{ R, G, B int }

// Align controls how Text interprets its x coordinate.
type Align int

const (
	// AlignLeft draws text starting at x.
	AlignLeft Align = iota
	// AlignCenter centres text on x.
	AlignCenter
)

// Style selects how closed shapes are painted.
type Style string

const (
	Fill   Style = "F"
	Stroke Style = "D"
)

// Canvas is the page drawing surface the renderer targets. Coordinates are in
// millimetres from the top-left corner; font sizes are in points.
// Pages are numbered from 1.
type Canvas interface {
	AddPage()
	SetPage(n int)
	PageCount() int
	PageSize() (width, height float64)

	SetInfo(title, subject string)
	SetFontSize(size float64)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)

	Text(x, y float64, s string, align Align)
	Rect(x, y, w, h float64, style Style)
	RoundedRect(x, y, w, h, r float64, style Style)
	Circle(x, y, r float64, style Style)
	Line(x1, y1, x2, y2 float64)

	// Output finalizes the document. The canvas must not be drawn on afterwards.
	Output(w io.Writer) error
	// Err reports the first drawing error, if any.
	Err() error
}

// CanvasFactory builds a fresh canvas for one render.
type CanvasFactory func(opts Options) (Canvas, error)
