package render

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// Renderer turns itineraries into PDF bytes. It holds no per-render state and is
// safe for concurrent use.
type Renderer struct {
	opts Options
	log  *slog.Logger
}

// NewRenderer constructs a Renderer. A nil logger falls back to slog.Default().
func NewRenderer(opts Options, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	if opts.NewCanvas == nil {
		opts.NewCanvas = NewPDFCanvas
	}
	return &Renderer{opts: opts, log: log}
}

// Render lays out doc on a fresh canvas and returns the finalized document.
// The same doc always yields the same bytes.
func (r *Renderer) Render(ctx context.Context, doc *domain.Itinerary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Section: "render", Err: err}
	}
	start := time.Now()

	c, err := r.opts.NewCanvas(r.opts)
	if err != nil {
		return nil, &RenderError{Section: "canvas", Err: err}
	}
	if doc != nil && doc.TripDetails != nil {
		c.SetInfo(doc.TripDetails.Destination+" Itinerary", "Itinerary "+doc.Reference().String())
	}

	if _, err := r.Draw(c, doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, &RenderError{Section: "output", Err: err}
	}

	r.log.DebugContext(ctx, "itinerary rendered",
		"pages", c.PageCount(),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// Draw runs the layout pass against c and stamps the footer on every page.
// It returns the final cursor position.
func (r *Renderer) Draw(c Canvas, doc *domain.Itinerary) (LayoutState, error) {
	if err := checkLayoutFields(doc); err != nil {
		return LayoutState{}, err
	}

	c.AddPage()
	w, h := c.PageSize()
	p := &pass{
		c:    c,
		opts: r.opts,
		pal:  r.opts.Palette,
		doc:  doc,
		geom: Geometry{Width: w, Height: h, Top: topMargin, BottomReserve: bottomReserve},
	}
	p.state = LayoutState{Page: 1, Y: p.geom.Top}

	p.header()
	p.summary()
	p.days()
	p.flights()
	p.hotels()
	p.payment()
	p.visa()
	if err := c.Err(); err != nil {
		return p.state, &RenderError{Section: "layout", Err: err}
	}

	for n := 1; n <= c.PageCount(); n++ {
		c.SetPage(n)
		stampFooter(c, p.geom, r.opts)
	}
	if err := c.Err(); err != nil {
		return p.state, &RenderError{Section: "footer", Err: err}
	}
	return p.state, nil
}

// pass is the state of one layout run.
type pass struct {
	c     Canvas
	opts  Options
	pal   Palette
	doc   *domain.Itinerary
	geom  Geometry
	state LayoutState
}

// ensure reserves h millimetres, starting a new page when they do not fit.
func (p *pass) ensure(h float64) {
	next, broke := PlaceBlock(p.state, p.geom, h)
	if broke {
		p.c.AddPage()
	}
	p.state = next
}

func (p *pass) advance(dy float64) {
	p.state = p.state.Advance(dy)
}

// heading draws a two-tone section title such as "Flight Summary".
func (p *pass) heading(first, second string, secondX float64) {
	p.c.SetFontSize(14)
	p.c.SetTextColor(p.pal.Text)
	p.c.Text(20, p.state.Y, first, AlignLeft)
	p.c.SetTextColor(p.pal.Highlight)
	p.c.Text(secondX, p.state.Y, second, AlignLeft)
	p.advance(15)
}

// panel draws a full-width rounded background at the cursor.
func (p *pass) panel(fill Color, h float64) {
	p.c.SetFillColor(fill)
	p.c.RoundedRect(20, p.state.Y, p.geom.Width-40, h, 3, Fill)
}

// tableHeader draws the accent header row of a table with labels at xs.
func (p *pass) tableHeader(labels []string, xs []float64) {
	p.panel(p.pal.Accent, 10)
	p.c.SetTextColor(p.pal.Inverse)
	p.c.SetFontSize(8)
	for i, l := range labels {
		p.c.Text(xs[i], p.state.Y+6, l, AlignLeft)
	}
	p.advance(10)
}

// tableRow draws one data row; even indexes get the tinted background.
func (p *pass) tableRow(index int, cells []string, xs []float64) {
	p.ensure(estimateTableRow)
	p.c.SetFillColor(RowFill(p.pal, index))
	p.c.Rect(20, p.state.Y, p.geom.Width-40, 10, Fill)
	p.c.SetTextColor(p.pal.Text)
	p.c.SetFontSize(7)
	for i, cell := range cells {
		p.c.Text(xs[i], p.state.Y+6, cell, AlignLeft)
	}
	p.advance(10)
}

// RowFill returns the background of table row index: tinted when even, plain when odd.
func RowFill(pal Palette, index int) Color {
	if index%2 == 0 {
		return pal.RowTint
	}
	return pal.Inverse
}
