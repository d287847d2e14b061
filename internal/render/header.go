package render

import (
	"math"
	"strconv"
)

const bannerHeight = 40

// travelGlyphs are drawn in a row along the bottom of the banner.
var travelGlyphs = []string{"✈", "🏨", "⏰", "🚗", "📅"}

// header draws the wordmark, the gradient banner and its greeting lines.
func (p *pass) header() {
	td := p.doc.TripDetails
	mid := p.geom.Width / 2

	p.c.SetFontSize(20)
	p.c.SetTextColor(p.pal.Accent)
	p.c.Text(mid, p.state.Y, p.opts.Brand.Name, AlignCenter)
	p.advance(6)
	p.c.SetFontSize(8)
	p.c.SetTextColor(p.pal.Muted)
	p.c.Text(mid, p.state.Y, p.opts.Brand.Tagline, AlignCenter)
	p.advance(20)

	y := p.state.Y
	for i := 0; i < bannerHeight; i++ {
		p.c.SetFillColor(GradientStrip(p.pal.GradientTop, p.pal.Accent, float64(i)/bannerHeight))
		p.c.Rect(40, y+float64(i), p.geom.Width-80, 1, Fill)
	}

	p.c.SetTextColor(p.pal.Inverse)
	p.c.SetFontSize(16)
	p.c.Text(mid, y+12, "Hi, "+td.CustomerName+"!", AlignCenter)
	p.c.SetFontSize(14)
	p.c.Text(mid, y+22, td.Destination+" Itinerary", AlignCenter)
	p.c.SetFontSize(10)
	p.c.Text(mid, y+30, td.Duration(), AlignCenter)

	const spacing = 15.0
	p.c.SetFontSize(12)
	startX := mid - float64(len(travelGlyphs)-1)*spacing/2
	for i, g := range travelGlyphs {
		p.c.Text(startX+float64(i)*spacing, y+37, g, AlignCenter)
	}

	p.advance(bannerHeight + 15)
}

// GradientStrip interpolates between from and to at ratio in [0,1], rounding
// each channel half up.
func GradientStrip(from, to Color, ratio float64) Color {
	lerp := func(a, b int) int {
		return int(math.Floor(float64(a) + float64(b-a)*ratio + 0.5))
	}
	return Color{lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B)}
}

// summary draws the five-column trip details panel.
func (p *pass) summary() {
	td := p.doc.TripDetails
	y := p.state.Y
	width := p.geom.Width - 40

	p.c.SetFillColor(p.pal.Panel)
	p.c.RoundedRect(20, y, width, 20, 3, Fill)
	p.c.SetDrawColor(p.pal.Rule)
	p.c.RoundedRect(20, y, width, 20, 3, Stroke)

	col := width / 5
	labels := []string{"Departure From", "Departure", "Arrival", "Destination", "No. Of Travellers"}
	values := []string{
		td.DepartureFrom,
		td.DepartureDate,
		td.ArrivalDate,
		td.Destination,
		strconv.Itoa(td.Travelers()),
	}

	p.c.SetTextColor(p.pal.Text)
	p.c.SetFontSize(8)
	for i, l := range labels {
		p.c.Text(25+col*float64(i), y+6, l, AlignLeft)
	}
	p.c.SetFontSize(9)
	for i, v := range values {
		p.c.Text(25+col*float64(i), y+14, v, AlignLeft)
	}

	p.advance(35)
}
