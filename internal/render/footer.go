package render

// footerOffset is the distance of the footer's first text line from the page bottom.
const footerOffset = 40.0

// stampFooter decorates the current page with the company footer. It does not
// touch the layout cursor and is applied once per page after content is drawn.
func stampFooter(c Canvas, g Geometry, opts Options) {
	pal := opts.Palette
	b := opts.Brand
	y := g.Height - footerOffset

	c.SetDrawColor(pal.Rule)
	c.Line(20, y-5, g.Width-20, y-5)

	c.SetFontSize(8)
	c.SetTextColor(pal.Muted)
	c.Text(20, y, b.Company, AlignLeft)
	for i, line := range b.AddressLines {
		c.Text(20, y+4*float64(i+1), line, AlignLeft)
	}

	contactX := g.Width/2 - 30
	c.Text(contactX, y, b.Phone, AlignLeft)
	c.Text(contactX, y+4, b.Email, AlignLeft)

	c.SetFontSize(12)
	c.SetTextColor(pal.Accent)
	c.Text(g.Width-50, y, b.Name, AlignLeft)
	c.SetFontSize(6)
	c.SetTextColor(pal.Muted)
	c.Text(g.Width-50, y+4, b.Tagline, AlignLeft)
}
