package render

import "strconv"

const baggageNote = "Note: All Flights Include Meals, Seat Choice (Excluding XL), And 20kg/25Kg Checked Baggage."

var (
	hotelColumns   = []string{"City", "Check In", "Check Out", "Nights", "Hotel Name"}
	hotelColumnX   = []float64{25, 55, 85, 115, 135}
	paymentColumns = []string{"Installment", "Amount", "Due Date"}
	paymentColumnX = []float64{25, 70, 115}
)

func (p *pass) flights() {
	if len(p.doc.Flights) == 0 {
		return
	}
	p.ensure(estimateFlights)
	p.heading("Flight ", "Summary", 42)

	for _, f := range p.doc.Flights {
		p.ensure(estimateFlightRow)
		y := p.state.Y

		p.panel(p.pal.Tint, 15)
		p.c.SetFillColor(p.pal.Badge)
		p.c.RoundedRect(20, y, 60, 15, 3, Fill)

		p.c.SetFontSize(8)
		p.c.SetTextColor(p.pal.Accent)
		p.c.Text(25, y+9, orDefault(f.Date, p.opts.Defaults.FlightDate), AlignLeft)
		p.c.SetTextColor(p.pal.Text)
		p.c.Text(95, y+9, f.Route(), AlignLeft)

		p.advance(18)
	}

	p.c.SetFontSize(7)
	p.c.SetTextColor(p.pal.Muted)
	p.c.Text(20, p.state.Y+5, baggageNote, AlignLeft)
	p.advance(20)
}

func (p *pass) hotels() {
	if len(p.doc.Hotels) == 0 {
		return
	}
	p.ensure(estimateHotels)
	p.heading("Hotel ", "Bookings", 40)
	p.tableHeader(hotelColumns, hotelColumnX)

	for i, h := range p.doc.Hotels {
		p.tableRow(i, []string{h.City, h.CheckIn, h.CheckOut, strconv.Itoa(*h.Nights), h.Name}, hotelColumnX)
	}
	p.advance(15)
}

func (p *pass) payment() {
	plan := p.doc.PaymentPlan
	if plan == nil {
		return
	}
	p.ensure(estimatePaymentPlan)
	p.heading("Payment ", "Plan", 55)

	total := currencyGlyph + " " + FormatAmount(*plan.TotalAmount) + " " +
		Travellers(p.doc.TripDetails.Travelers()) + " (Inclusive of GST)"

	p.panel(p.pal.Tint, 12)
	p.c.SetTextColor(p.pal.Text)
	p.c.SetFontSize(8)
	p.c.Text(25, p.state.Y+7, "Total Amount", AlignLeft)
	p.c.Text(110, p.state.Y+7, total, AlignLeft)
	p.advance(15)

	p.panel(p.pal.Tint, 12)
	p.c.Text(25, p.state.Y+7, "TCS", AlignLeft)
	p.c.Text(110, p.state.Y+7, plan.TCSStatus(), AlignLeft)
	p.advance(20)

	if len(plan.Installments) > 0 {
		p.tableHeader(paymentColumns, paymentColumnX)
		for i, in := range plan.Installments {
			p.tableRow(i, []string{in.Name, currencyGlyph + FormatAmount(*in.Amount), in.Description}, paymentColumnX)
		}
	}
	p.advance(15)
}

func (p *pass) visa() {
	v := p.doc.VisaDetails
	if v == nil {
		return
	}
	p.ensure(estimateVisa)
	p.heading("Visa ", "Details", 40)

	y := p.state.Y
	p.panel(p.pal.Panel, 20)
	p.c.SetTextColor(p.pal.Text)
	p.c.SetFontSize(8)
	p.c.Text(30, y+8, "Visa Type: "+v.VisaType, AlignLeft)
	p.c.Text(100, y+8, "Validity: "+v.Validity, AlignLeft)
	p.c.Text(30, y+15, "Processing Date: "+v.ProcessingDate, AlignLeft)
	p.advance(35)
}
