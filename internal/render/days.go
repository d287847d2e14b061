package render

import (
	"math"
	"strconv"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

const (
	timelineX  = 60.0
	minDayRows = 70.0
)

var timelineLabels = map[domain.ActivityType]string{
	domain.Morning:   "Morning",
	domain.Afternoon: "Afternoon",
	domain.Evening:   "Evening",
}

// days draws one block per DayPlan: the day badge, the caption and the timeline.
func (p *pass) days() {
	for _, day := range p.doc.DailyItinerary {
		p.ensure(estimateDay)
		y := p.state.Y

		p.c.SetFillColor(p.pal.Accent)
		p.c.RoundedRect(20, y, 30, 60, 15, Fill)
		p.c.SetTextColor(p.pal.Inverse)
		p.c.SetFontSize(8)
		p.c.Text(35, y+20, "Day", AlignCenter)
		p.c.SetFontSize(14)
		p.c.Text(35, y+35, strconv.Itoa(day.Day), AlignCenter)

		p.c.SetTextColor(p.pal.Text)
		p.c.SetFontSize(10)
		p.c.Text(timelineX, y+15, orDefault(day.Date, p.opts.Defaults.DayDate), AlignLeft)
		p.c.SetFontSize(8)
		p.c.Text(timelineX, y+22, "Arrival In "+p.doc.TripDetails.Destination+" & City", AlignLeft)
		p.c.Text(timelineX, y+28, "Exploration", AlignLeft)

		end := p.timeline(day, y+35)
		p.advance(math.Max(minDayRows, end-y+15))
	}
}

// timeline draws the Morning, Afternoon and Evening groups that have activities
// and returns the y just below the last line drawn.
func (p *pass) timeline(day domain.DayPlan, ty float64) float64 {
	last := len(domain.TimelineOrder) - 1
	for i, kind := range domain.TimelineOrder {
		acts := day.ActivitiesOf(kind)
		if len(acts) == 0 {
			continue
		}

		p.c.SetFillColor(p.pal.Accent)
		p.c.Circle(timelineX, ty, 1.5, Fill)
		if i != last {
			p.c.SetDrawColor(p.pal.Accent)
			p.c.Line(timelineX, ty, timelineX, ty+12)
		}

		p.c.SetTextColor(p.pal.Text)
		p.c.SetFontSize(8)
		p.c.Text(timelineX+5, ty+1, timelineLabels[kind], AlignLeft)

		for _, a := range acts {
			ty += 6
			p.c.SetFontSize(7)
			p.c.Text(timelineX+8, ty, "• "+a.Name, AlignLeft)
			if a.Description != "" {
				ty += 4
				p.c.Text(timelineX+8, ty, "  "+a.Description, AlignLeft)
			}
		}
		if i != last {
			ty += 3
		}
	}
	return ty
}
