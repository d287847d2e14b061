package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigovia/itinerary-pdf/internal/domain"
	"github.com/vigovia/itinerary-pdf/internal/render"
)

// ---- fixtures --------------------------------------------------------------

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// baliItinerary returns the minimal document: trip details and nothing else.
func baliItinerary() *domain.Itinerary {
	return &domain.Itinerary{
		TripDetails: &domain.TripDetails{
			CustomerName:      "Asha",
			Destination:       "Bali",
			Days:              5,
			Nights:            4,
			DepartureFrom:     "Delhi",
			DepartureDate:     "2024-01-10",
			ArrivalDate:       "2024-01-11",
			NumberOfTravelers: intPtr(2),
		},
	}
}

func fullItinerary() *domain.Itinerary {
	doc := baliItinerary()
	doc.DailyItinerary = []domain.DayPlan{
		{Day: 1, Date: "10th January", Activities: []domain.Activity{
			{Name: "Airport pickup", Type: domain.Morning},
			{Name: "Ubud market", Description: "Local crafts", Type: domain.Afternoon},
			{Name: "Kecak dance", Type: domain.Evening},
		}},
	}
	doc.Flights = []domain.FlightLeg{{Date: "Wed 10 Jan'24", Airline: "AirX", From: "DEL", To: "DPS"}}
	doc.Hotels = []domain.HotelBooking{
		{City: "Ubud", CheckIn: "10/01", CheckOut: "12/01", Nights: intPtr(2), Name: "Jungle Lodge"},
		{City: "Seminyak", CheckIn: "12/01", CheckOut: "14/01", Nights: intPtr(2), Name: "Sea Breeze"},
		{City: "Uluwatu", CheckIn: "14/01", CheckOut: "15/01", Nights: intPtr(1), Name: "Cliff House"},
	}
	doc.PaymentPlan = &domain.PaymentPlan{
		TotalAmount:  floatPtr(150000),
		TCSCollected: true,
		Installments: []domain.Installment{
			{Name: "Installment 1", Amount: floatPtr(50000), Description: "Initial Payment"},
			{Name: "Installment 2", Amount: floatPtr(100000), Description: "Post Visa Approval"},
		},
	}
	doc.VisaDetails = &domain.VisaDetails{VisaType: "Tourist", Validity: "30 Days", ProcessingDate: "01/01/2024"}
	return doc
}

// decodeItinerary decodes a request body the way the HTTP handler does.
func decodeItinerary(t *testing.T, body string) *domain.Itinerary {
	t.Helper()
	var doc *domain.Itinerary
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	return doc
}

// draw lays doc out on a fresh Recorder with the default options.
func draw(t *testing.T, doc *domain.Itinerary) *render.Recorder {
	t.Helper()
	rec := render.NewRecorder()
	_, err := render.NewRenderer(render.DefaultOptions(), nil).Draw(rec, doc)
	require.NoError(t, err)
	return rec
}

// rowFills returns the fills of full-width table rows on page n, in order.
func rowFills(rec *render.Recorder, n int) []render.Color {
	var out []render.Color
	for _, op := range rec.Pages[n-1] {
		if op.Kind == render.OpRect && op.H == 10 && op.W == 170 {
			out = append(out, op.Fill)
		}
	}
	return out
}

// ---- sections --------------------------------------------------------------

// TestDraw_tripDetailsOnly verifies the header and summary are drawn and every
// optional section is absent when only trip details are supplied.
func TestDraw_tripDetailsOnly(t *testing.T) {
	rec := draw(t, baliItinerary())
	text := rec.AllText()

	require.Equal(t, 1, rec.PageCount())
	assert.Contains(t, text, "Hi, Asha!")
	assert.Contains(t, text, "Bali Itinerary")
	assert.Contains(t, text, "5 Days 4 Nights")
	assert.Contains(t, text, "Departure From")
	assert.Contains(t, text, "No. Of Travellers")
	assert.Contains(t, text, "Delhi")

	for _, absent := range []string{"Day", "Summary", "Bookings", "Plan", "Details", "Morning"} {
		assert.NotContains(t, rec.Texts(1), absent)
	}
}

func TestDraw_headerGlyphs(t *testing.T) {
	texts := draw(t, baliItinerary()).Texts(1)

	for _, g := range []string{"✈", "🏨", "⏰", "🚗", "📅"} {
		assert.Contains(t, texts, g)
	}
}

// TestDraw_gradientBanner verifies the banner is forty one-millimetre strips
// running from the top colour to the accent.
func TestDraw_gradientBanner(t *testing.T) {
	rec := draw(t, baliItinerary())
	pal := render.DefaultOptions().Palette

	var strips []render.Op
	for _, op := range rec.Pages[0] {
		if op.Kind == render.OpRect && op.H == 1 {
			strips = append(strips, op)
		}
	}
	require.Len(t, strips, 40)
	assert.Equal(t, pal.GradientTop, strips[0].Fill)
	assert.Equal(t, strips[0].Y+39, strips[39].Y)
}

// TestDraw_dayTimelineGroups verifies only non-empty groups are drawn, in the
// fixed Morning/Afternoon/Evening order, with descriptions indented.
func TestDraw_dayTimelineGroups(t *testing.T) {
	doc := baliItinerary()
	doc.DailyItinerary = []domain.DayPlan{{Day: 3, Activities: []domain.Activity{
		{Name: "Sunset cruise", Type: domain.Evening},
		{Name: "Rice terraces", Description: "Tegallalang", Type: domain.Morning},
	}}}

	texts := draw(t, doc).Texts(1)
	joined := strings.Join(texts, "|")

	assert.Contains(t, texts, "Day")
	assert.Contains(t, texts, "3")
	assert.Contains(t, texts, "27th November", "empty date should use the placeholder")
	assert.Contains(t, texts, "Arrival In Bali & City")
	assert.NotContains(t, texts, "Afternoon")
	assert.Contains(t, joined, "Morning|• Rice terraces|  Tegallalang|Evening|• Sunset cruise")
}

// TestDraw_flightPlaceholderDate verifies the route text and the placeholder
// date when a flight has no date.
func TestDraw_flightPlaceholderDate(t *testing.T) {
	doc := baliItinerary()
	doc.Flights = []domain.FlightLeg{{Airline: "AirX", From: "DEL", To: "DPS"}}

	texts := draw(t, doc).Texts(1)

	assert.Contains(t, texts, "AirX From DEL To DPS")
	assert.Contains(t, texts, "Thu 10 Jan'24")
	assert.Contains(t, texts, "Flight ")
	assert.Contains(t, texts, "Summary")
}

// TestDraw_paymentPanels verifies grouped totals and the TCS status label.
func TestDraw_paymentPanels(t *testing.T) {
	doc := baliItinerary()
	doc.PaymentPlan = &domain.PaymentPlan{TotalAmount: floatPtr(150000), TCSCollected: false}

	texts := draw(t, doc).Texts(1)

	assert.Contains(t, texts, "₹ 150,000 For 2 Travellers (Inclusive of GST)")
	assert.Contains(t, texts, "Not Collected")
	assert.NotContains(t, texts, "Installment", "no installment table without installments")
}

func TestDraw_installmentAmounts(t *testing.T) {
	texts := draw(t, fullItinerary()).AllText()

	assert.Contains(t, texts, "₹50,000")
	assert.Contains(t, texts, "₹100,000")
	assert.Contains(t, texts, "Post Visa Approval")
	assert.Contains(t, texts, "Collected")
}

func TestDraw_visaPanel(t *testing.T) {
	text := draw(t, fullItinerary()).AllText()

	assert.Contains(t, text, "Visa Type: Tourist")
	assert.Contains(t, text, "Validity: 30 Days")
	assert.Contains(t, text, "Processing Date: 01/01/2024")
}

// TestDraw_alternatingRows verifies hotel and installment rows are tinted at
// even indexes and plain at odd ones, starting with the tint.
func TestDraw_alternatingRows(t *testing.T) {
	doc := baliItinerary()
	doc.Hotels = fullItinerary().Hotels
	pal := render.DefaultOptions().Palette

	fills := rowFills(draw(t, doc), 1)
	assert.Equal(t, []render.Color{pal.RowTint, pal.Inverse, pal.RowTint}, fills)

	doc = baliItinerary()
	doc.PaymentPlan = fullItinerary().PaymentPlan
	fills = rowFills(draw(t, doc), 1)
	assert.Equal(t, []render.Color{pal.RowTint, pal.Inverse}, fills)
}

// ---- pagination ------------------------------------------------------------

// TestDraw_longItineraryPaginates verifies that a schedule taller than one page
// spills onto further pages and that every page carries exactly one footer.
func TestDraw_longItineraryPaginates(t *testing.T) {
	doc := fullItinerary()
	for d := 2; d <= 12; d++ {
		doc.DailyItinerary = append(doc.DailyItinerary, domain.DayPlan{
			Day: d,
			Activities: []domain.Activity{
				{Name: fmt.Sprintf("Activity %d", d), Type: domain.Morning},
			},
		})
	}

	rec := draw(t, doc)

	require.Greater(t, rec.PageCount(), 1)
	for n := 1; n <= rec.PageCount(); n++ {
		texts := rec.Texts(n)
		count := 0
		for _, s := range texts {
			if s == "Vigovia Tech Pvt. Ltd" {
				count++
			}
		}
		assert.Equal(t, 1, count, "page %d footer count", n)
		assert.Contains(t, texts, "Email ID: Contact@Vigovia.Com", "page %d", n)
		assert.Equal(t, "PLAN.PACK.GO", texts[len(texts)-1], "footer is drawn last on page %d", n)
	}
}

// TestDraw_finalStateMatchesPageCount verifies the returned cursor tracks the
// canvas: it ends on the last page, above the footer band or just past it.
func TestDraw_finalStateMatchesPageCount(t *testing.T) {
	doc := fullItinerary()
	rec := render.NewRecorder()

	state, err := render.NewRenderer(render.DefaultOptions(), nil).Draw(rec, doc)

	require.NoError(t, err)
	assert.Equal(t, rec.PageCount(), state.Page)
	assert.Greater(t, state.Y, 20.0)
}

// ---- errors ----------------------------------------------------------------

// TestDraw_missingHotelField verifies a hotel key absent from the request body
// fails with a RenderError naming the field, before anything is drawn.
func TestDraw_missingHotelField(t *testing.T) {
	doc := decodeItinerary(t, `{
		"tripDetails": {"destination": "Bali", "departureFrom": "Delhi", "departureDate": "a",
			"arrivalDate": "b", "numberOfTravelers": 2},
		"hotels": [
			{"city": "Ubud", "checkIn": "a", "checkOut": "b", "nights": 1, "name": "Lodge"},
			{"city": "Kuta", "checkIn": "a", "checkOut": "b", "nights": 1}
		]
	}`)
	rec := render.NewRecorder()

	_, err := render.NewRenderer(render.DefaultOptions(), nil).Draw(rec, doc)

	var rerr *render.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.Equal(t, "hotels[1].name", rerr.Field)
	assert.Equal(t, 0, rec.PageCount())
}

// TestDraw_nullFieldsAreMissing verifies null counts as absent, in trip details
// and installments alike.
func TestDraw_nullFieldsAreMissing(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"trip", `{"tripDetails": {"destination": "Bali", "departureFrom": null, "departureDate": "a",
			"arrivalDate": "b", "numberOfTravelers": 2}}`, "tripDetails.departureFrom"},
		{"installment", `{"tripDetails": {"destination": "Bali", "departureFrom": "Delhi", "departureDate": "a",
			"arrivalDate": "b", "numberOfTravelers": 2},
			"paymentPlan": {"totalAmount": 10, "installments": [{"name": "First", "amount": 10}]}}`,
			"paymentPlan.installments[0].description"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := render.NewRenderer(render.DefaultOptions(), nil).Draw(render.NewRecorder(), decodeItinerary(t, tc.body))

			var rerr *render.RenderError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tc.field, rerr.Field)
		})
	}
}

// TestDraw_emptyStringsRender verifies keys sent as "" are laid out as empty
// text rather than rejected.
func TestDraw_emptyStringsRender(t *testing.T) {
	doc := decodeItinerary(t, `{
		"tripDetails": {"customerName": "Asha", "destination": "Bali", "departureFrom": "",
			"departureDate": "", "arrivalDate": "", "numberOfTravelers": 2},
		"hotels": [{"city": "", "checkIn": "", "checkOut": "", "nights": 1, "name": ""}],
		"paymentPlan": {"totalAmount": 1000,
			"installments": [{"name": "", "amount": 1000, "description": ""}]}
	}`)

	rec := draw(t, doc)

	var rows int
	for n := 1; n <= rec.PageCount(); n++ {
		rows += len(rowFills(rec, n))
	}
	assert.Contains(t, rec.AllText(), "Hi, Asha!")
	assert.Equal(t, 2, rows, "one hotel row and one installment row")
}

func TestDraw_missingAmounts(t *testing.T) {
	tests := []struct {
		name  string
		plan  *domain.PaymentPlan
		field string
	}{
		{"total", &domain.PaymentPlan{}, "paymentPlan.totalAmount"},
		{"installment", &domain.PaymentPlan{
			TotalAmount:  floatPtr(1),
			Installments: []domain.Installment{{Name: "First", Description: "Now"}},
		}, "paymentPlan.installments[0].amount"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := baliItinerary()
			doc.PaymentPlan = tc.plan

			_, err := render.NewRenderer(render.DefaultOptions(), nil).Draw(render.NewRecorder(), doc)

			var rerr *render.RenderError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tc.field, rerr.Field)
			assert.Contains(t, err.Error(), tc.field+" is required")
		})
	}
}

func TestDraw_missingTravellerCount(t *testing.T) {
	doc := baliItinerary()
	doc.TripDetails.NumberOfTravelers = nil

	_, err := render.NewRenderer(render.DefaultOptions(), nil).Draw(render.NewRecorder(), doc)

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.Contains(t, err.Error(), "numberOfTravelers")
}

// TestRender_canvasFailure verifies a surface that cannot be built surfaces as
// a RenderError wrapping the cause.
func TestRender_canvasFailure(t *testing.T) {
	cause := errors.New("no fonts")
	opts := render.DefaultOptions()
	opts.NewCanvas = func(render.Options) (render.Canvas, error) { return nil, cause }

	_, err := render.NewRenderer(opts, nil).Render(context.Background(), baliItinerary())

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "canvas: no fonts")
}

func TestRender_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.NewRenderer(render.DefaultOptions(), nil).Render(ctx, baliItinerary())

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.ErrorIs(t, err, context.Canceled)
}

// ---- determinism -----------------------------------------------------------

// TestRender_recorderDeterministic verifies two layouts of the same document
// record the same operations and carry the document reference as subject.
func TestRender_recorderDeterministic(t *testing.T) {
	doc := fullItinerary()
	render1, render2 := render.NewRecorder(), render.NewRecorder()

	opts := render.DefaultOptions()
	opts.NewCanvas = render.RecorderFactory(render1)
	out1, err := render.NewRenderer(opts, nil).Render(context.Background(), doc)
	require.NoError(t, err)

	opts.NewCanvas = render.RecorderFactory(render2)
	out2, err := render.NewRenderer(opts, nil).Render(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(out1, out2))
	assert.Equal(t, render1.Pages, render2.Pages)
	assert.Equal(t, "Bali Itinerary", render1.Title)
	assert.Equal(t, "Itinerary "+doc.Reference().String(), render1.Subject)
}
