package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ActivityType places an activity into one of the three timeline groups of a day.
type ActivityType string

const (
	Morning   ActivityType = "morning"
	Afternoon ActivityType = "afternoon"
	Evening   ActivityType = "evening"
)

// TimelineOrder is the fixed order in which a day's activity groups are drawn.
var TimelineOrder = []ActivityType{Morning, Afternoon, Evening}

// Itinerary is the root aggregate accepted by POST /api/generate-pdf.
// Only TripDetails is required; every other section is drawn only when present.
type Itinerary struct {
	TripDetails    *TripDetails   `json:"tripDetails"`
	DailyItinerary []DayPlan      `json:"dailyItinerary,omitempty"`
	Flights        []FlightLeg    `json:"flights,omitempty"`
	Hotels         []HotelBooking `json:"hotels,omitempty"`
	PaymentPlan    *PaymentPlan   `json:"paymentPlan,omitempty"`
	VisaDetails    *VisaDetails   `json:"visaDetails,omitempty"`
}

// DayPlan is one day of the schedule. Date is a display string and may be empty.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

// ActivitiesOf returns the activities of the given type in document order.
func (d DayPlan) ActivitiesOf(kind ActivityType) []Activity {
	var out []Activity
	for _, a := range d.Activities {
		if a.Type == kind {
			out = append(out, a)
		}
	}
	return out
}

// Activity is a single timeline entry.
type Activity struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        ActivityType `json:"type"`
}

// FlightLeg is one row of the flight summary.
type FlightLeg struct {
	Date    string `json:"date,omitempty"`
	Airline string `json:"airline"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Route returns "<airline> From <from> To <to>".
func (f FlightLeg) Route() string {
	return fmt.Sprintf("%s From %s To %s", f.Airline, f.From, f.To)
}

// HotelBooking is one row of the hotel table.
type HotelBooking struct {
	City     string `json:"city"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   *int   `json:"nights"`
	Name     string `json:"name"`

	absent []string
}

// PaymentPlan holds the price breakdown. Amounts are in rupees.
type PaymentPlan struct {
	TotalAmount  *float64      `json:"totalAmount"`
	TCSCollected bool          `json:"tcsCollected"`
	Installments []Installment `json:"installments,omitempty"`
}

// TCSStatus returns the label drawn in the TCS panel.
func (p PaymentPlan) TCSStatus() string {
	if p.TCSCollected {
		return "Collected"
	}
	return "Not Collected"
}

// Installment is one row of the installment table. Description carries the due date.
type Installment struct {
	Name        string   `json:"name"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`

	absent []string
}

// VisaDetails is drawn as a single panel.
type VisaDetails struct {
	VisaType       string `json:"visaType"`
	Validity       string `json:"validity"`
	ProcessingDate string `json:"processingDate"`
}

// Validate checks the only field the delivery shell requires before rendering.
// Deeper problems are left to the renderer.
func (i *Itinerary) Validate() error {
	if i == nil || i.TripDetails == nil {
		return fmt.Errorf("%w: Trip details are required", ErrValidation)
	}
	return nil
}

// Filename returns the download name, "<destination>_Itinerary.pdf".
func (i *Itinerary) Filename() string {
	if i == nil || i.TripDetails == nil || i.TripDetails.Destination == "" {
		return "Itinerary.pdf"
	}
	return i.TripDetails.Destination + "_Itinerary.pdf"
}

// referenceSpace namespaces itinerary references so they never collide with
// other name-based UUIDs derived from the same bytes.
var referenceSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://vigovia.com/itineraries"))

// Reference returns a name-based UUID of the document's JSON encoding.
// Identical documents always produce the same reference.
func (i *Itinerary) Reference() uuid.UUID {
	b, err := json.Marshal(i)
	if err != nil {
		return uuid.Nil
	}
	return uuid.NewSHA1(referenceSpace, b)
}

// GeneratedPDF is the result of a successful generation.
type GeneratedPDF struct {
	Content   []byte
	Filename  string
	Reference uuid.UUID
}
