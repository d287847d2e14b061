// Package domain contains the core data types for the itinerary PDF service.
// Every type here is a request-scoped value: it is decoded from one request body,
// handed to the renderer, and discarded once the response is written.
package domain

import "fmt"

// TripDetails is the only mandatory part of an itinerary. It feeds the header
// banner and the trip summary table.
type TripDetails struct {
	CustomerName  string `json:"customerName"`
	Destination   string `json:"destination"`
	Days          int    `json:"days"`
	Nights        int    `json:"nights"`
	DepartureFrom string `json:"departureFrom"`
	DepartureDate string `json:"departureDate"`
	ArrivalDate   string `json:"arrivalDate"`

	// NumberOfTravelers is a pointer so the renderer can tell "absent" from zero.
	NumberOfTravelers *int `json:"numberOfTravelers"`

	absent []string
}

// Travelers returns the traveller count, or 0 when it was not supplied.
func (t TripDetails) Travelers() int {
	if t.NumberOfTravelers == nil {
		return 0
	}
	return *t.NumberOfTravelers
}

// Duration returns the "<days> Days <nights> Nights" banner line.
func (t TripDetails) Duration() string {
	return fmt.Sprintf("%d Days %d Nights", t.Days, t.Nights)
}
