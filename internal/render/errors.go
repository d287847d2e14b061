package render

import (
	"fmt"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// RenderError reports a failure in one part of the render. It always matches
// domain.ErrRender under errors.Is.
type RenderError struct {
	// Section is the layout section or stage that failed, e.g. "hotels" or "output".
	Section string
	// Field is the path of the missing field, e.g. "hotels[1].name". Empty for
	// surface failures.
	Field string
	// Err is the underlying cause, if any.
	Err error
}

func (e *RenderError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s is required", e.Section, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Section, e.Err)
	default:
		return e.Section + ": render failed"
	}
}

func (e *RenderError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrRender}
	}
	return []error{domain.ErrRender, e.Err}
}

func missing(section, field string) *RenderError {
	return &RenderError{Section: section, Field: field}
}

// checkLayoutFields rejects documents whose nested data cannot be laid out,
// before anything is drawn. Only keys that were absent or null fail; an empty
// string is drawn as empty text.
func checkLayoutFields(doc *domain.Itinerary) error {
	if doc == nil || doc.TripDetails == nil {
		return missing("summary", "tripDetails")
	}
	td := doc.TripDetails
	for _, key := range []string{"departureFrom", "departureDate", "arrivalDate", "destination"} {
		if td.Absent(key) {
			return missing("summary", "tripDetails."+key)
		}
	}
	if td.NumberOfTravelers == nil {
		return missing("summary", "tripDetails.numberOfTravelers")
	}

	for i, h := range doc.Hotels {
		for _, key := range []string{"city", "checkIn", "checkOut", "name"} {
			if h.Absent(key) {
				return missing("hotels", fmt.Sprintf("hotels[%d].%s", i, key))
			}
		}
		if h.Nights == nil {
			return missing("hotels", fmt.Sprintf("hotels[%d].nights", i))
		}
	}

	if p := doc.PaymentPlan; p != nil {
		if p.TotalAmount == nil {
			return missing("payment", "paymentPlan.totalAmount")
		}
		for i, in := range p.Installments {
			switch {
			case in.Absent("name"):
				return missing("payment", fmt.Sprintf("paymentPlan.installments[%d].name", i))
			case in.Amount == nil:
				return missing("payment", fmt.Sprintf("paymentPlan.installments[%d].amount", i))
			case in.Absent("description"):
				return missing("payment", fmt.Sprintf("paymentPlan.installments[%d].description", i))
			}
		}
	}
	return nil
}
