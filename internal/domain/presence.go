package domain

import (
	"bytes"
	"encoding/json"
)

// Keys whose absence, as opposed to an empty string, leaves the layout with
// nothing to draw. Absent and null keys are recorded at decode time.
var (
	tripDetailsKeys = []string{"departureFrom", "departureDate", "arrivalDate", "destination"}
	hotelKeys       = []string{"city", "checkIn", "checkOut", "name"}
	installmentKeys = []string{"name", "description"}
)

// absentKeys reports which of keys are missing from, or null in, the JSON
// object data. A null object counts as missing every key.
func absentKeys(data []byte, keys []string) ([]string, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return append([]string(nil), keys...), nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var out []string
	for _, k := range keys {
		if v, ok := raw[k]; !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			out = append(out, k)
		}
	}
	return out, nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// UnmarshalJSON decodes t and records which display keys were absent.
func (t *TripDetails) UnmarshalJSON(data []byte) error {
	type tripDetails TripDetails
	var v tripDetails
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	absent, err := absentKeys(data, tripDetailsKeys)
	if err != nil {
		return err
	}
	*t = TripDetails(v)
	t.absent = absent
	return nil
}

// Absent reports whether key was missing or null in the decoded JSON.
// Values built in Go never report a key as absent.
func (t TripDetails) Absent(key string) bool { return contains(t.absent, key) }

// UnmarshalJSON decodes h and records which display keys were absent.
func (h *HotelBooking) UnmarshalJSON(data []byte) error {
	type hotelBooking HotelBooking
	var v hotelBooking
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	absent, err := absentKeys(data, hotelKeys)
	if err != nil {
		return err
	}
	*h = HotelBooking(v)
	h.absent = absent
	return nil
}

// Absent reports whether key was missing or null in the decoded JSON.
func (h HotelBooking) Absent(key string) bool { return contains(h.absent, key) }

// UnmarshalJSON decodes in and records which display keys were absent.
func (in *Installment) UnmarshalJSON(data []byte) error {
	type installment Installment
	var v installment
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	absent, err := absentKeys(data, installmentKeys)
	if err != nil {
		return err
	}
	*in = Installment(v)
	in.absent = absent
	return nil
}

// Absent reports whether key was missing or null in the decoded JSON.
func (in Installment) Absent(key string) bool { return contains(in.absent, key) }
