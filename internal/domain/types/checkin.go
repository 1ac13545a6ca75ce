package types

import "time"

// LastCheckIn is the most recent check-in shown on the home screen.
type LastCheckIn struct {
	Name string `json:"last_checkin_name"`
	Time int64  `json:"last_checkin_time"` // unix seconds
}

// CheckIn is one entry of the check-in history.
type CheckIn struct {
	ID        string    `json:"id"`
	VenueName string    `json:"venue_name"`
	At        time.Time `json:"at"`
	Guests    []string  `json:"guests,omitempty"`
}
