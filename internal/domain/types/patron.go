package types

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the on-disk layout of dates of birth and vaccination dates.
const DateLayout = "2006-01-02"

// Patron is a person that can be checked in and shown a certificate.
type Patron struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DOB        string `json:"dob"`
	VaxxedDate string `json:"vaxxed_date"`
}

// Guest is a frequent guest saved by the patron.
type Guest = Patron

// Settings is the patron's persisted profile and kiosk preferences.
type Settings struct {
	Patron

	Region     Region `json:"state"`
	UseScanner bool   `json:"use_scanner"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// Skin is the per-region wording and accent colour.
type Skin struct {
	Title         string
	ThankYouFolks string // empty when no thank-you message is shown
	Accent        string // #rrggbb
}

// ErrInvalidDate is returned when a date is not in DateLayout form.
var ErrInvalidDate = errors.New("invalid date")

// ValidateDate accepts "" or a date in DateLayout form.
func ValidateDate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidDate, v)
	}
	return nil
}
