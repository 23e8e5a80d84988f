package model

import (
	"fmt"
	"github.com/dustin/go-humanize"
	apperrors "github.com/umalmyha/lunchly/internal/errors"
	"strconv"
	"strings"
	"time"
)

const numGuestsTarget = "numGuests"

// startAtLayouts are accepted layouts for reservation start, html datetime-local goes first
var startAtLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Reservation is a single booking made by customer
type Reservation struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	StartAt    time.Time `json:"startAt"`
	NumGuests  int       `json:"numGuests"`
	Notes      string    `json:"notes"`
}

// NewReservation builds transient reservation, guest count is validated on construction
func NewReservation(customerID int64, startAt time.Time, numGuests int, notes string) (*Reservation, error) {
	r := &Reservation{
		CustomerID: customerID,
		StartAt:    startAt,
		Notes:      notes,
	}

	if err := r.SetNumGuests(numGuests); err != nil {
		return nil, err
	}
	return r, nil
}

// SetNumGuests assigns guest count, previous value is kept if n is not positive
func (r *Reservation) SetNumGuests(n int) error {
	if n <= 0 {
		return apperrors.NewValidationErr(numGuestsTarget, "Number of guests on reservation must be a positive number.")
	}
	r.NumGuests = n
	return nil
}

// FormattedStartAt renders start in human-readable form, e.g. January 2nd 2006, 3:04 pm
func (r *Reservation) FormattedStartAt() string {
	t := r.StartAt
	return fmt.Sprintf("%s %s %d, %s", t.Month(), humanize.Ordinal(t.Day()), t.Year(), t.Format("3:04 pm"))
}

// IsPersisted reports whether reservation has store-assigned identity
func (r *Reservation) IsPersisted() bool {
	return r.ID != 0
}

// ParseNumGuests converts submitted guest count, non-integer input is a validation error
func ParseNumGuests(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.NewValidationErr(numGuestsTarget, "Number of guests on reservation must be a positive number.")
	}
	return n, nil
}

// ParseStartAt converts submitted start in local time zone
func ParseStartAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationErr("startAt", fmt.Sprintf("Reservation start %q is not a valid date and time.", raw))
}
