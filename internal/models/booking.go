package models

import (
	"fmt"
	"regexp"
	"time"
)

// HalfDayMode describes which part of the day a booking covers
type HalfDayMode string

const (
	HalfDayFull   HalfDayMode = "full"
	HalfDayFirst  HalfDayMode = "first"
	HalfDaySecond HalfDayMode = "second"
)

// emailPattern matches the corporate domain. The domain check is
// case-insensitive because the importer lowercases addresses.
var emailPattern = regexp.MustCompile(`(?i)^[^@]+@devoteam\.com$`)

// seatPattern matches a bare seat number without the "P" prefix
var seatPattern = regexp.MustCompile(`^[0-9]+$`)

// Halves returns the firstHalf/secondHalf output flags for the mode.
// A full-day booking occupies both halves.
func (h HalfDayMode) Halves() (first, second bool) {
	switch h {
	case HalfDayFirst:
		return true, false
	case HalfDaySecond:
		return false, true
	default:
		return true, true
	}
}

// Valid reports whether h is a known half-day mode
func (h HalfDayMode) Valid() bool {
	switch h {
	case HalfDayFull, HalfDayFirst, HalfDaySecond:
		return true
	}
	return false
}

// BookingRequest is the validated input for one expansion run
type BookingRequest struct {
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"` // inclusive
	Weekdays []time.Weekday `json:"weekdays"`
	HalfDay  HalfDayMode    `json:"half_day"`
	Private  bool           `json:"private"`
	Email    string         `json:"email"`
	Seat     string         `json:"seat"` // bare number, prefixed on output
}

// Validate checks the request invariants. Field-level messages for the UI
// live in the validation package; this is the last line of defense before
// expansion.
func (r BookingRequest) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("start date %s is after end date %s",
			r.Start.Format("02.01.2006"), r.End.Format("02.01.2006"))
	}
	if len(r.Weekdays) == 0 {
		return fmt.Errorf("at least one weekday must be selected")
	}
	if !r.HalfDay.Valid() {
		return fmt.Errorf("invalid half-day mode: %s", r.HalfDay)
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("email %q is not a @devoteam.com address", r.Email)
	}
	if !seatPattern.MatchString(r.Seat) {
		return fmt.Errorf("seat %q must be a bare number (e.g. 24, not P24)", r.Seat)
	}
	return nil
}

// WantsWeekday reports whether the given weekday is in the selection
func (r BookingRequest) WantsWeekday(wd time.Weekday) bool {
	for _, w := range r.Weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

// ValidEmail reports whether the address belongs to the corporate domain
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidSeat reports whether the seat is a bare number
func ValidSeat(seat string) bool {
	return seatPattern.MatchString(seat)
}

// BookingRow is one output record. Rows are derived from a request and
// never mutated after creation.
type BookingRow struct {
	ID          string    `json:"id"`
	SeatID      string    `json:"seat_id"`
	Date        time.Time `json:"date"`
	TimestampMS int64     `json:"timestamp_ms"` // local midnight, milliseconds
	FirstHalf   bool      `json:"first_half"`
	SecondHalf  bool      `json:"second_half"`
	Email       string    `json:"email"`
	Private     bool      `json:"private"`
}
