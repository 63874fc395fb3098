// Package booking expands a validated request into concrete booking rows,
// one per calendar date in the range whose weekday is selected.
package booking

import (
	"errors"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/vslugin/long-term-booking/internal/models"
	"github.com/vslugin/long-term-booking/internal/utils"
)

// ErrNoMatchingDates is returned when the weekday filter leaves no dates
// in the range. The writer must never be invoked in that case, so an
// empty (header-only) workbook cannot be produced.
var ErrNoMatchingDates = errors.New("no dates in the range match the selected weekdays")

// Expander turns booking requests into row sequences
type Expander struct {
	seatPrefix string
	loc        *time.Location
}

// New creates an Expander. The seat prefix is prepended to the raw seat
// number in the seatID column; loc determines what "midnight" means for
// the timestamp column. A nil loc falls back to the system timezone.
func New(seatPrefix string, loc *time.Location) *Expander {
	if loc == nil {
		loc = time.Local
	}
	return &Expander{seatPrefix: seatPrefix, loc: loc}
}

// Rows returns a lazy sequence of booking rows in ascending date order.
// The sequence is finite and restartable: each range over it walks the
// date range again from the start. Row IDs are freshly generated per walk.
func (e *Expander) Rows(req models.BookingRequest) iter.Seq[models.BookingRow] {
	first, second := req.HalfDay.Halves()
	seatID := e.seatPrefix + req.Seat

	return func(yield func(models.BookingRow) bool) {
		for d := req.Start; !d.After(req.End); d = d.AddDate(0, 0, 1) {
			if !req.WantsWeekday(d.Weekday()) {
				continue
			}
			row := models.BookingRow{
				ID:          uuid.New().String(),
				SeatID:      seatID,
				Date:        d,
				TimestampMS: utils.MidnightMillis(d, e.loc),
				FirstHalf:   first,
				SecondHalf:  second,
				Email:       req.Email,
				Private:     req.Private,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Expand collects all rows for the request. It validates the request
// first and returns ErrNoMatchingDates when the filter yields nothing.
func (e *Expander) Expand(req models.BookingRequest) ([]models.BookingRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var rows []models.BookingRow
	for row := range e.Rows(req) {
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoMatchingDates
	}
	return rows, nil
}

// Count returns the number of rows the request would produce without
// materializing them.
func (e *Expander) Count(req models.BookingRequest) int {
	n := 0
	for d := req.Start; !d.After(req.End); d = d.AddDate(0, 0, 1) {
		if req.WantsWeekday(d.Weekday()) {
			n++
		}
	}
	return n
}
