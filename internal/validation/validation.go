package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/vslugin/long-term-booking/internal/models"
)

// Field identifies the form field a validation error belongs to
type Field string

const (
	FieldStartDate Field = "start_date"
	FieldEndDate   Field = "end_date"
	FieldWeekdays  Field = "weekdays"
	FieldHalfDay   Field = "half_day"
	FieldEmail     Field = "email"
	FieldSeat      Field = "seat"
)

// FieldError is a validation failure tied to a single field. Key is an
// i18n message key; Detail carries the offending value for log output.
type FieldError struct {
	Field  Field
	Key    string
	Detail string
}

func (e FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Key)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Key, e.Detail)
}

// Result contains all detected field errors for one submission
type Result struct {
	Errors []FieldError
}

// HasErrors returns true if any field failed validation
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ByField returns the first error for the given field, if any
func (r *Result) ByField(f Field) (FieldError, bool) {
	for _, e := range r.Errors {
		if e.Field == f {
			return e, true
		}
	}
	return FieldError{}, false
}

// FormatReport returns a human-readable report of all field errors
func (r *Result) FormatReport() string {
	if !r.HasErrors() {
		return "ok"
	}
	var b strings.Builder
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "- %s\n", e.Error())
	}
	return b.String()
}

// Validator validates booking requests field by field
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateRequest checks every field and collects all failures so the UI
// can surface them next to their fields in one pass.
func (v *Validator) ValidateRequest(req models.BookingRequest) Result {
	result := Result{Errors: []FieldError{}}

	if req.Start.IsZero() {
		result.Errors = append(result.Errors, FieldError{
			Field: FieldStartDate,
			Key:   "invalid_date",
		})
	}
	if req.End.IsZero() {
		result.Errors = append(result.Errors, FieldError{
			Field: FieldEndDate,
			Key:   "invalid_date",
		})
	}
	if !req.Start.IsZero() && !req.End.IsZero() && req.Start.After(req.End) {
		result.Errors = append(result.Errors, FieldError{
			Field:  FieldEndDate,
			Key:    "start_date_must_be_before_end_date",
			Detail: fmt.Sprintf("%s > %s", req.Start.Format("02.01.2006"), req.End.Format("02.01.2006")),
		})
	}

	if len(req.Weekdays) == 0 {
		result.Errors = append(result.Errors, FieldError{
			Field: FieldWeekdays,
			Key:   "select_at_least_one_weekday",
		})
	} else if dup := duplicateWeekday(req.Weekdays); dup != nil {
		result.Errors = append(result.Errors, FieldError{
			Field:  FieldWeekdays,
			Key:    "duplicate_weekday",
			Detail: dup.String(),
		})
	}

	if !req.HalfDay.Valid() {
		result.Errors = append(result.Errors, FieldError{
			Field:  FieldHalfDay,
			Key:    "invalid_half_day",
			Detail: string(req.HalfDay),
		})
	}

	if !models.ValidEmail(strings.TrimSpace(req.Email)) {
		result.Errors = append(result.Errors, FieldError{
			Field:  FieldEmail,
			Key:    "invalid_email",
			Detail: req.Email,
		})
	}

	if !models.ValidSeat(strings.TrimSpace(req.Seat)) {
		result.Errors = append(result.Errors, FieldError{
			Field:  FieldSeat,
			Key:    "invalid_seat",
			Detail: req.Seat,
		})
	}

	return result
}

func duplicateWeekday(weekdays []time.Weekday) *time.Weekday {
	seen := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		if seen[wd] {
			d := wd
			return &d
		}
		seen[wd] = true
	}
	return nil
}
