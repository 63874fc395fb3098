package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/vslugin/long-term-booking/internal/models"
	"github.com/vslugin/long-term-booking/internal/utils"
)

// BookingFlags are the request fields shared by generate and preview
type BookingFlags struct {
	Start    string `short:"s" help:"Start date (DD.MM.YYYY)." required:""`
	End      string `short:"e" help:"End date (DD.MM.YYYY)." required:""`
	Weekdays string `short:"w" help:"Comma-separated weekdays (e.g. mon,wed,fri). Defaults to the configured weekdays."`
	Half     string `help:"Half-day mode." default:"full" enum:"full,first,second"`
	Private  bool   `short:"p" help:"Mark the booking as private."`
	Email    string `help:"Requester email (must end with @devoteam.com)." required:""`
	Seat     string `help:"Seat number without prefix (e.g. 24, not P24)." required:""`
}

// Validate checks the flag formats before Run is invoked
func (f *BookingFlags) Validate() error {
	if !utils.ValidateDateFormat(f.Start) {
		return fmt.Errorf("invalid start date %q (expected DD.MM.YYYY)", f.Start)
	}
	if !utils.ValidateDateFormat(f.End) {
		return fmt.Errorf("invalid end date %q (expected DD.MM.YYYY)", f.End)
	}
	if f.Weekdays != "" {
		if _, err := utils.ParseWeekdays(f.Weekdays); err != nil {
			return err
		}
	}
	if !models.ValidEmail(strings.TrimSpace(f.Email)) {
		return fmt.Errorf("invalid email %q (must end with @devoteam.com)", f.Email)
	}
	if !models.ValidSeat(strings.TrimSpace(f.Seat)) {
		return fmt.Errorf("invalid seat %q (use the bare number, e.g. 24)", f.Seat)
	}
	return nil
}

// ToRequest builds the booking request from the flags, falling back to
// the configured default weekdays when none were given.
func (f *BookingFlags) ToRequest(ctx *Context) (models.BookingRequest, error) {
	loc, err := ctx.Config.Location()
	if err != nil {
		return models.BookingRequest{}, err
	}

	start, err := utils.ParseDateInLocation(f.Start, loc)
	if err != nil {
		return models.BookingRequest{}, err
	}
	end, err := utils.ParseDateInLocation(f.End, loc)
	if err != nil {
		return models.BookingRequest{}, err
	}

	var weekdays []time.Weekday
	if f.Weekdays != "" {
		weekdays, err = utils.ParseWeekdays(f.Weekdays)
	} else {
		weekdays, err = utils.ParseWeekdays(strings.Join(ctx.Config.DefaultWeekdays, ","))
	}
	if err != nil {
		return models.BookingRequest{}, err
	}

	req := models.BookingRequest{
		Start:    start,
		End:      end,
		Weekdays: weekdays,
		HalfDay:  models.HalfDayMode(f.Half),
		Private:  f.Private,
		Email:    strings.TrimSpace(f.Email),
		Seat:     strings.TrimSpace(f.Seat),
	}

	if result := ctx.Validator.ValidateRequest(req); result.HasErrors() {
		e := result.Errors[0]
		return models.BookingRequest{}, fmt.Errorf("%s: %s", e.Field, ctx.Catalog.T(e.Key))
	}
	return req, nil
}
