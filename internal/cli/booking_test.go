package cli

import (
	"testing"
	"time"

	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/config"
	"github.com/vslugin/long-term-booking/internal/excel"
	"github.com/vslugin/long-term-booking/internal/i18n"
	"github.com/vslugin/long-term-booking/internal/validation"
)

func testContext() *Context {
	cfg := config.Default()
	return &Context{
		Config:    cfg,
		Catalog:   i18n.NewCatalog(i18n.English),
		Validator: validation.New(),
		Expander:  booking.New(cfg.SeatPrefix, time.UTC),
		Writer:    excel.NewWriter(),
	}
}

func validFlags() BookingFlags {
	return BookingFlags{
		Start: "01.01.2024",
		End:   "07.01.2024",
		Half:  "full",
		Email: "jane.doe@devoteam.com",
		Seat:  "24",
	}
}

func TestBookingFlags_Validate_OK(t *testing.T) {
	f := validFlags()
	if err := f.Validate(); err != nil {
		t.Fatalf("valid flags rejected: %v", err)
	}
}

func TestBookingFlags_Validate_BadDates(t *testing.T) {
	f := validFlags()
	f.Start = "2024-01-01"
	if err := f.Validate(); err == nil {
		t.Error("ISO date format should be rejected")
	}

	f = validFlags()
	f.End = "31.02.2024"
	if err := f.Validate(); err == nil {
		t.Error("impossible date should be rejected")
	}
}

func TestBookingFlags_Validate_BadEmail(t *testing.T) {
	f := validFlags()
	f.Email = "jane@example.com"
	if err := f.Validate(); err == nil {
		t.Error("foreign domain should be rejected")
	}
}

func TestBookingFlags_Validate_BadWeekdays(t *testing.T) {
	f := validFlags()
	f.Weekdays = "mon,funday"
	if err := f.Validate(); err == nil {
		t.Error("unknown weekday should be rejected")
	}
}

func TestBookingFlags_ToRequest_DefaultWeekdays(t *testing.T) {
	ctx := testContext()
	f := validFlags()

	req, err := f.ToRequest(ctx)
	if err != nil {
		t.Fatalf("ToRequest failed: %v", err)
	}
	if len(req.Weekdays) != 5 {
		t.Errorf("expected the configured five working days, got %v", req.Weekdays)
	}
}

func TestBookingFlags_ToRequest_ExplicitWeekdays(t *testing.T) {
	ctx := testContext()
	f := validFlags()
	f.Weekdays = "sat,sun"

	req, err := f.ToRequest(ctx)
	if err != nil {
		t.Fatalf("ToRequest failed: %v", err)
	}
	if len(req.Weekdays) != 2 || req.Weekdays[0] != time.Saturday {
		t.Errorf("weekdays = %v, want [Saturday Sunday]", req.Weekdays)
	}
}

func TestBookingFlags_ToRequest_ReversedRange(t *testing.T) {
	ctx := testContext()
	f := validFlags()
	f.Start = "07.01.2024"
	f.End = "01.01.2024"

	if _, err := f.ToRequest(ctx); err == nil {
		t.Error("reversed range should be rejected before expansion")
	}
}

func TestBookingFlags_ToRequest_TrimsInput(t *testing.T) {
	ctx := testContext()
	f := validFlags()
	f.Email = "  jane.doe@devoteam.com  "
	f.Seat = " 24 "

	req, err := f.ToRequest(ctx)
	if err != nil {
		t.Fatalf("ToRequest failed: %v", err)
	}
	if req.Email != "jane.doe@devoteam.com" || req.Seat != "24" {
		t.Errorf("fields not trimmed: %q %q", req.Email, req.Seat)
	}
}
