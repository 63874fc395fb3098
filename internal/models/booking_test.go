package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() BookingRequest {
	return BookingRequest{
		Start:    date(2024, time.January, 1),
		End:      date(2024, time.January, 7),
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		HalfDay:  HalfDayFull,
		Email:    "jane.doe@devoteam.com",
		Seat:     "24",
	}
}

func TestHalfDayMode_Halves(t *testing.T) {
	cases := []struct {
		mode          HalfDayMode
		first, second bool
	}{
		{HalfDayFull, true, true},
		{HalfDayFirst, true, false},
		{HalfDaySecond, false, true},
	}
	for _, c := range cases {
		first, second := c.mode.Halves()
		if first != c.first || second != c.second {
			t.Errorf("%s: got (%v,%v), want (%v,%v)", c.mode, first, second, c.first, c.second)
		}
	}
}

func TestBookingRequest_Validate_OK(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestBookingRequest_Validate_StartAfterEnd(t *testing.T) {
	req := validRequest()
	req.Start = date(2024, time.February, 1)
	req.End = date(2024, time.January, 1)
	if err := req.Validate(); err == nil {
		t.Error("expected start-after-end to be rejected")
	}
}

func TestBookingRequest_Validate_NoWeekdays(t *testing.T) {
	req := validRequest()
	req.Weekdays = nil
	if err := req.Validate(); err == nil {
		t.Error("expected empty weekday selection to be rejected")
	}
}

func TestBookingRequest_Validate_Email(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"jane.doe@devoteam.com", true},
		{"JANE.DOE@DEVOTEAM.COM", true}, // domain match is case-insensitive
		{"jane.doe@Devoteam.Com", true},
		{"jane.doe@example.com", false},
		{"jane.doe@devoteam.com.evil.org", false},
		{"@devoteam.com", false},
		{"jane@doe@devoteam.com", false},
		{"", false},
	}
	for _, c := range cases {
		req := validRequest()
		req.Email = c.email
		err := req.Validate()
		if c.ok && err != nil {
			t.Errorf("email %q: unexpected error %v", c.email, err)
		}
		if !c.ok && err == nil {
			t.Errorf("email %q: expected rejection", c.email)
		}
	}
}

func TestBookingRequest_Validate_Seat(t *testing.T) {
	cases := []struct {
		seat string
		ok   bool
	}{
		{"24", true},
		{"1", true},
		{"P24", false}, // prefix is added on output, not typed
		{"", false},
		{"24a", false},
	}
	for _, c := range cases {
		req := validRequest()
		req.Seat = c.seat
		err := req.Validate()
		if c.ok && err != nil {
			t.Errorf("seat %q: unexpected error %v", c.seat, err)
		}
		if !c.ok && err == nil {
			t.Errorf("seat %q: expected rejection", c.seat)
		}
	}
}

func TestBookingRequest_WantsWeekday(t *testing.T) {
	req := validRequest()
	if !req.WantsWeekday(time.Monday) {
		t.Error("Monday should be wanted")
	}
	if req.WantsWeekday(time.Sunday) {
		t.Error("Sunday should not be wanted")
	}
}

func TestBookingRequest_Validate_SingleDayRange(t *testing.T) {
	req := validRequest()
	req.End = req.Start
	if err := req.Validate(); err != nil {
		t.Errorf("single-day range should be valid: %v", err)
	}
}
