package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/vslugin/long-term-booking/internal/i18n"
	"github.com/vslugin/long-term-booking/internal/models"
	"github.com/vslugin/long-term-booking/internal/utils"
)

// NewBookingForm creates the booking wizard form. Each field carries its
// own validator so errors surface inline and submission stays blocked
// until every field passes.
func NewBookingForm(fm *BookingFormModel, cat *i18n.Catalog) *huh.Form {
	weekdayOptions := make([]huh.Option[time.Weekday], 0, 7)
	for _, day := range []struct {
		key string
		wd  time.Weekday
	}{
		{"monday", time.Monday},
		{"tuesday", time.Tuesday},
		{"wednesday", time.Wednesday},
		{"thursday", time.Thursday},
		{"friday", time.Friday},
		{"saturday", time.Saturday},
		{"sunday", time.Sunday},
	} {
		opt := huh.NewOption(cat.T(day.key), day.wd)
		for _, selected := range fm.Weekdays {
			if selected == day.wd {
				opt = opt.Selected(true)
				break
			}
		}
		weekdayOptions = append(weekdayOptions, opt)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(cat.T("start_date")).
				Placeholder("01.03.2024").
				Value(&fm.Start).
				Validate(func(s string) error {
					if !utils.ValidateDateFormat(strings.TrimSpace(s)) {
						return errors.New(cat.T("invalid_date"))
					}
					return nil
				}),
			huh.NewInput().
				Title(cat.T("end_date")).
				Placeholder("31.03.2024").
				Value(&fm.End).
				Validate(func(s string) error {
					end, err := utils.ParseDate(strings.TrimSpace(s))
					if err != nil {
						return errors.New(cat.T("invalid_date"))
					}
					// Cross-field validation against the start date
					start, err := utils.ParseDate(strings.TrimSpace(fm.Start))
					if err == nil && start.After(end) {
						return errors.New(cat.T("start_date_must_be_before_end_date"))
					}
					return nil
				}),
			huh.NewMultiSelect[time.Weekday]().
				Title(cat.T("weekdays")).
				Options(weekdayOptions...).
				Value(&fm.Weekdays).
				Validate(func(ws []time.Weekday) error {
					if len(ws) == 0 {
						return errors.New(cat.T("select_at_least_one_weekday"))
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[models.HalfDayMode]().
				Title(cat.T("half_day")).
				Options(
					huh.NewOption(cat.T("full_day"), models.HalfDayFull),
					huh.NewOption(cat.T("first_half"), models.HalfDayFirst),
					huh.NewOption(cat.T("second_half"), models.HalfDaySecond),
				).
				Value(&fm.HalfDay),
			huh.NewConfirm().
				Title(cat.T("private")).
				Value(&fm.Private),
			huh.NewInput().
				Title(cat.T("email")).
				Placeholder("jane.doe@devoteam.com").
				Value(&fm.Email).
				Validate(func(s string) error {
					if !models.ValidEmail(strings.TrimSpace(s)) {
						return errors.New(cat.T("invalid_email"))
					}
					return nil
				}),
			huh.NewInput().
				Title(cat.T("seat")).
				Placeholder("24").
				Value(&fm.Seat).
				Validate(func(s string) error {
					if !models.ValidSeat(strings.TrimSpace(s)) {
						return errors.New(cat.T("invalid_seat"))
					}
					return nil
				}),
			huh.NewInput().
				Title(cat.T("output_path")).
				Value(&fm.Out).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New(cat.T("output_path"))
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
