package tui

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/config"
	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/excel"
	"github.com/vslugin/long-term-booking/internal/i18n"
	"github.com/vslugin/long-term-booking/internal/models"
	"github.com/vslugin/long-term-booking/internal/utils"
	"github.com/vslugin/long-term-booking/internal/validation"
)

// BookingFormModel holds the raw form field values
type BookingFormModel struct {
	Start    string
	End      string
	Weekdays []time.Weekday
	HalfDay  models.HalfDayMode
	Private  bool
	Email    string
	Seat     string
	Out      string
}

// Deps are the collaborators the TUI needs
type Deps struct {
	Config    *config.Config
	Catalog   *i18n.Catalog
	Validator *validation.Validator
	Expander  *booking.Expander
	Writer    *excel.Writer
}

type Model struct {
	deps        Deps
	state       constants.SessionState
	keys        KeyMap
	help        help.Model
	form        *huh.Form
	bookingForm *BookingFormModel
	request     models.BookingRequest
	rows        []models.BookingRow
	savedPath   string
	errMsg      string
	quitting    bool
	width       int
	height      int
}

func NewModel(deps Deps) Model {
	defaults, err := utils.ParseWeekdays(strings.Join(deps.Config.DefaultWeekdays, ","))
	if err != nil {
		// Bad config entry; fall back to the weekday working week
		defaults = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	}

	fm := &BookingFormModel{
		Weekdays: defaults,
		HalfDay:  models.HalfDayFull,
		Out:      filepath.Join(deps.Config.OutputDir, constants.DefaultOutputFile),
	}

	m := Model{
		deps:        deps,
		state:       constants.StateForm,
		keys:        NewKeyMap(deps.Catalog),
		help:        help.New(),
		bookingForm: fm,
	}
	m.form = NewBookingForm(fm, deps.Catalog)
	return m
}
