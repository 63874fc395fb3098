package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/logger"
	"github.com/vslugin/long-term-booking/internal/models"
	"github.com/vslugin/long-term-booking/internal/utils"
)

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case constants.StateForm:
		return m.updateForm(msg)
	case constants.StatePreview:
		return m.updatePreview(msg)
	case constants.StateSaved, constants.StateError:
		return m.updateFinal(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submit()
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// submit turns the completed form into a request, validates it as a
// whole, and expands the rows for preview. Field validators have already
// run, so failures here are cross-field or empty-result problems.
func (m Model) submit() (tea.Model, tea.Cmd) {
	loc, err := m.deps.Config.Location()
	if err != nil {
		return m.fail(err.Error())
	}
	start, err := utils.ParseDateInLocation(strings.TrimSpace(m.bookingForm.Start), loc)
	if err != nil {
		return m.fail(m.deps.Catalog.T("invalid_date"))
	}
	end, err := utils.ParseDateInLocation(strings.TrimSpace(m.bookingForm.End), loc)
	if err != nil {
		return m.fail(m.deps.Catalog.T("invalid_date"))
	}

	req := models.BookingRequest{
		Start:    start,
		End:      end,
		Weekdays: m.bookingForm.Weekdays,
		HalfDay:  m.bookingForm.HalfDay,
		Private:  m.bookingForm.Private,
		Email:    strings.TrimSpace(m.bookingForm.Email),
		Seat:     strings.TrimSpace(m.bookingForm.Seat),
	}

	if result := m.deps.Validator.ValidateRequest(req); result.HasErrors() {
		return m.fail(m.deps.Catalog.T(result.Errors[0].Key))
	}

	rows, err := m.deps.Expander.Expand(req)
	if err != nil {
		if errors.Is(err, booking.ErrNoMatchingDates) {
			return m.fail(m.deps.Catalog.T("no_matching_dates"))
		}
		return m.fail(err.Error())
	}

	m.request = req
	m.rows = rows
	m.state = constants.StatePreview
	return m, nil
}

func (m Model) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Save):
		out := strings.TrimSpace(m.bookingForm.Out)
		if err := m.deps.Writer.Write(m.rows, out); err != nil {
			logger.Error("Workbook write failed", "path", out, "error", err)
			return m.fail(m.deps.Catalog.T("write_failed"))
		}
		logger.Info("Workbook written", "path", out, "rows", len(m.rows))
		m.savedPath = out
		m.state = constants.StateSaved
		return m, nil

	case key.Matches(keyMsg, m.keys.Edit):
		return m.reopenForm()

	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateFinal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == constants.StateError && key.Matches(keyMsg, m.keys.Edit) {
		return m.reopenForm()
	}
	if key.Matches(keyMsg, m.keys.Quit) || keyMsg.Type == tea.KeyEnter || keyMsg.Type == tea.KeyEsc {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// reopenForm rebuilds the form with the current field values so the
// administrator can correct a single field without retyping the rest.
func (m Model) reopenForm() (tea.Model, tea.Cmd) {
	m.form = NewBookingForm(m.bookingForm, m.deps.Catalog)
	m.errMsg = ""
	m.state = constants.StateForm
	return m, m.form.Init()
}

func (m Model) fail(msg string) (tea.Model, tea.Cmd) {
	m.errMsg = msg
	m.state = constants.StateError
	return m, nil
}
