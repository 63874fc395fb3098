package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/utils"
)

// previewLimit caps the number of rows rendered in the preview; the
// count line always reflects the full expansion.
const previewLimit = 15

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(m.deps.Catalog.T("title"))

	var content string
	switch m.state {
	case constants.StateForm:
		content = m.form.View()
	case constants.StatePreview:
		content = m.viewPreview()
	case constants.StateSaved:
		content = successStyle.Render(m.deps.Catalog.T("success")) + "\n" +
			subtleStyle.Render(m.savedPath)
	case constants.StateError:
		content = dangerStyle.Render(m.errMsg)
	}

	var footer string
	if m.state != constants.StateForm {
		footer = m.help.View(m.keys)
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (m Model) viewPreview() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s  %s: %s  %s\n\n",
		m.deps.Catalog.T("start_date"), utils.FormatDate(m.request.Start),
		m.deps.Catalog.T("end_date"), utils.FormatDate(m.request.End),
		subtleStyle.Render(utils.FormatWeekdays(m.request.Weekdays)))

	shown := m.rows
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	for _, row := range shown {
		line := fmt.Sprintf("%s  %s  %s  %s",
			utils.FormatDate(row.Date), row.Date.Weekday().String()[:3], row.SeatID, row.Email)
		if row.Private {
			line += "  " + privateStyle.Render(m.deps.Catalog.T("private"))
		}
		b.WriteString(line + "\n")
	}
	if len(m.rows) > previewLimit {
		fmt.Fprintf(&b, "%s\n", subtleStyle.Render(fmt.Sprintf("… %d more", len(m.rows)-previewLimit)))
	}

	fmt.Fprintf(&b, "\n%d %s\n", len(m.rows), m.deps.Catalog.T("rows_generated"))
	return b.String()
}
