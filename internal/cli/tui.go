package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vslugin/long-term-booking/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	m := tui.NewModel(tui.Deps{
		Config:    ctx.Config,
		Catalog:   ctx.Catalog,
		Validator: ctx.Validator,
		Expander:  ctx.Expander,
		Writer:    ctx.Writer,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
