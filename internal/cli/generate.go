package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/logger"
)

type GenerateCmd struct {
	BookingFlags
	Out string `short:"o" help:"Output file path (.xlsx). Defaults to the configured output directory." type:"path"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	req, err := c.ToRequest(ctx)
	if err != nil {
		return err
	}

	rows, err := ctx.Expander.Expand(req)
	if err != nil {
		if errors.Is(err, booking.ErrNoMatchingDates) {
			return errors.New(ctx.Catalog.T("no_matching_dates"))
		}
		return err
	}

	out := c.Out
	if out == "" {
		out = filepath.Join(ctx.Config.OutputDir, constants.DefaultOutputFile)
	}

	if err := ctx.Writer.Write(rows, out); err != nil {
		logger.Error("Workbook write failed", "path", out, "error", err)
		return fmt.Errorf("%s: %w", ctx.Catalog.T("write_failed"), err)
	}

	logger.Info("Workbook written", "path", out, "rows", len(rows))
	fmt.Printf("%s %d %s -> %s\n", ctx.Catalog.T("success"), len(rows), ctx.Catalog.T("rows_generated"), out)
	return nil
}
