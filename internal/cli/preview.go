package cli

import (
	"errors"
	"fmt"

	"github.com/vslugin/long-term-booking/internal/booking"
	"github.com/vslugin/long-term-booking/internal/utils"
)

type PreviewCmd struct {
	BookingFlags
}

// Run prints the expanded bookings without writing a file
func (c *PreviewCmd) Run(ctx *Context) error {
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

	for _, row := range rows {
		half := "full"
		switch {
		case row.FirstHalf && !row.SecondHalf:
			half = "first"
		case !row.FirstHalf && row.SecondHalf:
			half = "second"
		}
		private := ""
		if row.Private {
			private = " [private]"
		}
		fmt.Printf("%s  %s  %s  %s%s\n",
			utils.FormatDate(row.Date), row.Date.Weekday().String()[:3], row.SeatID, half, private)
	}
	fmt.Printf("%d %s\n", len(rows), ctx.Catalog.T("rows_generated"))
	return nil
}
