// Package excel serializes booking rows into an .xlsx workbook.
package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/models"
	"github.com/vslugin/long-term-booking/internal/utils"
)

// Writer builds booking workbooks
type Writer struct{}

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes the rows into a workbook and saves it to path. The
// save is atomic: the workbook is written to a temp file in the target
// directory and renamed into place, so a failed write leaves no partial
// file behind. An empty row slice is rejected so a header-only workbook
// can never be produced.
func (w *Writer) Write(rows []models.BookingRow, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("refusing to write workbook with no booking rows")
	}

	f, err := w.build(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	return w.saveAtomic(f, path)
}

// build creates the in-memory workbook: one sheet, header row, one row
// per booking in sequence order.
func (w *Writer) build(rows []models.BookingRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", constants.SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(constants.Columns))
	for i, col := range constants.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(constants.SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []interface{}{
			row.ID,
			row.SeatID,
			utils.FormatDate(row.Date),
			row.TimestampMS,
			boolCell(row.FirstHalf),
			boolCell(row.SecondHalf),
			row.Email,
			boolCell(row.Private),
		}
		if err := f.SetSheetRow(constants.SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f, nil
}

// saveAtomic writes the workbook bytes to a temp file next to the target
// and renames it into place.
func (w *Writer) saveAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to serialize workbook: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ltbook-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}
	return nil
}

// boolCell renders a boolean the way the downstream importer expects it
func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
