package excel

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vslugin/long-term-booking/internal/constants"
	"github.com/vslugin/long-term-booking/internal/models"
)

func sampleRows() []models.BookingRow {
	d1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	return []models.BookingRow{
		{
			ID:          "11111111-1111-1111-1111-111111111111",
			SeatID:      "P24",
			Date:        d1,
			TimestampMS: d1.UnixMilli(),
			FirstHalf:   true,
			SecondHalf:  true,
			Email:       "jane.doe@devoteam.com",
			Private:     false,
		},
		{
			ID:          "22222222-2222-2222-2222-222222222222",
			SeatID:      "P24",
			Date:        d2,
			TimestampMS: d2.UnixMilli(),
			FirstHalf:   true,
			SecondHalf:  false,
			Email:       "jane.doe@devoteam.com",
			Private:     true,
		},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "bookings.xlsx")

	if err := w.Write(sampleRows(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(constants.SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}

	for i, want := range constants.Columns {
		if rows[0][i] != want {
			t.Errorf("header column %d = %q, want %q", i, rows[0][i], want)
		}
	}

	first := rows[1]
	if first[0] != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("id = %q", first[0])
	}
	if first[1] != "P24" {
		t.Errorf("seatID = %q", first[1])
	}
	if first[2] != "01.01.2024" {
		t.Errorf("date = %q, want 01.01.2024", first[2])
	}
	ts, err := strconv.ParseFloat(first[3], 64)
	if err != nil || int64(ts) != sampleRows()[0].TimestampMS {
		t.Errorf("timestamp = %q, want %d", first[3], sampleRows()[0].TimestampMS)
	}
	if first[4] != "TRUE" || first[5] != "TRUE" {
		t.Errorf("half flags = %q/%q, want TRUE/TRUE", first[4], first[5])
	}
	if first[6] != "jane.doe@devoteam.com" {
		t.Errorf("email = %q", first[6])
	}
	if first[7] != "FALSE" {
		t.Errorf("private = %q, want FALSE", first[7])
	}

	second := rows[2]
	if second[4] != "TRUE" || second[5] != "FALSE" {
		t.Errorf("first-half booking flags = %q/%q, want TRUE/FALSE", second[4], second[5])
	}
	if second[7] != "TRUE" {
		t.Errorf("private = %q, want TRUE", second[7])
	}
}

func TestWrite_RefusesEmptyRows(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := w.Write(nil, path); err == nil {
		t.Fatal("expected error for empty row slice")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file may be left behind for an empty result")
	}
}

func TestWrite_NoPartialFileOnFailure(t *testing.T) {
	w := NewWriter()
	dir := t.TempDir()
	// Target path is a directory, so the final rename must fail
	path := filepath.Join(dir, "blocked.xlsx")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	if err := w.Write(sampleRows(), path); err == nil {
		t.Fatal("expected write failure")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "blocked.xlsx" {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestWrite_CreatesOutputDirectory(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "nested", "out", "bookings.xlsx")

	if err := w.Write(sampleRows(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
