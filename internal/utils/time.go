package utils

import (
	"fmt"
	"time"

	"github.com/vslugin/long-term-booking/internal/constants"
)

// ParseDate parses a date string in the standard format (DD.MM.YYYY).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected DD.MM.YYYY): %w", err)
	}
	return t, nil
}

// ParseDateInLocation parses a date string (DD.MM.YYYY) and pins it to
// midnight in the given timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// MidnightMillis returns the Unix timestamp in milliseconds for the start
// of the given calendar day in the given timezone. The importer expects
// local midnight, matching what a desk booking "day" means on site.
func MidnightMillis(date time.Time, loc *time.Location) int64 {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return midnight.UnixMilli()
}

// FormatDate formats a date in the standard format (DD.MM.YYYY).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
