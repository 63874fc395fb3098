package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "ltbook"
	DefaultConfigPath = "~/.config/ltbook/config.toml"
	Version           = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (DD.MM.YYYY)
	DateFormat = "02.01.2006"

	// SheetName is the worksheet the booking rows are written to
	SheetName = "Bookings"

	// DefaultSeatPrefix is prepended to the raw seat number in the seatID column
	DefaultSeatPrefix = "P"

	// DefaultOutputFile is used when no output path is given
	DefaultOutputFile = "long-term-booking.xlsx"

	// Session States
	StateForm SessionState = iota
	StatePreview
	StateSaved
	StateError
)

// Columns is the output column order. These are data keys consumed by the
// booking importer downstream and are never localized.
var Columns = []string{"id", "seatID", "date", "timestamp", "firstHalf", "secondHalf", "email", "private"}
