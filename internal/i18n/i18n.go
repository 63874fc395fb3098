// Package i18n holds the static UI string catalogs. Only interface
// strings are translated; output column keys stay English.
package i18n

// Language is a supported UI language code
type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == English || l == German
}

var catalogs = map[Language]map[string]string{
	English: {
		"title":           "Long Term Booking",
		"start_date":      "Start Date",
		"end_date":        "End Date",
		"weekdays":        "Select Weekdays",
		"monday":          "Monday",
		"tuesday":         "Tuesday",
		"wednesday":       "Wednesday",
		"thursday":        "Thursday",
		"friday":          "Friday",
		"saturday":        "Saturday",
		"sunday":          "Sunday",
		"half_day":        "Half-Day",
		"full_day":        "Full Day",
		"first_half":      "First Half",
		"second_half":     "Second Half",
		"private":         "Private",
		"email":           "Email",
		"seat":            "Seat Number (e.g. 24, not P24)",
		"output_path":     "Output File",
		"generate":        "Generate Excel",
		"preview":         "Preview",
		"booking_details": "Booking Details",
		"success":         "Excel file generated successfully!",
		"save":            "save",
		"edit":            "edit",
		"quit":            "quit",
		"rows_generated":  "bookings generated",

		"invalid_date":                       "Please enter a valid date (DD.MM.YYYY)",
		"invalid_email":                      "Please enter a valid email ending with @devoteam.com",
		"invalid_seat":                       "Please enter a bare seat number (e.g. 24, not P24)",
		"invalid_half_day":                   "Please choose full day, first half or second half",
		"duplicate_weekday":                  "A weekday is selected twice",
		"start_date_must_be_before_end_date": "Start date must be before end date.",
		"select_at_least_one_weekday":        "Please select at least one weekday.",
		"no_matching_dates":                  "No dates in the range match the selected weekdays.",
		"write_failed":                       "Could not write the Excel file",
	},
	German: {
		"title":           "Langzeitbuchung",
		"start_date":      "Startdatum",
		"end_date":        "Enddatum",
		"weekdays":        "Wochentage auswählen",
		"monday":          "Montag",
		"tuesday":         "Dienstag",
		"wednesday":       "Mittwoch",
		"thursday":        "Donnerstag",
		"friday":          "Freitag",
		"saturday":        "Samstag",
		"sunday":          "Sonntag",
		"half_day":        "Halbtag",
		"full_day":        "Ganzer Tag",
		"first_half":      "Erste Hälfte",
		"second_half":     "Zweite Hälfte",
		"private":         "Privat",
		"email":           "E-Mail",
		"seat":            "Platznummer (z. B. 24, nicht P24)",
		"output_path":     "Ausgabedatei",
		"generate":        "Excel generieren",
		"preview":         "Vorschau",
		"booking_details": "Buchungsdetails",
		"success":         "Excel-Datei erfolgreich generiert!",
		"save":            "speichern",
		"edit":            "bearbeiten",
		"quit":            "beenden",
		"rows_generated":  "Buchungen generiert",

		"invalid_date":                       "Bitte geben Sie ein gültiges Datum an (TT.MM.JJJJ)",
		"invalid_email":                      "Bitte geben Sie eine gültige E-Mail mit @devoteam.com an",
		"invalid_seat":                       "Bitte geben Sie eine reine Platznummer an (z. B. 24, nicht P24)",
		"invalid_half_day":                   "Bitte wählen Sie ganzen Tag, erste oder zweite Hälfte",
		"duplicate_weekday":                  "Ein Wochentag ist doppelt ausgewählt",
		"start_date_must_be_before_end_date": "Startdatum muss vor Enddatum liegen.",
		"select_at_least_one_weekday":        "Bitte wählen Sie mindestens einen Wochentag.",
		"no_matching_dates":                  "Keine Tage im Zeitraum passen zu den gewählten Wochentagen.",
		"write_failed":                       "Excel-Datei konnte nicht geschrieben werden",
	},
}

// Catalog resolves message keys for one language
type Catalog struct {
	lang Language
}

// NewCatalog returns the catalog for the given language, falling back to
// English for unknown codes.
func NewCatalog(lang Language) *Catalog {
	if !lang.Valid() {
		lang = English
	}
	return &Catalog{lang: lang}
}

// Language returns the catalog's language
func (c *Catalog) Language() Language {
	return c.lang
}

// T returns the translated text for the given key. Unknown keys come
// back unchanged so a missing entry is visible instead of silent.
func (c *Catalog) T(key string) string {
	if msg, ok := catalogs[c.lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[English][key]; ok {
		return msg
	}
	return key
}
