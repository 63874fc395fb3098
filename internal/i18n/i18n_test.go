package i18n

import "testing"

func TestCatalog_Translates(t *testing.T) {
	en := NewCatalog(English)
	de := NewCatalog(German)

	if en.T("title") != "Long Term Booking" {
		t.Errorf("en title = %q", en.T("title"))
	}
	if de.T("title") != "Langzeitbuchung" {
		t.Errorf("de title = %q", de.T("title"))
	}
}

func TestCatalog_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	c := NewCatalog("fr")
	if c.Language() != English {
		t.Errorf("language = %q, want en", c.Language())
	}
}

func TestCatalog_UnknownKeyReturnsKey(t *testing.T) {
	c := NewCatalog(German)
	if c.T("definitely_missing") != "definitely_missing" {
		t.Errorf("unknown key should come back unchanged, got %q", c.T("definitely_missing"))
	}
}

func TestCatalogs_KeyParity(t *testing.T) {
	// Every English key must have a German twin so a language switch
	// can never surface raw keys.
	for key := range catalogs[English] {
		if _, ok := catalogs[German][key]; !ok {
			t.Errorf("key %q missing from the German catalog", key)
		}
	}
	for key := range catalogs[German] {
		if _, ok := catalogs[English][key]; !ok {
			t.Errorf("key %q missing from the English catalog", key)
		}
	}
}

func TestLanguage_Valid(t *testing.T) {
	if !English.Valid() || !German.Valid() {
		t.Error("en and de must be valid")
	}
	if Language("fr").Valid() {
		t.Error("fr must be invalid")
	}
}
