package i18n

import "testing"

func TestLoadAndTranslate(t *testing.T) {
	if err := Load("tr"); err != nil {
		t.Fatalf("Load tr: %v", err)
	}
	if got := T("not_found"); got != "Dublaj bulunamadı" {
		t.Fatalf("T(not_found) = %q", got)
	}

	if err := Load("en"); err != nil {
		t.Fatalf("Load en: %v", err)
	}
	if got := T("not_found"); got != "Dubbing not found" {
		t.Fatalf("T(not_found) = %q", got)
	}
	if got := T("unknown_code"); got != "unknown_code" {
		t.Fatalf("unknown code should fall back to itself, got %q", got)
	}
}

func TestLoadUnknownLocale(t *testing.T) {
	if err := Load("xx"); err == nil {
		t.Fatal("expected error for missing locale file")
	}
}
