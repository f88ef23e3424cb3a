package money

import (
	"strings"
	"testing"
)

func TestNewFormatter_FallsBackToEnglish(t *testing.T) {
	f := NewFormatter("not-a-locale")
	if f.Locale() != "en-US" {
		t.Errorf("expected en-US fallback, got %q", f.Locale())
	}
}

func TestFormatter_Locale(t *testing.T) {
	f := NewFormatter("es-PE")
	if f.Locale() != "es-PE" {
		t.Errorf("expected es-PE, got %q", f.Locale())
	}
}

func TestFormat_UnknownCurrencyDegrades(t *testing.T) {
	f := NewFormatter("en-US")
	got := f.Format(12.5, "XXXX")
	if got != "XXXX 12.50" {
		t.Errorf("expected raw fallback, got %q", got)
	}
}

func TestFormat_KnownCurrency(t *testing.T) {
	f := NewFormatter("en-US")
	got := f.Format(200, "USD")
	if got == "" || !strings.Contains(got, "200") {
		t.Errorf("expected formatted amount containing 200, got %q", got)
	}
}
