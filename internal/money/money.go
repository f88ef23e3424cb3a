// Package money formats monetary amounts for display.
// The locale is a deployment configuration choice injected at startup,
// never a per-request input.
package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts in a fixed locale with the currency's symbol.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter creates a formatter for the given BCP 47 locale (e.g. "es-PE", "en-US").
// An unparseable locale falls back to en-US.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Format renders amount in the given ISO 4217 currency (e.g. "PEN", "USD").
// Unknown currency codes degrade to "<CODE> <amount>" rather than failing.
func (f *Formatter) Format(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	return f.printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// Locale reports the formatter's locale tag, mainly for the Accept-Language header.
func (f *Formatter) Locale() string {
	return f.tag.String()
}
