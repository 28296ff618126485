// Package format renders numbers, money and dates for the terminal and
// for generated documents in the operator's locale.
package format

import (
	"strings"
	"time"

	"sklad/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter is safe for concurrent use.
type Formatter struct {
	p        *message.Printer
	currency string
}

// New returns a formatter for locale (a BCP 47 tag such as "ru" or "en").
// Unknown tags fall back to Russian.
func New(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Russian
	}
	base, _ := tag.Base()
	currency := "₽"
	if base.String() != "ru" {
		currency = "RUB"
	}
	return Formatter{p: message.NewPrinter(tag), currency: currency}
}

// Money has two decimals, e.g. "1 234,50 ₽".
func (f Formatter) Money(v float64) string {
	return f.Number(v) + " " + f.currency
}

func (f Formatter) Number(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.Scale(2)))
}

// Quantity drops trailing zeros and appends the unit, e.g. "2,5 пог. м.".
func (f Formatter) Quantity(v float64, unit entities.Unit) string {
	s := f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
	if unit == "" {
		return s
	}
	return s + " " + string(unit)
}

// Percent takes a margin in percent points (12.5 means 12.5%).
func (f Formatter) Percent(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(1))) + "%"
}

func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func (f Formatter) DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}

// Truncate cuts s to width runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return strings.TrimSpace(string(r[:width-1])) + "…"
}
