// Package currency formats prices the way the storefront displays them:
// Indonesian rupiah with id-ID digit grouping and no fraction digits.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount as a rupiah string, e.g. 1200000 -> "Rp 1.200.000".
// Fractions are rounded away; rupiah is not displayed with decimals.
func FormatIDR(amount float64) string {
	return "Rp " + printer.Sprintf("%v", number.Decimal(amount,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))
}
