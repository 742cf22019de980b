// internal/escpos/layout.go
package escpos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultWidth is the column count of font A on 80mm paper.
const DefaultWidth = 48

// JustifyTwoColumn produces one printed line with left flush-left and
// right flush-right within width characters, separated by at least one
// space. When both sides together reach or exceed the width the gap is
// forced to a single space and the line overflows instead of truncating.
// Lengths are measured after sanitization, since transliteration can
// change the character count.
func JustifyTwoColumn(left, right string, width int, size Size) []byte {
	if width <= 0 {
		width = DefaultWidth
	}

	l := Sanitize(left)
	r := Sanitize(right)

	gap := width - len(l) - len(r)
	if gap < 1 {
		gap = 1
	}

	return Text(size, l+strings.Repeat(" ", gap)+r+"\n")
}

// LineTotal computes quantity times unit price.
func LineTotal(quantity, unitPrice float64) decimal.Decimal {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
}

// Money formats a monetary value with the currency prefix and exactly
// two decimal digits.
func Money(currency string, v decimal.Decimal) string {
	return currency + " " + v.StringFixed(2)
}

// MoneyFloat is Money for values that arrive as floats.
func MoneyFloat(currency string, v float64) string {
	return Money(currency, decimal.NewFromFloat(v))
}

// BillItemLine renders one priced order line: name, quantity and unit
// price on the left, the line total flush-right.
func BillItemLine(name string, quantity, unitPrice float64, width int, currency string) []byte {
	left := fmt.Sprintf("%s / %s UN x %s",
		name, FormatQuantity(quantity), MoneyFloat(currency, unitPrice))
	return JustifyTwoColumn(left, Money(currency, LineTotal(quantity, unitPrice)), width, SizeMedium)
}

// FormatQuantity renders a quantity without trailing zero noise.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
