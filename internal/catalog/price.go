package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencySymbol = "€"
	// nl-NL separates the currency symbol and the amount with a no-break space.
	symbolSeparator = "\u00a0"
)

var (
	hundred      = decimal.NewFromInt(100)
	maxCents     = decimal.NewFromInt(1 << 53)
	pricePrinter = message.NewPrinter(language.Dutch)
)

// ParsePrice converts decimal text such as "19.99" into cents, rounding to
// the nearest cent. A comma is accepted as the decimal separator when the
// text contains no dot.
func ParsePrice(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidPrice
	}
	if !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", text, ErrInvalidPrice)
	}
	if amount.IsNegative() {
		return 0, ErrInvalidPrice
	}

	cents := amount.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, ErrInvalidPrice
	}
	return cents.IntPart(), nil
}

// PriceInput renders cents as the decimal text an edit form is seeded with:
// 950 becomes "9.5", 2000 becomes "20".
func PriceInput(cents int64) string {
	return decimal.New(cents, -2).String()
}

// FormatPrice renders cents as a nl-NL euro amount, e.g. "€ 19,99".
func FormatPrice(cents int64) string {
	major := decimal.New(cents, -2).InexactFloat64()
	sign := ""
	if major < 0 {
		sign = "-"
		major = -major
	}
	return sign + currencySymbol + symbolSeparator + pricePrinter.Sprint(number.Decimal(major, number.Scale(2)))
}
