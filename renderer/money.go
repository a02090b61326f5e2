package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney formats amount units of code with the currency symbol when
// code is a known ISO 4217 currency, and as "<amount> <code>" otherwise.
func formatMoney(amount float64, code string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, code).Currency()
	if cur.Template == "" {
		return decimal.NewFromFloat(amount).StringFixed(2) + " " + code
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// formatBase formats a base unit amount with 2 decimals.
func formatBase(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
