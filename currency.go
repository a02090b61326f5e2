package bank

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyRate is a currency code and the factor that converts one unit of
// this currency into base units.
//
// CurrencyRate is an immutable value, accounts hold copies of it.
type CurrencyRate struct {
	code string
	rate float64
}

// NewCurrencyRate returns a rate for code where 1 code = rate base units.
func NewCurrencyRate(code string, rate float64) (CurrencyRate, error) {
	if code == "" || strings.ContainsFunc(code, isSpace) {
		return CurrencyRate{}, fmt.Errorf("%w: code %q must be a single token", ErrInvalidRate, code)
	}
	if !(rate > 0) || math.IsInf(rate, 0) {
		return CurrencyRate{}, fmt.Errorf("%w: rate for %s must be positive, got %v", ErrInvalidRate, code, rate)
	}
	return CurrencyRate{code: code, rate: rate}, nil
}

// MustCurrencyRate is like NewCurrencyRate but panics on error.
func MustCurrencyRate(code string, rate float64) CurrencyRate {
	c, err := NewCurrencyRate(code, rate)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCurrencyRate parses the two tokens of a currency record.
func ParseCurrencyRate(code, rate string) (CurrencyRate, error) {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return CurrencyRate{}, fmt.Errorf("%w: rate %q: %w", ErrFormat, rate, err)
	}
	c, err := NewCurrencyRate(code, d.InexactFloat64())
	if err != nil {
		return CurrencyRate{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return c, nil
}

// Code returns the currency code.
func (c CurrencyRate) Code() string { return c.code }

// Rate returns the number of base units in one unit of the currency.
func (c CurrencyRate) Rate() float64 { return c.rate }

// ToBase converts amount units of c into base units.
func (c CurrencyRate) ToBase(amount float64) float64 { return amount * c.rate }

// FromBase converts amount base units into units of c.
func (c CurrencyRate) FromBase(amount float64) float64 { return amount / c.rate }

// String returns the record form "<code> <rate>" with the rate rounded to 2 decimals.
func (c CurrencyRate) String() string {
	return c.code + " " + fixed2(c.rate)
}

// MarshalText implements encoding.TextMarshaler with the record form.
// It returns ErrFormat when the rounded rate would not parse back.
func (c CurrencyRate) MarshalText() ([]byte, error) {
	if err := c.checkRecord(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// checkRecord returns ErrFormat if the 2 decimals record form of c rounds the
// rate down to zero.
func (c CurrencyRate) checkRecord() error {
	if !decimal.NewFromFloat(c.rate).Round(2).IsPositive() {
		return fmt.Errorf("%w: rate %v of %s rounds to %s", ErrFormat, c.rate, c.code, fixed2(c.rate))
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the record form.
func (c *CurrencyRate) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 2 {
		return fmt.Errorf("%w: currency record %q must be \"<code> <rate>\"", ErrFormat, text)
	}
	v, err := ParseCurrencyRate(fields[0], fields[1])
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// fixed2 formats v with exactly 2 decimals.
func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// round2 formats v rounded to 2 decimals, without trailing zeros.
func round2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
