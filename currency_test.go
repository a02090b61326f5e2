package bank

import (
	"errors"
	"math"
	"testing"
)

func TestCurrencyRate_RoundTrip(t *testing.T) {
	rates := []float64{1, 1.1, 1.3, 0.1, 0.0001, 12345.678}
	amounts := []float64{0, 1, -5, 100, 0.01, 1e6, 3.14159}

	for _, r := range rates {
		c := MustCurrencyRate("XXX", r)
		for _, x := range amounts {
			got := c.FromBase(c.ToBase(x))
			if math.Abs(got-x) > 1e-9*math.Max(1, math.Abs(x)) {
				t.Errorf("FromBase(ToBase(%v)) with rate %v = %v, want %v", x, r, got, x)
			}
		}
	}
}

func TestCurrencyRate_Convert(t *testing.T) {
	if got := EUR.ToBase(100); !almostEqual(got, 110) {
		t.Errorf("EUR.ToBase(100) = %v, want 110", got)
	}
	if got := MAD.FromBase(20); !almostEqual(got, 200) {
		t.Errorf("MAD.FromBase(20) = %v, want 200", got)
	}
}

func TestNewCurrencyRate_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		code string
		rate float64
	}{
		{name: "zero rate", code: "USD", rate: 0},
		{name: "negative rate", code: "USD", rate: -1},
		{name: "NaN rate", code: "USD", rate: math.NaN()},
		{name: "infinite rate", code: "USD", rate: math.Inf(1)},
		{name: "empty code", code: "", rate: 1},
		{name: "code with space", code: "US D", rate: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCurrencyRate(tc.code, tc.rate)
			if !errors.Is(err, ErrInvalidRate) {
				t.Errorf("NewCurrencyRate(%q, %v) error = %v, want ErrInvalidRate", tc.code, tc.rate, err)
			}
		})
	}
}

func TestCurrencyRate_Text(t *testing.T) {
	if got, want := EUR.String(), "EUR 1.10"; got != want {
		t.Errorf("EUR.String() = %q, want %q", got, want)
	}

	var c CurrencyRate
	if err := c.UnmarshalText([]byte("GBP 1.30")); err != nil {
		t.Fatalf("UnmarshalText() returned an unexpected error: %v", err)
	}
	if c.Code() != "GBP" || c.Rate() != 1.3 {
		t.Errorf("UnmarshalText() = %v %v, want GBP 1.3", c.Code(), c.Rate())
	}

	if _, err := MustCurrencyRate("JPY", 0.004).MarshalText(); !errors.Is(err, ErrFormat) {
		t.Errorf("MarshalText(JPY 0.004) error = %v, want ErrFormat", err)
	}

	for _, bad := range []string{"", "GBP", "GBP x", "GBP 0", "GBP -1.2", "GBP 1.3 extra"} {
		var c CurrencyRate
		if err := c.UnmarshalText([]byte(bad)); !errors.Is(err, ErrFormat) {
			t.Errorf("UnmarshalText(%q) error = %v, want ErrFormat", bad, err)
		}
	}
}
