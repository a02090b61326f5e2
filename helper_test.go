package bank

import (
	"math"
	"testing"
)

// USD, EUR, GBP and MAD are test rates against a USD base.
var (
	USD = MustCurrencyRate("USD", 1.0)
	EUR = MustCurrencyRate("EUR", 1.1)
	GBP = MustCurrencyRate("GBP", 1.3)
	MAD = MustCurrencyRate("MAD", 0.1)
)

// newTestAccount creates an account holding rates.
func newTestAccount(t *testing.T, id int, owner string, rates ...CurrencyRate) *Account {
	t.Helper()
	a := NewAccount(id, owner)
	for _, r := range rates {
		if err := a.AddCurrency(r); err != nil {
			t.Fatalf("AddCurrency(%v) returned an unexpected error: %v", r, err)
		}
	}
	return a
}

// mustBalance returns the balance of a in code units.
func mustBalance(t *testing.T, a *Account, code string) float64 {
	t.Helper()
	b, err := a.Balance(code)
	if err != nil {
		t.Fatalf("Balance(%q) returned an unexpected error: %v", code, err)
	}
	return b
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
