package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/bank"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		amount float64
		code   string
		want   string
	}{
		{amount: 800, code: "USD", want: "$800.00"},
		{amount: 1234.5, code: "USD", want: "$1,234.50"},
		{amount: 0.005, code: "USD", want: "$0.01"},
		{amount: 12.5, code: "ZZZ", want: "12.50 ZZZ"},
	}
	for _, tc := range testCases {
		if got := formatMoney(tc.amount, tc.code); got != tc.want {
			t.Errorf("formatMoney(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestStatementMarkdown(t *testing.T) {
	l := bank.NewLedger()
	alice := bank.NewAccount(1, "Alice")
	empty := bank.NewAccount(2, "Nobody")
	for _, c := range []bank.CurrencyRate{bank.MustCurrencyRate("USD", 1), bank.MustCurrencyRate("EUR", 1.1)} {
		if err := alice.AddCurrency(c); err != nil {
			t.Fatal(err)
		}
	}
	if err := alice.Deposit(800, "USD"); err != nil {
		t.Fatal(err)
	}
	if err := alice.Deposit(100, "EUR"); err != nil {
		t.Fatal(err)
	}
	for _, a := range []*bank.Account{alice, empty} {
		if err := l.AddAccount(a); err != nil {
			t.Fatal(err)
		}
	}

	got := StatementMarkdown(l)
	for _, want := range []string{
		"# Ledger Statement",
		"2 account(s).",
		"## Account 1: Alice",
		"$800.00",
		"110.00",
		"Total in base units: 910.00",
		"## Account 2: Nobody",
		"No currency attached.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("StatementMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Alice") > strings.Index(got, "Nobody") {
		t.Errorf("StatementMarkdown() does not keep insertion order:\n%s", got)
	}
}
