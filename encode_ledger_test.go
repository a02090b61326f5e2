package bank

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeLedger(t *testing.T) {
	l := scenarioLedger(t)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	want := `1 Alice 2
USD 1.00
800.00
EUR 1.10
0.00
2 Bob 2
USD 1.00
0.00
GBP 1.30
260.00
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeAccount_OwnerWithSpace(t *testing.T) {
	for _, owner := range []string{"Alice Smith", "", "tab\there"} {
		var buf bytes.Buffer
		if err := EncodeAccount(&buf, NewAccount(1, owner)); !errors.Is(err, ErrFormat) {
			t.Errorf("EncodeAccount(owner %q) error = %v, want ErrFormat", owner, err)
		}
	}
}

func TestEncodeAccount_TinyRate(t *testing.T) {
	a := newTestAccount(t, 1, "Alice", USD, MustCurrencyRate("JPY", 0.004))
	var buf bytes.Buffer
	if err := EncodeAccount(&buf, a); !errors.Is(err, ErrFormat) {
		t.Fatalf("EncodeAccount(JPY 0.004) error = %v, want ErrFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("EncodeAccount() wrote %q before failing", buf.String())
	}

	// a rate rounding to 0.01 still loads back.
	b := newTestAccount(t, 2, "Bob", MustCurrencyRate("JPY", 0.006))
	l := NewLedger()
	if err := l.AddAccount(b); err != nil {
		t.Fatal(err)
	}
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	if _, err := DecodeLedger(&buf); err != nil {
		t.Errorf("DecodeLedger() returned an unexpected error: %v", err)
	}
}

func TestDecodeLedger_TrailingWhitespace(t *testing.T) {
	stream := "1 Alice 1\nUSD 1.00\n10.00\n\n\n   \n"
	l, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("DecodeLedger() decoded %d accounts, want 1", l.Len())
	}
}

func TestDecodeLedger_Malformed(t *testing.T) {
	testCases := []struct {
		name   string
		stream string
		field  string
	}{
		{name: "bad id", stream: "x Alice 0\n", field: "id"},
		{name: "missing owner", stream: "1", field: "owner"},
		{name: "missing count", stream: "1 Alice", field: "currency count"},
		{name: "negative count", stream: "1 Alice -1", field: "currency count"},
		{name: "missing currency", stream: "1 Alice 1\n", field: "currency[0] code"},
		{name: "bad rate", stream: "1 Alice 1\nUSD one\n1.00\n", field: "currency[0] rate"},
		{name: "zero rate", stream: "1 Alice 1\nUSD 0.00\n1.00\n", field: "currency[0] rate"},
		{name: "missing balance", stream: "1 Alice 1\nUSD 1.00\n", field: "currency[0] balance"},
		{name: "bad balance", stream: "1 Alice 1\nUSD 1.00\nlots\n", field: "currency[0] balance"},
		{name: "infinite balance", stream: "1 Alice 1\nUSD 1.00\n1e400\n", field: "currency[0] balance"},
		{name: "negative balance", stream: "1 Alice 1\nUSD 1.00\n-1.00\n", field: "currency[0] balance"},
		{name: "duplicate currency", stream: "1 Alice 2\nUSD 1.00\n1.00\nUSD 1.00\n1.00\n", field: "currency[1] code"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.stream))
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("DecodeLedger() error = %v, want ErrFormat", err)
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("DecodeLedger() error = %T, want *FormatError", err)
			}
			if ferr.Field != tc.field {
				t.Errorf("FormatError.Field = %q, want %q", ferr.Field, tc.field)
			}
		})
	}
}
