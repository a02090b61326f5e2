package bank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The ledger file is a flat sequence of whitespace separated tokens:
//
//	<id> <owner> <count>
//	<code> <rate>
//	<balance>
//	...
//
// one "<code> <rate>" and "<balance>" pair per currency, one record per account.

// EncodeAccount writes the record of a single account to w.
func EncodeAccount(w io.Writer, a *Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.owner == "" || strings.ContainsFunc(a.owner, isSpace) {
		return fmt.Errorf("%w: account %d: owner %q must be a single token", ErrFormat, a.id, a.owner)
	}
	for _, h := range a.holdings {
		if err := h.rate.checkRecord(); err != nil {
			return fmt.Errorf("account %d: %w", a.id, err)
		}
	}
	if _, err := fmt.Fprintf(w, "%d %s %d\n", a.id, a.owner, len(a.holdings)); err != nil {
		return fmt.Errorf("failed to write account %d: %w", a.id, err)
	}
	for _, h := range a.holdings {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", h.rate, fixed2(h.balance)); err != nil {
			return fmt.Errorf("failed to write account %d: %w", a.id, err)
		}
	}
	return nil
}

// EncodeLedger writes all accounts of l to w in insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.encode(w)
}

func (l *Ledger) encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, a := range l.accounts {
		if err := EncodeAccount(bw, a); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// DecodeLedger reads accounts from r into a new unbounded ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	l.capacity = 0
	if _, err := l.decode(r); err != nil {
		return nil, err
	}
	return l, nil
}

// decode appends accounts read from r and returns how many were appended.
func (l *Ledger) decode(r io.Reader) (n int, err error) {
	s := newTokens(r)
	for {
		a, err := s.account(n)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := l.add(a); err != nil {
			return n, err
		}
		n++
	}
}

// tokens reads whitespace separated tokens.
type tokens struct {
	scanner *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokens{scanner: s}
}

// next returns the next token, or a FormatError at end of input.
func (t *tokens) next(record int, field string) (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading record %d: %w", ErrIO, record, err)
	}
	return "", &FormatError{Record: record, Field: field}
}

// account decodes one account record. It returns io.EOF when the input ends
// before the first token of the record.
func (t *tokens) account(record int) (*Account, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading record %d: %w", ErrIO, record, err)
		}
		return nil, io.EOF
	}
	tok := t.scanner.Text()
	id, err := strconv.Atoi(tok)
	if err != nil {
		return nil, &FormatError{Record: record, Field: "id", Token: tok, Err: err}
	}

	owner, err := t.next(record, "owner")
	if err != nil {
		return nil, err
	}

	tok, err = t.next(record, "currency count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(tok)
	if err != nil || count < 0 {
		return nil, &FormatError{Record: record, Field: "currency count", Token: tok, Err: err}
	}

	a := NewAccount(id, owner)
	for i := range count {
		code, err := t.next(record, fmt.Sprintf("currency[%d] code", i))
		if err != nil {
			return nil, err
		}
		tok, err := t.next(record, fmt.Sprintf("currency[%d] rate", i))
		if err != nil {
			return nil, err
		}
		rate, err := ParseCurrencyRate(code, tok)
		if err != nil {
			return nil, &FormatError{Record: record, Field: fmt.Sprintf("currency[%d] rate", i), Token: tok, Err: err}
		}

		field := fmt.Sprintf("currency[%d] balance", i)
		tok, err = t.next(record, field)
		if err != nil {
			return nil, err
		}
		balance, err := decimal.NewFromString(tok)
		if err != nil {
			return nil, &FormatError{Record: record, Field: field, Token: tok, Err: err}
		}
		if balance.IsNegative() {
			return nil, &FormatError{Record: record, Field: field, Token: tok, Err: ErrInvalidAmount}
		}
		v, err := holding{rate: rate}.add(balance.InexactFloat64())
		if err != nil {
			return nil, &FormatError{Record: record, Field: field, Token: tok, Err: err}
		}
		if err := a.addHolding(rate, v); err != nil {
			return nil, &FormatError{Record: record, Field: fmt.Sprintf("currency[%d] code", i), Token: code, Err: err}
		}
	}
	return a, nil
}
