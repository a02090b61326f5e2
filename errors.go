package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when an amount is zero, negative or not finite.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a withdraw exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCurrencyNotFound is returned when an account does not hold a currency.
	ErrCurrencyNotFound = errors.New("currency not found in account")
	// ErrConflict is returned on a duplicate currency code or account id.
	ErrConflict = errors.New("conflict")
	// ErrCapacityExceeded is returned when a ledger is full.
	ErrCapacityExceeded = errors.New("maximum accounts reached")
	// ErrInvalidRate is returned when a currency rate is malformed.
	ErrInvalidRate = errors.New("invalid currency rate")
	// ErrIO is returned when a ledger file cannot be opened, written or closed.
	ErrIO = errors.New("i/o error")
	// ErrFormat is returned when a record does not follow the ledger file format.
	ErrFormat = errors.New("malformed record")
)

// FormatError locates a malformed field in a ledger stream.
type FormatError struct {
	Record int    // zero based index of the account record
	Field  string // name of the field being read
	Token  string // offending token, empty at end of input
	Err    error  // underlying cause, may be nil
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("record %d: field %s", e.Record, e.Field)
	if e.Token == "" {
		msg += ": unexpected end of input"
	} else {
		msg += fmt.Sprintf(": bad token %q", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap makes errors.Is(err, ErrFormat) true, as well as the cause.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}

// LoadError reports a load that failed after some accounts were already
// appended to the ledger.
//
// Loaded accounts are not rolled back, callers that want all or nothing
// should discard the ledger.
type LoadError struct {
	Path   string
	Loaded int
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %q: %d account(s) loaded before failure: %v", e.Path, e.Loaded, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
