package bank

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"sync"
)

// DefaultCapacity is the maximum number of accounts of a new Ledger.
const DefaultCapacity = 50

// Ledger is an ordered collection of accounts.
//
// Insertion order is the display and save order. Account ids are unique
// within a ledger.
type Ledger struct {
	mu       sync.Mutex
	accounts []*Account
	capacity int // <= 0 means unbounded
}

// NewLedger creates an empty ledger holding at most DefaultCapacity accounts.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make([]*Account, 0),
		capacity: DefaultCapacity,
	}
}

// SetCapacity changes the maximum number of accounts, n <= 0 removes the limit.
//
// Accounts already in the ledger are kept even if they exceed n.
func (l *Ledger) SetCapacity(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.capacity = n
}

// Capacity returns the maximum number of accounts, 0 if unbounded.
func (l *Ledger) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(l.capacity, 0)
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accounts)
}

// AddAccount appends a to the ledger. The ledger owns a from now on.
func (l *Ledger) AddAccount(a *Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(a)
}

func (l *Ledger) add(a *Account) error {
	if a == nil {
		return errors.New("nil account")
	}
	if l.capacity > 0 && len(l.accounts) >= l.capacity {
		return fmt.Errorf("%w: cannot add account %d, capacity is %d", ErrCapacityExceeded, a.ID(), l.capacity)
	}
	if l.lookup(a.ID()) != nil {
		return fmt.Errorf("%w: account id %d already exists", ErrConflict, a.ID())
	}
	l.accounts = append(l.accounts, a)
	return nil
}

func (l *Ledger) lookup(id int) *Account {
	for _, a := range l.accounts {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id int) *Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lookup(id)
}

// Accounts returns an iterator over accounts in insertion order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	l.mu.Lock()
	accounts := append([]*Account(nil), l.accounts...)
	l.mu.Unlock()
	return func(yield func(*Account) bool) {
		for _, a := range accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// DisplayAllAccounts writes the display lines of every account to w.
func (l *Ledger) DisplayAllAccounts(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.accounts {
		for _, line := range a.Display() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveAccountsToFile writes every account to path, replacing its content.
func (l *Ledger) SaveAccountsToFile(path string) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: unable to open %q for writing: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %q: %w", ErrIO, path, cerr)
		}
	}()

	if err := l.encode(f); err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}
	return nil
}

// LoadAccountsFromFile appends the accounts stored in path.
//
// On a malformed record the accounts read before it stay in the ledger and
// the error is a *LoadError telling how many were appended.
func (l *Ledger) LoadAccountsFromFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: unable to open %q for reading: %w", ErrIO, path, err)
	}
	defer f.Close()

	n, err := l.decode(f)
	if err != nil {
		return &LoadError{Path: path, Loaded: n, Err: err}
	}
	return nil
}
