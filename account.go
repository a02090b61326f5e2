package bank

import (
	"fmt"
	"iter"
	"sync"
)

// holding is a currency attached to an account and its balance in base units.
type holding struct {
	rate    CurrencyRate
	balance float64
}

// Account holds balances in several currencies.
//
// Every balance is kept in base units, whatever the currency it belongs to.
// Currencies keep their attachment order.
type Account struct {
	mu       sync.Mutex
	id       int
	owner    string
	holdings []holding
}

// NewAccount creates an account without currencies.
func NewAccount(id int, owner string) *Account {
	return &Account{id: id, owner: owner}
}

// ID returns the account number.
func (a *Account) ID() int { return a.id }

// Owner returns the account holder name.
func (a *Account) Owner() string { return a.owner }

// Currencies returns the attached currency rates in attachment order.
func (a *Account) Currencies() iter.Seq[CurrencyRate] {
	a.mu.Lock()
	rates := make([]CurrencyRate, len(a.holdings))
	for i, h := range a.holdings {
		rates[i] = h.rate
	}
	a.mu.Unlock()
	return func(yield func(CurrencyRate) bool) {
		for _, r := range rates {
			if !yield(r) {
				return
			}
		}
	}
}

// BaseBalance returns the balance attached to code, in base units.
func (a *Account) BaseBalance(code string) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, err := a.find(code)
	if err != nil {
		return 0, err
	}
	return a.holdings[i].balance, nil
}

// Balance returns the balance attached to code, converted into code units.
func (a *Account) Balance(code string) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, err := a.find(code)
	if err != nil {
		return 0, err
	}
	h := a.holdings[i]
	return h.rate.FromBase(h.balance), nil
}

// AddCurrency attaches rate with a zero balance.
func (a *Account) AddCurrency(rate CurrencyRate) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addHolding(rate, 0)
}

func (a *Account) addHolding(rate CurrencyRate, balance float64) error {
	if _, err := a.find(rate.Code()); err == nil {
		return fmt.Errorf("%w: account %d already holds %s", ErrConflict, a.id, rate.Code())
	}
	a.holdings = append(a.holdings, holding{rate: rate, balance: balance})
	return nil
}

// find returns the index of the first holding in code.
func (a *Account) find(code string) (int, error) {
	for i, h := range a.holdings {
		if h.rate.Code() == code {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: account %d has no %q", ErrCurrencyNotFound, a.id, code)
}

// add returns the balance of h once base units are added, or ErrInvalidAmount
// when the result is not a finite number in both base and code units.
func (h holding) add(base float64) (float64, error) {
	sum := h.balance + base
	if !finite(base) || !finite(sum) || !finite(h.rate.FromBase(sum)) {
		return 0, fmt.Errorf("%w: %s balance overflows", ErrInvalidAmount, h.rate.Code())
	}
	return sum, nil
}

// Deposit adds amount units of code to the account.
func (a *Account) Deposit(amount float64, code string) error {
	if err := ValidateDeposit(amount); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credit(amount, code)
}

// Withdraw removes amount units of code from the account.
func (a *Account) Withdraw(amount float64, code string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := a.withdraw(amount, code)
	return err
}

// withdraw removes amount units of code and returns the base units removed.
func (a *Account) withdraw(amount float64, code string) (float64, error) {
	i, err := a.find(code)
	if err != nil {
		return 0, err
	}
	h := &a.holdings[i]
	if err := ValidateWithdraw(h.balance, h.rate, amount); err != nil {
		return 0, fmt.Errorf("account %d: %w", a.id, err)
	}
	base := h.rate.ToBase(amount)
	h.balance -= base
	return base, nil
}

// credit adds amount units of code to the account.
func (a *Account) credit(amount float64, code string) error {
	i, err := a.find(code)
	if err != nil {
		return err
	}
	h := &a.holdings[i]
	sum, err := h.add(h.rate.ToBase(amount))
	if err != nil {
		return fmt.Errorf("account %d: %w", a.id, err)
	}
	h.balance = sum
	return nil
}

// canCredit reports whether credit(amount, code) would succeed.
func (a *Account) canCredit(amount float64, code string) error {
	i, err := a.find(code)
	if err != nil {
		return err
	}
	h := a.holdings[i]
	if _, err := h.add(h.rate.ToBase(amount)); err != nil {
		return fmt.Errorf("account %d: %w", a.id, err)
	}
	return nil
}

// refund puts base units back into the balance in code after a failed credit.
func (a *Account) refund(base float64, code string) {
	if i, err := a.find(code); err == nil {
		a.holdings[i].balance += base
	}
}

// Transfer withdraws amount units of fromCode from a and deposits amount units
// of toCode into to.
//
// The target is checked before anything is withdrawn. The two accounts are
// not updated atomically: if a concurrent change makes the credit fail, the
// withdrawn base units are put back into the source and the credit error is
// returned.
func (a *Account) Transfer(to *Account, amount float64, fromCode, toCode string) error {
	if err := ValidateTransfer(amount); err != nil {
		return err
	}
	if to == nil {
		return fmt.Errorf("%w: no target account", ErrCurrencyNotFound)
	}
	if to == a {
		a.mu.Lock()
		defer a.mu.Unlock()
		if err := a.canCredit(amount, toCode); err != nil {
			return err
		}
		base, err := a.withdraw(amount, fromCode)
		if err != nil {
			return err
		}
		if err := a.credit(amount, toCode); err != nil {
			a.refund(base, fromCode)
			return err
		}
		return nil
	}

	to.mu.Lock()
	err := to.canCredit(amount, toCode)
	to.mu.Unlock()
	if err != nil {
		return err
	}

	a.mu.Lock()
	base, err := a.withdraw(amount, fromCode)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	to.mu.Lock()
	err = to.credit(amount, toCode)
	to.mu.Unlock()
	if err != nil {
		a.mu.Lock()
		a.refund(base, fromCode)
		a.mu.Unlock()
		return fmt.Errorf("transfer from account %d refunded: %w", a.id, err)
	}
	return nil
}

// Display returns the account header line followed by one line per currency.
func (a *Account) Display() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	lines := make([]string, 0, len(a.holdings)+1)
	lines = append(lines, fmt.Sprintf("Account ID: %d | Owner: %s", a.id, a.owner))
	for _, h := range a.holdings {
		lines = append(lines, fmt.Sprintf("Balance in %s: %s", h.rate.Code(), round2(h.rate.FromBase(h.balance))))
	}
	return lines
}
