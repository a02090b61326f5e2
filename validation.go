package bank

import (
	"fmt"
	"math"
)

// positive reports whether amount is a finite number greater than zero.
func positive(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ValidateDeposit returns ErrInvalidAmount unless amount is positive.
func ValidateDeposit(amount float64) error {
	if !positive(amount) {
		return fmt.Errorf("%w: deposit amount must be positive, got %v", ErrInvalidAmount, amount)
	}
	return nil
}

// ValidateWithdraw checks a withdraw of amount units of rate from a balance
// held in base units.
//
// Positivity is checked before sufficiency.
func ValidateWithdraw(balance float64, rate CurrencyRate, amount float64) error {
	if !positive(amount) {
		return fmt.Errorf("%w: withdraw amount must be positive, got %v", ErrInvalidAmount, amount)
	}
	if base := rate.ToBase(amount); !finite(base) || balance < base {
		return fmt.Errorf("%w: %s balance %s is lower than %v", ErrInsufficientFunds, rate.Code(), round2(rate.FromBase(balance)), amount)
	}
	return nil
}

// ValidateTransfer returns ErrInvalidAmount unless amount is positive.
func ValidateTransfer(amount float64) error {
	if !positive(amount) {
		return fmt.Errorf("%w: transfer amount must be positive, got %v", ErrInvalidAmount, amount)
	}
	return nil
}
