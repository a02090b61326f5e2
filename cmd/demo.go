package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

type demoCmd struct {
	output string
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a two accounts scenario" }
func (*demoCmd) Usage() string {
	return `bankctl demo [-o <file>]

  Creates Alice (USD, EUR) and Bob (USD, GBP), deposits 1000 USD for Alice,
  attempts to withdraw 100 EUR, transfers 200 USD to Bob's GBP balance,
  displays both accounts, saves them to <file>, loads them back into a new
  ledger and displays them again. The -ledger-file is not used.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "demo.txt", "File to save the demo ledger to")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := runDemo(c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func runDemo(file string) error {
	usd := bank.MustCurrencyRate("USD", 1.0) // base currency
	eur := bank.MustCurrencyRate("EUR", 1.1) // 1 EUR = 1.1 USD
	gbp := bank.MustCurrencyRate("GBP", 1.3) // 1 GBP = 1.3 USD

	manager := bank.NewLedger()
	alice := bank.NewAccount(1, "Alice")
	bob := bank.NewAccount(2, "Bob")

	err := errors.Join(
		alice.AddCurrency(usd),
		alice.AddCurrency(eur),
		bob.AddCurrency(usd),
		bob.AddCurrency(gbp),
		manager.AddAccount(alice),
		manager.AddAccount(bob),
	)
	if err != nil {
		return err
	}

	if err := alice.Deposit(1000, "USD"); err != nil {
		return err
	}
	// The EUR balance is empty, this is reported and the demo goes on.
	if err := alice.Withdraw(100, "EUR"); err != nil {
		fmt.Printf("Withdraw refused: %v\n", err)
	}
	if err := alice.Transfer(bob, 200, "USD", "GBP"); err != nil {
		return err
	}

	if err := manager.DisplayAllAccounts(os.Stdout); err != nil {
		return err
	}
	if err := manager.SaveAccountsToFile(file); err != nil {
		return err
	}

	loaded := bank.NewLedger()
	if err := loaded.LoadAccountsFromFile(file); err != nil {
		return err
	}
	fmt.Printf("Loaded %d account(s) from %s\n", loaded.Len(), file)
	return loaded.DisplayAllAccounts(os.Stdout)
}
