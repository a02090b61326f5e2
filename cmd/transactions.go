package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

// parseAmount parses the "<amount> <code>" arguments shared by transactions.
func parseAmount(f *flag.FlagSet) (float64, string, error) {
	if f.NArg() != 2 {
		return 0, "", fmt.Errorf("expected <amount> <code>, got %q", f.Args())
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid amount %q: %w", f.Arg(0), err)
	}
	return amount, f.Arg(1), nil
}

// --- Deposit Command ---

type depositCmd struct {
	id int
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `bankctl deposit -id <id> <amount> <code>

  Deposits <amount> units of currency <code> into the account.
`
}
func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Account id")
}
func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, code, err := parseAmount(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	return update(func(l *bank.Ledger) error {
		a, err := account(l, c.id)
		if err != nil {
			return err
		}
		if err := a.Deposit(amount, code); err != nil {
			return err
		}
		fmt.Printf("Deposited %v %s into account %d\n", amount, code, c.id)
		return nil
	})
}

// --- Withdraw Command ---

type withdrawCmd struct {
	id int
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `bankctl withdraw -id <id> <amount> <code>

  Withdraws <amount> units of currency <code> from the account.
`
}
func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Account id")
}
func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, code, err := parseAmount(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	return update(func(l *bank.Ledger) error {
		a, err := account(l, c.id)
		if err != nil {
			return err
		}
		if err := a.Withdraw(amount, code); err != nil {
			return err
		}
		fmt.Printf("Withdrew %v %s from account %d\n", amount, code, c.id)
		return nil
	})
}

// --- Transfer Command ---

type transferCmd struct {
	from int
	to   int
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between accounts" }
func (*transferCmd) Usage() string {
	return `bankctl transfer -from <id> -to <id> <amount> <from code> <to code>

  Withdraws <amount> units of <from code> from the source account and
  deposits <amount> units of <to code> into the target account.

Usage Examples:
$ bankctl transfer -from 1 -to 2 200 USD GBP
`
}
func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.from, "from", 0, "Source account id")
	f.IntVar(&c.to, "to", 0, "Target account id")
}
func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	fromCode, toCode := f.Arg(1), f.Arg(2)

	return update(func(l *bank.Ledger) error {
		from, err := account(l, c.from)
		if err != nil {
			return err
		}
		to, err := account(l, c.to)
		if err != nil {
			return err
		}
		if err := from.Transfer(to, amount, fromCode, toCode); err != nil {
			return err
		}
		fmt.Printf("Transferred %v %s from account %d to the %s balance of account %d\n", amount, fromCode, c.from, toCode, c.to)
		return nil
	})
}
