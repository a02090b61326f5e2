package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/bank"
	"github.com/etnz/bank/rates"
	"github.com/google/subcommands"
)

// --- Open Command ---

type openCmd struct {
	id    int
	owner string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new account in the ledger" }
func (*openCmd) Usage() string {
	return `bankctl open -id <id> -owner <owner> [<code>=<rate>...]

  Opens a new account and attaches the given currencies with a zero balance.
  The owner must be a single word.

Usage Examples:
$ bankctl open -id 1 -owner Alice USD=1 EUR=1.1
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Account id, unique in the ledger")
	f.StringVar(&c.owner, "owner", "", "Account owner, a single word")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	var currencies []bank.CurrencyRate
	for _, arg := range f.Args() {
		r, err := parseRateArg(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing currency: %v\n", err)
			return subcommands.ExitUsageError
		}
		currencies = append(currencies, r)
	}

	return update(func(l *bank.Ledger) error {
		a := bank.NewAccount(c.id, c.owner)
		for _, r := range currencies {
			if err := a.AddCurrency(r); err != nil {
				return err
			}
		}
		if err := l.AddAccount(a); err != nil {
			return err
		}
		fmt.Printf("Opened account %d for %s\n", c.id, c.owner)
		return nil
	})
}

// parseRateArg parses "<code>=<rate>".
func parseRateArg(arg string) (bank.CurrencyRate, error) {
	code, rate, ok := strings.Cut(arg, "=")
	if !ok {
		return bank.CurrencyRate{}, fmt.Errorf("%q is not <code>=<rate>", arg)
	}
	v, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return bank.CurrencyRate{}, fmt.Errorf("invalid rate in %q: %w", arg, err)
	}
	return bank.NewCurrencyRate(code, v)
}

// --- Currency Command ---

type currencyCmd struct {
	id     int
	rate   float64
	json   string
	path   string
	invert bool
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "attach a currency to an account" }
func (*currencyCmd) Usage() string {
	return `bankctl currency -id <id> (-rate <rate> | -json <file|url> -path <jsonpath> [-invert]) <code>

  Attaches a currency to an account with a zero balance. The rate is the
  number of base units for one unit of the currency. It is either given with
  -rate, or read from a JSON document with a JSONPath expression.

Usage Examples:
$ bankctl currency -id 1 -rate 1.3 GBP
$ bankctl currency -id 1 -json https://example.com/latest.json -path '$.rates.GBP' -invert GBP
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Account id")
	f.Float64Var(&c.rate, "rate", 0, "Base units for one unit of the currency")
	f.StringVar(&c.json, "json", "", "JSON document (file or http url) holding the rate")
	f.StringVar(&c.path, "path", "", "JSONPath expression locating the rate in -json")
	f.BoolVar(&c.invert, "invert", false, "The -json value is units of the currency per base unit")
}

func (c *currencyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || (c.json == "") == (c.rate == 0) || (c.json != "" && c.path == "") {
		f.Usage()
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)

	var r bank.CurrencyRate
	var err error
	if c.json != "" {
		r, err = rates.Rate(ctx, http.DefaultClient, code, c.json, c.path, c.invert)
	} else {
		r, err = bank.NewCurrencyRate(code, c.rate)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	return update(func(l *bank.Ledger) error {
		a, err := account(l, c.id)
		if err != nil {
			return err
		}
		if err := a.AddCurrency(r); err != nil {
			return err
		}
		fmt.Printf("Attached %s to account %d\n", r, c.id)
		return nil
	})
}
