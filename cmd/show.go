package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	id       int
	markdown bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display account balances" }
func (*showCmd) Usage() string {
	return `bankctl show [-id <id>] [-md]

  Displays every account of the ledger, or only the account -id, with its
  balance in each attached currency. With -md a markdown statement is
  rendered instead.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", -1, "Show only this account")
	f.BoolVar(&c.markdown, "md", false, "Render a markdown statement")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.id < 0 {
		if c.markdown {
			printMarkdown(renderer.StatementMarkdown(l))
			return subcommands.ExitSuccess
		}
		if err := l.DisplayAllAccounts(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	a, err := account(l, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.markdown {
		printMarkdown(renderer.AccountMarkdown(a))
		return subcommands.ExitSuccess
	}
	display(a)
	return subcommands.ExitSuccess
}

func display(a *bank.Account) {
	for _, line := range a.Display() {
		fmt.Println(line)
	}
}
