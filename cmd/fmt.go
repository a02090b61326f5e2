package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bankctl fmt

  Validates and formats the ledger file. This command reads all accounts,
  and writes them back with one field group per line and 2 decimals for
  every rate and balance.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d account(s) in %q.\n", l.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
