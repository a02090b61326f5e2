// Package cmd implements the CLI application to manage a ledger file.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

const (
	EnvLedgerFile  = "BANK_LEDGER_FILE"
	EnvMaxAccounts = "BANK_MAX_ACCOUNTS"
	EnvVerbose     = "BANK_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", envString(EnvLedgerFile, "accounts.txt"), "Path to the ledger file")
var maxAccounts = flag.Int("max-accounts", envInt(EnvMaxAccounts, bank.DefaultCapacity), "Maximum number of accounts in the ledger, 0 for no limit")

// Verbose turns on diagnostic logging.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose logging")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&openCmd{}, "accounts")
	c.Register(&currencyCmd{}, "accounts")
	c.Register(&showCmd{}, "accounts")
	c.Register(&fmtCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")

	c.Register(&topicCmd{}, "help")
	c.Register(&demoCmd{}, "help")
}

// SetupLogging applies the -v flag to the standard logger.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("bankctl: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// DecodeLedger loads the app ledger file. A missing file is an empty ledger.
func DecodeLedger() (*bank.Ledger, error) {
	l := bank.NewLedger()
	l.SetCapacity(*maxAccounts)
	err := l.LoadAccountsFromFile(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, starting with an empty ledger", *ledgerFile)
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d account(s) from %q", l.Len(), *ledgerFile)
	return l, nil
}

// EncodeLedger saves l into the app ledger file.
func EncodeLedger(l *bank.Ledger) error {
	if err := l.SaveAccountsToFile(*ledgerFile); err != nil {
		return err
	}
	log.Printf("saved %d account(s) to %q", l.Len(), *ledgerFile)
	return nil
}

// update loads the ledger, applies f and saves the ledger if f succeeded.
func update(f func(l *bank.Ledger) error) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := f(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// account returns the account id of l or an error naming the ledger file.
func account(l *bank.Ledger, id int) (*bank.Account, error) {
	a := l.Account(id)
	if a == nil {
		return nil, fmt.Errorf("no account %d in %q", id, *ledgerFile)
	}
	return a, nil
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Print(md)
}

func envString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", name, v, err)
		return def
	}
	return n
}

func envBool(name string) bool {
	b, _ := strconv.ParseBool(os.Getenv(name))
	return b
}
