package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bank/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Complete exits when invoked by the shell completion machinery.
	cmd.Completion(commander).Complete(name)

	flag.Parse()
	cmd.SetupLogging()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if ok, code := cmd.RunExtension(sub, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}
