package cmd

import (
	"flag"
	"log"

	"github.com/etnz/bank/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands and flags of c for shell completion.
//
// Global flags are read from flag.CommandLine, so Completion must be called
// after every flag is defined.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		f := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(f)
		root.Sub[sc.Name()] = &complete.Command{Flags: predictFlags(f)}
	})
	if topic, ok := root.Sub["topic"]; ok {
		topic.Args = topicNames()
	}
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBoolFlag(fl):
			flags[fl.Name] = predict.Nothing
		case fl.Name == "ledger-file" || fl.Name == "o":
			flags[fl.Name] = predict.Files("*.txt")
		case fl.Name == "json":
			flags[fl.Name] = predict.Files("*.json")
		default:
			flags[fl.Name] = predict.Set{}
		}
	})
	return flags
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// topicNames lists the topics accepted by the topic command.
func topicNames() predict.Set {
	names, err := docs.All()
	if err != nil {
		log.Printf("cannot list topics: %v", err)
	}
	return append(predict.Set{"readme"}, names...)
}
