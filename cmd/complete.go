package cmd

import (
	"flag"

	"github.com/etnz/cashbook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands registered in c and their flags for
// shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	root.Flags["store"] = predict.Set{"dir", "redis"}
	root.Flags["data-dir"] = predict.Dirs("*")

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{Flags: predictFlags(f)}
	})
	if ls, ok := root.Sub["ls"]; ok {
		ls.Flags["f"] = predict.Set{"all", "income", "expense"}
	}
	for _, name := range []string{"add", "edit"} {
		if sub, ok := root.Sub[name]; ok {
			sub.Flags["t"] = predict.Set{"income", "expense"}
		}
	}
	if sum, ok := root.Sub["summary"]; ok {
		sum.Flags["p"] = predict.Set{"day", "week", "month", "quarter", "year"}
	}
	if topic, ok := root.Sub["topic"]; ok {
		if topics, err := docs.GetAllTopics(); err == nil {
			topic.Args = predict.Set(append(topics, "*"))
		}
	}
	if imp, ok := root.Sub["import"]; ok {
		imp.Args = predict.Files("*.json")
	}
	return root
}

// predictFlags returns a predictor for every flag in f: nothing for boolean
// flags, something for the others.
func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
