package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

// lsCmd holds the flags for the 'ls' subcommand.
type lsCmd struct {
	filter string
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list entries with the summary" }
func (*lsCmd) Usage() string {
	return `cb ls [-f <all|income|expense>]

  Displays the summary of all entries, then the entries matching the filter,
  most recent first. The summary always covers every entry.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "f", "all", "Filter entries: all, income or expense.")
}

func (c *lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := cashbook.ParseFilterMode(c.filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing filter: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctrl, closer, err := openController(ctx, false)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	ctrl.SetFilter(mode)
	printMarkdown(renderer.View(ctrl.View()))
	return subcommands.ExitSuccess
}

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total income, total expenses and balance" }
func (*summaryCmd) Usage() string {
	return `cb summary [-p <period>] [-d <date>]

  Displays the total income, the total expenses and the balance of all
  entries, or of the entries dated within a period (day, week, month,
  quarter or year) containing the given date, today by default.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Only count entries of this period: day, week, month, quarter or year.")
	f.StringVar(&c.date, "d", "", "A date in the period, today by default.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Today()
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ctrl, closer, err := openController(ctx, false)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	if c.period == "" {
		printMarkdown(renderer.Summary(ctrl.View().Summary))
		return subcommands.ExitSuccess
	}

	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	r := period.Range(on)
	inRange := cashbook.InRange(r)
	var entries []cashbook.Entry
	for _, e := range ctrl.Entries() {
		if inRange(e) {
			entries = append(entries, e)
		}
	}
	printMarkdown(renderer.PeriodSummary(r, cashbook.Summarize(entries, *currency)))
	return subcommands.ExitSuccess
}
