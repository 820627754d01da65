package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type addCmd struct {
	entryType string
	amount    string
	category  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `cb add -t <income|expense> -a <amount> [-c <category>] <description>

  Records a new entry dated today. The category defaults to "General".

Usage Examples:
$ cb add -t income -a 50000 -c Job Salary
$ cb add -t expense -a 2500 -c Food Groceries
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entryType, "t", "", "Entry type: income or expense.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive number.")
	f.StringVar(&c.category, "c", "", "Category. Defaults to General.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctrl, closer, err := openController(ctx, false)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	form := cashbook.Form{
		Description: strings.Join(f.Args(), " "),
		Amount:      c.amount,
		Type:        c.entryType,
		Category:    c.category,
	}
	if err := ctrl.Submit(ctx, form); err != nil {
		return exitStatus(err)
	}
	e := ctrl.Entries()[0]
	fmt.Fprintf(output, "Recorded entry #%d: %s %s\n", e.ID, e.Description, cashbook.M(e.Signed(), *currency).SignedString())
	return subcommands.ExitSuccess
}

type editCmd struct {
	entryType string
	amount    string
	category  string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an entry" }
func (*editCmd) Usage() string {
	return `cb edit [-t <income|expense>] [-a <amount>] [-c <category>] <id> [<description>]

  Modifies an existing entry. Only the given values change; the id, the date,
  and the creation time are kept.

Usage Examples:
$ cb edit -a 3000 2
$ cb edit 2 Weekly groceries
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entryType, "t", "", "New entry type: income or expense.")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.category, "c", "", "New category.")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing entry id.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid entry id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	ctrl, closer, err := openController(ctx, false)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	if !ctrl.BeginEdit(id) {
		fmt.Fprintf(os.Stderr, "Error: no entry #%d\n", id)
		return subcommands.ExitFailure
	}
	form := ctrl.Form()
	if f.NArg() > 1 {
		form.Description = strings.Join(f.Args()[1:], " ")
	}
	if c.entryType != "" {
		form.Type = c.entryType
	}
	if c.amount != "" {
		form.Amount = c.amount
	}
	if c.category != "" {
		form.Category = c.category
	}
	if err := ctrl.Submit(ctx, form); err != nil {
		return exitStatus(err)
	}
	fmt.Fprintf(output, "Updated entry #%d\n", id)
	return subcommands.ExitSuccess
}

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete entries" }
func (*rmCmd) Usage() string {
	return `cb rm [-y] <id>...

  Deletes entries. Each deletion is confirmed unless -y is set.
  Deleted ids are never reused.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing entry id.")
		return subcommands.ExitUsageError
	}
	var ids []int
	for _, arg := range f.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid entry id %q\n", arg)
			return subcommands.ExitUsageError
		}
		ids = append(ids, id)
	}

	ctrl, closer, err := openController(ctx, c.yes)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	status := subcommands.ExitSuccess
	for _, id := range ids {
		if _, ok := ctrl.Entry(id); !ok {
			fmt.Fprintf(os.Stderr, "Error: no entry #%d\n", id)
			status = subcommands.ExitFailure
			continue
		}
		deleted, err := ctrl.Delete(ctx, id)
		if err != nil {
			return exitStatus(err)
		}
		if deleted {
			fmt.Fprintf(output, "Deleted entry #%d\n", id)
		}
	}
	return status
}
