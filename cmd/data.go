package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type demoCmd struct {
	force bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "load demonstration entries" }
func (*demoCmd) Usage() string {
	return `cb demo [-f]

  Replaces the ledger with four demonstration entries. A ledger that is not
  empty is only replaced with -f. Ids already issued are never reused.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Replace a ledger that is not empty.")
}

func (c *demoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctrl, closer, err := openController(ctx, false)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	if n := len(ctrl.Entries()); n > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Error: the ledger has %d entries, use -f to replace them.\n", n)
		return subcommands.ExitFailure
	}
	if err := ctrl.LoadDemo(ctx); err != nil {
		return exitStatus(err)
	}
	fmt.Fprintf(output, "Loaded %d demonstration entries\n", len(ctrl.Entries()))
	return subcommands.ExitSuccess
}

type importCmd struct {
	path  string
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a ledger snapshot from a JSON file" }
func (*importCmd) Usage() string {
	return `cb import [-path <jsonpath>] [-f] <file>

  Replaces the ledger with the snapshot found in a JSON file, "-" for stdin.
  The snapshot is located with a JSONPath expression, by default the key the
  web version of the cashbook uses in the browser local storage. Use "$" for
  a file that is a bare snapshot.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", cashbook.DefaultImportPath, "JSONPath of the snapshot in the file.")
	f.BoolVar(&c.force, "f", false, "Replace a ledger that is not empty.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one file.")
		return subcommands.ExitUsageError
	}
	var r io.Reader = stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}
	imported, err := cashbook.ImportSnapshot(r, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	ctrl, closer, err := openController(ctx, false)
	if err != nil {
		return exitStatus(err)
	}
	defer closer()

	if n := len(ctrl.Entries()); n > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Error: the ledger has %d entries, use -f to replace them.\n", n)
		return subcommands.ExitFailure
	}
	if err := ctrl.Import(ctx, imported); err != nil {
		return exitStatus(err)
	}
	fmt.Fprintf(output, "Imported %d entries\n", imported.Len())
	return subcommands.ExitSuccess
}
