package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/cashbook/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the cb manual" }
func (*topicCmd) Usage() string {
	return `cb topic [-l] [<topic>...]

  Displays manual pages: entries, reports, storage or import. Without a topic
  it displays the overview, and "*" displays every page.

Usage Examples:
$ cb topic entries
$ cb topic -l
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topic names.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	available, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		for _, topic := range available {
			fmt.Fprintln(output, topic)
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	for _, topic := range topics {
		if topic != "*" && topic != "readme" && !slices.Contains(available, topic) {
			fmt.Fprintf(os.Stderr, "Error: no topic %q, want one of %s\n", topic, strings.Join(available, ", "))
			return subcommands.ExitUsageError
		}
	}

	page, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading the manual: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(page)
	return subcommands.ExitSuccess
}
