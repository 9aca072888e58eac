package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinmon/renderer"
	"github.com/google/subcommands"
)

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	format string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display coin quotes (default command)" }
func (*listCmd) Usage() string {
	return `coinmon [-convert <code>] [-top <n>] [-find <symbols>] [-portfolio[=<file>]] [-specific <columns>] [-rank <column>] [list [-format table|markdown]]

  Displays the top ranked coins, the coins searched for, or the coins held in
  the portfolio.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", formatTable, "Output format: table or markdown")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != formatTable && c.format != formatMarkdown {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	opts, err := options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.As(err, new(usageError)) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	src := source()
	table, err := src.Table(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot fetch quotes from %s: %v\n", src.Host(), err)
		return subcommands.ExitFailure
	}

	if table.Empty() {
		fmt.Fprintf(stdout, "No coin matches the %s filter.\n", opts.Mode())
		return subcommands.ExitSuccess
	}

	switch c.format {
	case formatMarkdown:
		printMarkdown(renderer.Markdown(table))
	default:
		fmt.Fprint(stdout, renderer.Table(table))
	}
	return subcommands.ExitSuccess
}

// ExecuteDefault runs the list command with the global flags only, when no
// subcommand is given.
func ExecuteDefault(ctx context.Context) subcommands.ExitStatus {
	c := &listCmd{format: formatTable}
	return c.Execute(ctx, flag.CommandLine)
}
