package cmd

import (
	"context"
	"flag"

	"github.com/etnz/coinmon"
	"github.com/etnz/coinmon/renderer"
	"github.com/google/subcommands"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the currencies prices can be converted to" }
func (*currenciesCmd) Usage() string {
	return `coinmon currencies

  Lists the codes accepted by -convert.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (c *currenciesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.CurrenciesMarkdown(coinmon.Currencies()))
	return subcommands.ExitSuccess
}
