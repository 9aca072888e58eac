package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/coinmon/cmd"
	"github.com/google/subcommands"
)

func main() {
	os.Exit(run())
}

func run() int {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)
	flag.Parse()

	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := flag.Args()
	if len(args) == 0 {
		return int(cmd.ExecuteDefault(ctx))
	}
	if !cmd.Has(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			return code
		}
		if err := cmd.UnknownCommand(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return int(subcommands.ExitUsageError)
		}
	}
	return int(commander.Execute(ctx))
}
