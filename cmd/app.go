// Package cmd implements the coinmon command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinmon"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	convert  = flag.String("convert", "", "Currency to express prices in (default $"+EnvCurrency+" or USD). See 'coinmon currencies'.")
	find     = flag.String("find", "", "Comma separated list of coin symbols to look for, like 'btc,eth'")
	top      = flag.String("top", strconv.Itoa(coinmon.DefaultTop), "Number of top ranked coins to fetch")
	specific = flag.String("specific", "", "Comma separated list of column indices to display. See 'coinmon topic columns'.")
	rank     = flag.String("rank", "0", "Index of the column to sort by, 0 keeps the ranking order")
	apiURL   = flag.String("api", "", "Ticker endpoint (default $"+EnvAPI+" or "+coinmon.DefaultAPI+")")
	envFile  = flag.String("env", "", "Configuration file (default coinmon.env in the user config directory)")
	Verbose  = flag.Bool("v", false, "Log HTTP requests and warnings to stderr")

	portfolioFile optionalPath
)

func init() {
	flag.Var(&portfolioFile, "portfolio", "Only list coins held in the portfolio. Use -portfolio=<file> for another file than the default one. See 'coinmon topic portfolio'.")
}

// stdout is where commands print their reports.
var stdout io.Writer = os.Stdout

// Commands are all the coinmon subcommands.
var Commands = []subcommands.Command{
	&listCmd{format: formatTable},
	&currenciesCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Has returns true if name is a coinmon subcommand.
func Has(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

// defaultConfigFile returns a file in the coinmon user configuration directory.
func defaultConfigFile(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "coinmon", name), nil
}

// LoadEnv loads the configuration file into the environment, and sets up logging.
//
// Variables already set in the environment take precedence.
func LoadEnv() error {
	path, explicit := *envFile, *envFile != ""
	if !explicit {
		var err error
		if path, err = defaultConfigFile("coinmon.env"); err != nil {
			path = ""
		}
	}

	var loadErr error
	if path != "" {
		loadErr = godotenv.Load(path)
	}
	if explicit && loadErr != nil {
		return fmt.Errorf("cannot load configuration %q: %w", path, loadErr)
	}

	if v, err := strconv.ParseBool(os.Getenv(EnvVerbose)); err == nil && v {
		*Verbose = true
	}
	if *Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	if loadErr != nil {
		log.Printf("no configuration loaded from %q: %v", path, loadErr)
	}
	return nil
}

// printMarkdown renders markdown for the terminal, or prints it as is if it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Fprint(stdout, md)
}
