package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/coinmon"
)

// Environment variables, read from the environment or the configuration file.
const (
	EnvAPI           = "COINMON_API_URL"
	EnvAPIPath       = "COINMON_API_PATH"
	EnvCurrency      = "COINMON_CURRENCY"
	EnvPortfolioFile = "COINMON_PORTFOLIO_FILE"
	EnvVerbose       = "COINMON_VERBOSE"
)

// firstOf returns the first non empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// usageError is an invalid command line value.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// options validates the global flags and returns the pipeline options.
//
// Invalid flags are reported as a usageError, before anything is fetched.
func options() (coinmon.Options, error) {
	var opts coinmon.Options
	var err error

	opts.Convert, err = coinmon.ValidateCurrency(firstOf(*convert, os.Getenv(EnvCurrency), coinmon.DefaultCurrency))
	if err != nil {
		return opts, usageError{err}
	}
	if opts.Top, err = coinmon.ParseCount("-top", *top); err != nil {
		return opts, usageError{err}
	}
	if opts.Rank, err = coinmon.ParseCount("-rank", *rank); err != nil {
		return opts, usageError{err}
	}
	opts.Find = coinmon.ParseSymbols(*find)
	opts.Columns = coinmon.ParseColumns(*specific)

	if portfolioFile.set {
		path, err := portfolioPath()
		if err != nil {
			return opts, err
		}
		if opts.Portfolio, err = coinmon.LoadPortfolio(path); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// portfolioPath returns the portfolio file to use.
func portfolioPath() (string, error) {
	if path := firstOf(portfolioFile.path, os.Getenv(EnvPortfolioFile)); path != "" {
		return path, nil
	}
	path, err := coinmon.DefaultPortfolioPath()
	if err != nil {
		return "", fmt.Errorf("no portfolio file: %w", err)
	}
	return path, nil
}

// source returns the configured quote source.
func source() *coinmon.Source {
	return &coinmon.Source{
		API:  firstOf(*apiURL, os.Getenv(EnvAPI), coinmon.DefaultAPI),
		Path: os.Getenv(EnvAPIPath),
	}
}
