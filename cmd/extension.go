package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// extensionEnv returns the configuration passed to extensions, as environment
// variables.
func extensionEnv() []string {
	src := source()
	env := []string{
		EnvAPI + "=" + src.API,
		EnvCurrency + "=" + firstOf(*convert, os.Getenv(EnvCurrency)),
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
	if portfolioFile.set {
		if path, err := portfolioPath(); err == nil {
			env = append(env, EnvPortfolioFile+"="+path)
		}
	}
	return env
}

// RunExtension attempts to find and execute an external coinmon-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "coinmon-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	// later values win, so global flags override the inherited environment.
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
