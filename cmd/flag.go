package cmd

import (
	"fmt"
	"strconv"
)

// optionalPath is a flag that can be used alone, like a boolean, or with a
// value: "-portfolio" or "-portfolio=file.json".
type optionalPath struct {
	set  bool
	path string
}

func (p *optionalPath) IsBoolFlag() bool { return true }

func (p *optionalPath) String() string {
	if p == nil {
		return ""
	}
	return p.path
}

func (p *optionalPath) Set(value string) error {
	if b, err := strconv.ParseBool(value); err == nil {
		p.set, p.path = b, ""
		return nil
	}
	p.set, p.path = true, value
	return nil
}

// UnknownCommand explains why name, found in place of a command, is not one.
//
// "-portfolio my.json" is parsed as the bare flag followed by the "my.json"
// command, it returns a hint toward "-portfolio=my.json" in that case, and nil
// otherwise.
func UnknownCommand(name string) error {
	if !portfolioFile.set || portfolioFile.path != "" {
		return nil
	}
	return fmt.Errorf("unknown command %q: use -portfolio=%s to read the portfolio from that file", name, name)
}
