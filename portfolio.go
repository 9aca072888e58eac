package coinmon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Portfolio maps a lower case coin symbol to the amount held.
//
// It is stored as a JSON object:
//
//	{
//	    "btc": 0.5,
//	    "ETH": "12.25"
//	}
type Portfolio map[string]decimal.Decimal

// DefaultPortfolioPath returns the portfolio file in the user config directory.
func DefaultPortfolioPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the user config directory: %w", err)
	}
	return filepath.Join(dir, "coinmon", "portfolio.json"), nil
}

// LoadPortfolio reads a portfolio file.
func LoadPortfolio(path string) (Portfolio, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio %q: %w", path, err)
	}
	p, err := DecodePortfolio(content)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio %q: %w", path, err)
	}
	return p, nil
}

// DecodePortfolio decodes a portfolio from its JSON content. Symbols are case
// insensitive.
func DecodePortfolio(content []byte) (Portfolio, error) {
	var raw map[string]decimal.Decimal
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("not a JSON object")
	}
	p := make(Portfolio, len(raw))
	for symbol, amount := range raw {
		p[strings.ToLower(symbol)] = amount
	}
	return p, nil
}

// Holding returns the amount held for a symbol.
func (p Portfolio) Holding(symbol string) (decimal.Decimal, bool) {
	amount, ok := p[strings.ToLower(symbol)]
	return amount, ok
}
