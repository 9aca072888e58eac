package coinmon

import (
	"fmt"
	"strings"
)

const (
	// DefaultCurrency is used when no convert currency is requested.
	DefaultCurrency = "USD"
	// DefaultTop is the default size of the coin universe to fetch.
	DefaultTop = 10
	// ExhaustiveLimit is the number of coins fetched when looking for specific
	// symbols, as they may rank far below the top N.
	ExhaustiveLimit = 2000
)

// Mode tells which records the filter stage keeps.
type Mode int

const (
	All Mode = iota
	Find
	PortfolioMode
)

func (m Mode) String() string {
	switch m {
	case Find:
		return "find"
	case PortfolioMode:
		return "portfolio"
	default:
		return "all"
	}
}

// Options is the run configuration of the pipeline, computed once from the
// command line.
type Options struct {
	Convert   string    // convert currency code, upper case.
	Find      []string  // symbols to look for.
	Top       int       // size of the coin universe.
	Portfolio Portfolio // holdings, nil when not in portfolio mode.
	Columns   []int     // requested column indices, empty for all.
	Rank      int       // sort column index, 0 to keep the source order.
}

// Mode returns the active filter mode. Portfolio wins over find.
func (o Options) Mode() Mode {
	if o.Portfolio != nil {
		return PortfolioMode
	}
	if len(o.Find) > 0 {
		return Find
	}
	return All
}

// Limit returns the number of coins to request from the source.
func (o Options) Limit() int {
	if o.Mode() != All {
		return ExhaustiveLimit
	}
	return o.Top
}

// currency returns the convert currency, defaulting to USD.
func (o Options) currency() string {
	if o.Convert == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(o.Convert)
}

// baseHeader is the number of columns that are always available.
const baseHeader = 7

// Header returns the full header labels in natural order.
func (o Options) Header() []string {
	cur := o.currency()
	header := []string{
		"Rank",
		"Coin",
		fmt.Sprintf("Price (%s)", cur),
		"Change 1H",
		"Change 24H",
		"Change 7D",
		fmt.Sprintf("Market Cap (%s)", cur),
	}
	if o.Mode() == PortfolioMode {
		header = append(header, "Balance", fmt.Sprintf("Estimated Value (%s)", cur))
	}
	return header
}

// Coin field names usable as sort keys.
const (
	FieldSymbol         = "symbol"
	FieldPrice          = "price"
	FieldChange1h       = "percent_change_1h"
	FieldChange24h      = "percent_change_24h"
	FieldChange7d       = "percent_change_7d"
	FieldMarketCap      = "market_cap"
	FieldBalance        = "portfolio_balance"
	FieldEstimatedValue = "portfolio_estimated_value"
)

// SortKeys maps a rank index to the coin field it sorts by. Index 0 is absent
// on purpose: it keeps the source order.
func (o Options) SortKeys() map[int]string {
	keys := map[int]string{
		1: FieldSymbol,
		2: FieldPrice,
		3: FieldChange1h,
		4: FieldChange24h,
		5: FieldChange7d,
		6: FieldMarketCap,
	}
	if o.Mode() == PortfolioMode {
		keys[baseHeader] = FieldBalance
		keys[baseHeader+1] = FieldEstimatedValue
	}
	return keys
}
