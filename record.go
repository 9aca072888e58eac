package coinmon

import (
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Record is a single coin as returned by the quote API.
//
//	{
//	    "id": "bitcoin",
//	    "name": "Bitcoin",
//	    "symbol": "BTC",
//	    "rank": "1",
//	    "price_usd": "6437.05",
//	    "24h_volume_usd": "4060620000.0",
//	    "market_cap_usd": "110638445233",
//	    "available_supply": "17187625.0",
//	    "total_supply": "17187625.0",
//	    "max_supply": "21000000.0",
//	    "percent_change_1h": "0.03",
//	    "percent_change_24h": "-0.61",
//	    "percent_change_7d": "-3.67",
//	    "last_updated": "1533145111"
//	}
//
// Numbers may come either as strings or JSON numbers.
type Record map[string]any

// Get returns the raw value of a field, or nil if it does not exist.
func (r Record) Get(field string) any {
	// bracket notation because some keys start with a digit, like "24h_volume_usd".
	path := "$[" + strconv.Quote(field) + "]"
	v, err := jsonpath.Get(path, map[string]any(r))
	if err != nil {
		return nil
	}
	return v
}

// String returns a text field, or "" if it is missing or not a string.
func (r Record) String(field string) string {
	s, _ := r.Get(field).(string)
	return s
}

// Number returns a numeric field, see ParseNumber.
func (r Record) Number(field string) Number { return ParseNumber(r.Get(field)) }

// Symbol returns the coin symbol.
func (r Record) Symbol() string { return r.String("symbol") }

// currencyField returns the name of a field that depends on the convert currency,
// like "price_usd".
func currencyField(prefix, currency string) string {
	return prefix + "_" + strings.ToLower(currency)
}
