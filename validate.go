package coinmon

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

var (
	// ErrInvalidCurrency is returned for convert currencies the API does not support.
	ErrInvalidCurrency = errors.New("unsupported currency")
	// ErrInvalidNumber is returned for numeric options that are not natural numbers.
	ErrInvalidNumber = errors.New("invalid number")
)

// fiats are the national currencies the quote API converts to.
var fiats = []string{
	"AUD", "BRL", "CAD", "CHF", "CLP", "CNY", "CZK", "DKK", "EUR", "GBP", "HKD",
	"HUF", "IDR", "ILS", "INR", "JPY", "KRW", "MXN", "MYR", "NOK", "NZD", "PHP",
	"PKR", "PLN", "RUB", "SEK", "SGD", "THB", "TRY", "TWD", "USD", "ZAR",
}

// cryptos are the coins the quote API converts to.
var cryptos = []string{"BTC", "ETH", "XRP", "LTC", "BCH"}

// Currency describes a supported convert currency.
type Currency struct {
	Code   string
	Symbol string // empty for crypto currencies.
}

// Currencies returns the supported convert currencies, sorted by code.
func Currencies() []Currency {
	var list []Currency
	for _, code := range fiats {
		c := Currency{Code: code}
		if mc := money.GetCurrency(code); mc != nil {
			c.Symbol = mc.Grapheme
		}
		list = append(list, c)
	}
	for _, code := range cryptos {
		list = append(list, Currency{Code: code})
	}
	slices.SortFunc(list, func(a, b Currency) int { return strings.Compare(a.Code, b.Code) })
	return list
}

// ValidateCurrency checks a convert currency code and returns it upper case.
func ValidateCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if slices.Contains(cryptos, code) {
		return code, nil
	}
	// fiats must also be known ISO 4217 codes.
	if slices.Contains(fiats, code) && money.GetCurrency(code) != nil {
		return code, nil
	}
	return "", fmt.Errorf("%w %q, run 'coinmon currencies' for the list", ErrInvalidCurrency, code)
}

// ParseCount parses a natural number option.
func ParseCount(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w for %s: %q must be a positive integer or zero", ErrInvalidNumber, name, value)
	}
	return n, nil
}

// ParseSymbols splits a comma separated list of symbols, dropping empty entries.
func ParseSymbols(list string) []string {
	var symbols []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
