package coinmon

import (
	"time"
)

// Coin is a typed view of a Record in the convert currency.
type Coin struct {
	Name   string
	Symbol string

	Rank            Number
	Price           Number
	MarketCap       Number
	Volume24h       Number
	AvailableSupply Number
	TotalSupply     Number
	MaxSupply       Number
	Change1h        Number // in percent
	Change24h       Number
	Change7d        Number
	LastUpdated     Number // unix seconds

	// Portfolio mode only.
	Balance        Number
	EstimatedValue Number
}

// Normalize converts a record into a Coin. Missing and zero values are NA.
func Normalize(r Record, opts Options) Coin {
	cur := opts.currency()
	c := Coin{
		Name:            r.String("name"),
		Symbol:          r.Symbol(),
		Rank:            r.Number("rank"),
		Price:           r.Number(currencyField("price", cur)),
		MarketCap:       r.Number(currencyField("market_cap", cur)),
		Volume24h:       r.Number(currencyField("24h_volume", cur)),
		AvailableSupply: r.Number("available_supply"),
		TotalSupply:     r.Number("total_supply"),
		MaxSupply:       r.Number("max_supply"),
		Change1h:        r.Number(FieldChange1h),
		Change24h:       r.Number(FieldChange24h),
		Change7d:        r.Number(FieldChange7d),
		LastUpdated:     r.Number("last_updated"),
	}
	if opts.Mode() == PortfolioMode {
		if amount, ok := opts.Portfolio.Holding(c.Symbol); ok {
			c.Balance = N(amount)
			c.EstimatedValue = c.Balance.Mul(c.Price)
		}
	}
	return c
}

// Field returns a numeric field by its sort key name.
func (c Coin) Field(name string) Number {
	switch name {
	case FieldPrice:
		return c.Price
	case FieldChange1h:
		return c.Change1h
	case FieldChange24h:
		return c.Change24h
	case FieldChange7d:
		return c.Change7d
	case FieldMarketCap:
		return c.MarketCap
	case FieldBalance:
		return c.Balance
	case FieldEstimatedValue:
		return c.EstimatedValue
	default:
		return Number{}
	}
}

// Updated returns the last update time of the quote, zero if unknown.
func (c Coin) Updated() time.Time {
	if c.LastUpdated.IsNA() {
		return time.Time{}
	}
	return time.Unix(c.LastUpdated.Decimal().IntPart(), 0)
}
