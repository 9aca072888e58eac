package coinmon

import (
	"encoding/json"
	"testing"
)

// records decodes a JSON array of records the same way the Source does.
func records(t *testing.T, content string) []Record {
	t.Helper()
	var list []Record
	if err := json.Unmarshal([]byte(content), &list); err != nil {
		t.Fatalf("invalid test records: %v", err)
	}
	return list
}

// symbols returns the symbols of coins, in order.
func symbols(coins []Coin) []string {
	var res []string
	for _, c := range coins {
		res = append(res, c.Symbol)
	}
	return res
}

// texts returns the text of cells.
func texts(cells []Cell) []string {
	var res []string
	for _, c := range cells {
		res = append(res, c.Text)
	}
	return res
}

const tickerJSON = `[
  {"name": "Bitcoin", "symbol": "BTC", "rank": "1", "price_usd": "6437.05", "market_cap_usd": "110638445233",
   "24h_volume_usd": "4060620000.0", "percent_change_1h": "0.03", "percent_change_24h": "-0.61", "percent_change_7d": "-3.67",
   "last_updated": "1533145111"},
  {"name": "Ethereum", "symbol": "ETH", "rank": "2", "price_usd": "411.2", "market_cap_usd": "41497218524",
   "percent_change_1h": "-0.2", "percent_change_24h": "0", "percent_change_7d": "-12.5"},
  {"name": "Ripple", "symbol": "XRP", "rank": "3", "price_usd": "0.43", "market_cap_usd": null,
   "percent_change_1h": "0.1", "percent_change_24h": "2.4"},
  {"name": "Dogecoin", "symbol": "doge", "rank": "4", "price_usd": "0.002", "market_cap_usd": "234567890",
   "percent_change_1h": 1.2, "percent_change_24h": 5, "percent_change_7d": 0}
]`
