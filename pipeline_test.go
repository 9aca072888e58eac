package coinmon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestFilter(t *testing.T) {
	list := records(t, tickerJSON)
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"all", Options{}, []string{"BTC", "ETH", "XRP", "doge"}},
		{"find", Options{Find: []string{"eth", "DOGE"}}, []string{"ETH", "doge"}},
		{"find unknown", Options{Find: []string{"ZZZ"}}, nil},
		{"portfolio", Options{Portfolio: Portfolio{"xrp": decimal.NewFromInt(1)}}, []string{"XRP"}},
		{
			"portfolio wins over find",
			Options{Find: []string{"BTC"}, Portfolio: Portfolio{"eth": decimal.NewFromInt(1)}},
			[]string{"ETH"},
		},
		{"empty portfolio", Options{Portfolio: Portfolio{}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range Filter(list, tt.opts) {
				got = append(got, r.Symbol())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSort_Symbol(t *testing.T) {
	coins := []Coin{{Symbol: "ZCC"}, {Symbol: "AAA"}, {Symbol: "mmm"}}
	Sort(coins, 1, Options{}.SortKeys())
	if diff := cmp.Diff([]string{"AAA", "mmm", "ZCC"}, symbols(coins)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_MarketCap(t *testing.T) {
	coins := []Coin{
		{Symbol: "A", MarketCap: N(5)},
		{Symbol: "B", MarketCap: N(500)},
		{Symbol: "C"},
		{Symbol: "D", MarketCap: N(50)},
		{Symbol: "E"},
	}
	Sort(coins, 6, Options{}.SortKeys())
	if diff := cmp.Diff([]string{"B", "D", "A", "C", "E"}, symbols(coins)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_Unchanged(t *testing.T) {
	for _, rank := range []int{0, 7, 8, 42, -1} {
		coins := []Coin{
			{Symbol: "B", Price: N(1), Balance: N(1)},
			{Symbol: "A", Price: N(3), Balance: N(3)},
			{Symbol: "C", Price: N(2), Balance: N(2)},
		}
		Sort(coins, rank, Options{}.SortKeys())
		if diff := cmp.Diff([]string{"B", "A", "C"}, symbols(coins)); diff != "" {
			t.Errorf("Sort(rank=%d) mismatch (-want +got):\n%s", rank, diff)
		}
	}
}

func TestSort_Portfolio(t *testing.T) {
	opts := Options{Portfolio: Portfolio{}}
	coins := []Coin{
		{Symbol: "A", Balance: N(1), EstimatedValue: N(300)},
		{Symbol: "B", Balance: N(3), EstimatedValue: N(10)},
		{Symbol: "C", Balance: N(2), EstimatedValue: N(20)},
	}
	Sort(coins, 7, opts.SortKeys())
	if diff := cmp.Diff([]string{"B", "C", "A"}, symbols(coins)); diff != "" {
		t.Errorf("Sort(balance) mismatch (-want +got):\n%s", diff)
	}
	Sort(coins, 8, opts.SortKeys())
	if diff := cmp.Diff([]string{"A", "C", "B"}, symbols(coins)); diff != "" {
		t.Errorf("Sort(estimated value) mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_Stable(t *testing.T) {
	coins := []Coin{
		{Symbol: "A", Change24h: N(1)},
		{Symbol: "B", Change24h: N(2)},
		{Symbol: "C", Change24h: N(1)},
		{Symbol: "D", Change24h: N(2)},
	}
	Sort(coins, 4, Options{}.SortKeys())
	if diff := cmp.Diff([]string{"B", "D", "A", "C"}, symbols(coins)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectColumns(t *testing.T) {
	tests := []struct {
		name      string
		requested []int
		width     int
		want      []int
	}{
		{"identity", nil, 7, []int{0, 1, 2, 3, 4, 5, 6}},
		{"reordered", []int{2, 0}, 7, []int{0, 2}},
		{"out of range", []int{9, 3, -1, 7}, 7, []int{3}},
		{"portfolio columns", []int{8, 1}, 9, []int{1, 8}},
		{"duplicates", []int{4, 1, 4}, 7, []int{1, 4}},
		{"all invalid", []int{10, 11}, 3, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SelectColumns(tt.requested, tt.width)); diff != "" {
				t.Errorf("SelectColumns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	if diff := cmp.Diff([]int{2, 0, 5}, ParseColumns("2, 0,x,,5")); diff != "" {
		t.Errorf("ParseColumns() mismatch (-want +got):\n%s", diff)
	}
	if got := ParseColumns(""); len(got) != 0 {
		t.Errorf("ParseColumns(\"\") = %v, want empty", got)
	}
}

func TestNewTable_Specific(t *testing.T) {
	table := NewTable(records(t, tickerJSON), Options{Columns: ParseColumns("2,0")})
	if diff := cmp.Diff([]string{"Rank", "Price (USD)"}, table.Header); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "6437.05"}, texts(table.Rows[0])); diff != "" {
		t.Errorf("Row mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable(records(t, tickerJSON), Options{Find: []string{"ETH", "BTC", "DOGE"}, Rank: 5})

	wantHeader := []string{"Rank", "Coin", "Price (USD)", "Change 1H", "Change 24H", "Change 7D", "Market Cap (USD)"}
	if diff := cmp.Diff(wantHeader, table.Header); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"1", "BTC", "6437.05", "0.03%", "-0.61%", "-3.67%", "111B"},
		{"2", "ETH", "411.2", "-0.2%", NA, "-12.5%", "41.5B"},
		{"4", "doge", "0.002", "1.2%", "5%", NA, "235M"},
	}
	var got [][]string
	for _, r := range table.Rows {
		got = append(got, texts(r))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if s := table.Rows[1][3].Sign; s != -1 {
		t.Errorf("ETH change 1H sign = %d, want -1", s)
	}
	if s := table.Rows[1][4].Sign; s != 0 {
		t.Errorf("ETH change 24H sign = %d, want 0", s)
	}
	if table.Portfolio {
		t.Errorf("Portfolio = true, want false")
	}
}

func TestNewTable_Portfolio(t *testing.T) {
	p, err := DecodePortfolio([]byte(`{"btc": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	list := []Record{{"symbol": "BTC", "rank": "1", "price_usd": "100"}, {"symbol": "ETH", "price_usd": "50"}}
	table := NewTable(list, Options{Portfolio: p, Columns: []int{1, 7, 8}})

	if diff := cmp.Diff([]string{"Coin", "Balance", "Estimated Value (USD)"}, table.Header); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}
	if diff := cmp.Diff([]string{"BTC", "2", "200.00"}, texts(table.Rows[0])); diff != "" {
		t.Errorf("Row mismatch (-want +got):\n%s", diff)
	}
	if got := table.TotalString(); got != "200.00 USD" {
		t.Errorf("TotalString() = %q, want 200.00 USD", got)
	}
}

func TestNewTable_NoMatch(t *testing.T) {
	table := NewTable(records(t, tickerJSON), Options{Find: []string{"NOPE"}})
	if !table.Empty() {
		t.Errorf("Empty() = false, want true")
	}
	if len(table.Header) != 7 {
		t.Errorf("len(Header) = %d, want 7", len(table.Header))
	}
}

func TestOptions_Limit(t *testing.T) {
	tests := []struct {
		opts Options
		want int
		mode Mode
	}{
		{Options{Top: 10}, 10, All},
		{Options{Top: 10, Find: []string{"BTC"}}, ExhaustiveLimit, Find},
		{Options{Top: 10, Portfolio: Portfolio{}}, ExhaustiveLimit, PortfolioMode},
	}
	for _, tt := range tests {
		if got := tt.opts.Limit(); got != tt.want {
			t.Errorf("Limit() = %d, want %d", got, tt.want)
		}
		if got := tt.opts.Mode(); got != tt.mode {
			t.Errorf("Mode() = %v, want %v", got, tt.mode)
		}
	}
}
