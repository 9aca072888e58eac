package coinmon

import "time"

// Cell is a displayed value. Sign is set for changes so that renderers can
// highlight gains and losses.
type Cell struct {
	Text string
	Sign int
}

// Table is the result of the pipeline, ready to be rendered.
type Table struct {
	Header   []string
	Rows     [][]Cell
	Currency string

	// Portfolio reports carry the sum of the estimated values.
	Portfolio bool
	Total     Number

	Source    string    // where the quotes come from.
	FetchedAt time.Time // when they were fetched.
}

// Empty returns true if no coin matched.
func (t *Table) Empty() bool { return len(t.Rows) == 0 }

// NewTable runs the pipeline on records: filter, normalize, sort and project.
func NewTable(records []Record, opts Options) *Table {
	filtered := Filter(records, opts)
	coins := make([]Coin, 0, len(filtered))
	for _, r := range filtered {
		coins = append(coins, Normalize(r, opts))
	}
	Sort(coins, opts.Rank, opts.SortKeys())

	header := opts.Header()
	cols := SelectColumns(opts.Columns, len(header))
	t := &Table{
		Header:    Project(header, cols),
		Currency:  opts.currency(),
		Portfolio: opts.Mode() == PortfolioMode,
	}
	for _, c := range coins {
		t.Rows = append(t.Rows, Project(row(c, t.Portfolio), cols))
		t.Total = t.Total.Add(c.EstimatedValue)
	}
	return t
}

// row returns the coin cells in natural header order.
func row(c Coin, portfolio bool) []Cell {
	cells := []Cell{
		{Text: c.Rank.String()},
		{Text: c.Symbol},
		{Text: c.Price.String()},
		{Text: c.Change1h.Percent(), Sign: c.Change1h.Sign()},
		{Text: c.Change24h.Percent(), Sign: c.Change24h.Sign()},
		{Text: c.Change7d.Percent(), Sign: c.Change7d.Sign()},
		{Text: c.MarketCap.Compact()},
	}
	if portfolio {
		cells = append(cells,
			Cell{Text: c.Balance.String()},
			Cell{Text: c.EstimatedValue.Fixed(2)},
		)
	}
	return cells
}

// TotalString returns the estimated total value, like "200.00 USD".
func (t *Table) TotalString() string {
	return N(t.Total.Decimal()).Fixed(2) + " " + t.Currency
}
