package coinmon

import "strings"

// Filter returns the records to display according to the options mode.
//
// In portfolio mode only held coins are kept, in find mode only the coins
// listed, otherwise everything. Symbols are matched case insensitively.
func Filter(records []Record, opts Options) []Record {
	var keep func(symbol string) bool
	switch opts.Mode() {
	case PortfolioMode:
		keep = func(symbol string) bool {
			_, ok := opts.Portfolio.Holding(symbol)
			return ok
		}
	case Find:
		wanted := make(map[string]bool, len(opts.Find))
		for _, s := range opts.Find {
			wanted[strings.ToLower(s)] = true
		}
		keep = func(symbol string) bool { return wanted[strings.ToLower(symbol)] }
	default:
		return records
	}

	var result []Record
	for _, r := range records {
		if keep(r.Symbol()) {
			result = append(result, r)
		}
	}
	return result
}
