package coinmon

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders coins in place by the field keys[rank].
//
// Symbols are sorted alphabetically, numbers in decreasing order with NA
// last. An unknown rank keeps the source order.
func Sort(coins []Coin, rank int, keys map[int]string) {
	key, ok := keys[rank]
	if rank == 0 || !ok {
		return
	}
	if key == FieldSymbol {
		col := collate.New(language.Und)
		slices.SortStableFunc(coins, func(a, b Coin) int {
			return col.CompareString(a.Symbol, b.Symbol)
		})
		return
	}
	slices.SortStableFunc(coins, func(a, b Coin) int {
		return b.Field(key).Cmp(a.Field(key))
	})
}
