package coinmon

import (
	"slices"
	"strconv"
	"strings"
)

// ParseColumns parses a comma separated list of column indices. Invalid
// entries are dropped.
func ParseColumns(list string) []int {
	var cols []int
	for _, s := range strings.Split(list, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		cols = append(cols, i)
	}
	return cols
}

// SelectColumns returns the column indices to display out of width columns.
//
// Out of range indices are dropped, and the rest is returned in ascending
// order whatever the requested order. If nothing remains all columns are
// selected.
func SelectColumns(requested []int, width int) []int {
	var cols []int
	for _, i := range requested {
		if i >= 0 && i < width {
			cols = append(cols, i)
		}
	}
	slices.Sort(cols)
	cols = slices.Compact(cols)
	if len(cols) == 0 {
		cols = make([]int, width)
		for i := range cols {
			cols[i] = i
		}
	}
	return cols
}

// Project returns the elements of row at cols.
func Project[T any](row []T, cols []int) []T {
	res := make([]T, 0, len(cols))
	for _, i := range cols {
		res = append(res, row[i])
	}
	return res
}
