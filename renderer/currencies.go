package renderer

import (
	"bytes"

	"github.com/etnz/coinmon"
	md "github.com/nao1215/markdown"
)

// CurrenciesMarkdown renders the list of convert currencies.
func CurrenciesMarkdown(list []coinmon.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Currencies")
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		symbol := c.Symbol
		if symbol == "" {
			symbol = "-"
		}
		rows = append(rows, []string{c.Code, symbol})
	}
	doc.Table(md.TableSet{
		Header: []string{"Code", "Symbol"},
		Rows:   rows,
	})
	return doc.String()
}
