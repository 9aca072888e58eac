package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/coinmon"
	md "github.com/nao1215/markdown"
)

// Markdown renders t as a markdown document.
func Markdown(t *coinmon.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if t.Portfolio {
		doc.H1(fmt.Sprintf("Portfolio in %s", t.Currency))
	} else {
		doc.H1(fmt.Sprintf("Market in %s", t.Currency))
	}

	doc.Table(md.TableSet{
		Header: t.Header,
		Rows:   markdownRows(t.Rows),
	})
	// one paragraph per line, consecutive lines would be joined.
	doc.PlainText(strings.Join(Footer(t), "\n\n"))

	return doc.String()
}

// markdownRows returns the cell texts, gains get an explicit plus sign.
func markdownRows(rows [][]coinmon.Cell) [][]string {
	res := make([][]string, 0, len(rows))
	for _, r := range rows {
		texts := make([]string, 0, len(r))
		for _, c := range r {
			if c.Sign > 0 {
				texts = append(texts, "+"+c.Text)
				continue
			}
			texts = append(texts, c.Text)
		}
		res = append(res, texts)
	}
	return res
}
