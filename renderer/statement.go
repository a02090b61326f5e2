package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bank"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders every account of l, in insertion order, as a
// markdown statement.
func StatementMarkdown(l *bank.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Statement")
	doc.PlainText(fmt.Sprintf("%d account(s).", l.Len()))

	for a := range l.Accounts() {
		accountMarkdown(doc, a)
	}
	return doc.String()
}

// AccountMarkdown renders a single account as a markdown section.
func AccountMarkdown(a *bank.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	accountMarkdown(doc, a)
	return doc.String()
}

func accountMarkdown(doc *md.Markdown, a *bank.Account) {
	doc.H2(fmt.Sprintf("Account %d: %s", a.ID(), a.Owner()))

	var rows [][]string
	var total float64
	for c := range a.Currencies() {
		base, err := a.BaseBalance(c.Code())
		if err != nil {
			continue
		}
		total += base
		rows = append(rows, []string{
			c.Code(),
			formatBase(c.Rate()),
			formatMoney(c.FromBase(base), c.Code()),
			formatBase(base),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No currency attached.")
		return
	}
	doc.Table(md.TableSet{
		Header: []string{"Currency", "Rate", "Balance", "Base Balance"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total in base units: %s", formatBase(total)))
}
