// Package renderer turns cashbook view models into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	md "github.com/nao1215/markdown"
)

// View renders the full page: summary, then the entry list.
func View(v cashbook.ViewModel) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Cashbook")
	if v.Mode == cashbook.Editing {
		doc.PlainText(fmt.Sprintf("Editing entry #%d.", v.EditingID))
	}
	return doc.String() + "\n" + Summary(v.Summary) + "\n" + Entries(v)
}

// Summary renders the totals. A negative balance is flagged.
func Summary(s cashbook.Summary) string { return summary("Summary", s) }

// PeriodSummary renders the totals of the entries dated within r.
func PeriodSummary(r date.Range, s cashbook.Summary) string {
	return summary(fmt.Sprintf("Summary for %s", r), s)
}

func summary(title string, s cashbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	balance := s.Balance.String()
	if s.Negative() {
		balance += " (negative)"
	}
	doc.Table(md.TableSet{
		Header: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Income", s.Income.String()},
			{"Expenses", s.Expense.String()},
			{"Balance", balance},
		},
	})
	return doc.String()
}

// Entries renders the rows of the view, or the empty state message.
func Entries(v cashbook.ViewModel) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if v.Filter == cashbook.FilterAll {
		doc.H2("Entries")
	} else {
		doc.H2(fmt.Sprintf("Entries (%s)", v.Filter))
	}

	if v.Empty != cashbook.EmptyNone {
		title, hint := v.EmptyMessage()
		doc.PlainText(title + ". " + hint)
		return doc.String()
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Date.String(),
			r.Description,
			r.Category,
			r.Signed,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Description", "Category", "Amount"},
		Rows:   rows,
	})
	return doc.String()
}
