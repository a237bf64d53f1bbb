package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yhlin/vocabsheet/internal/domain"
)

// dueColumns is the compact view used for review listings.
var dueColumns = []string{
	domain.FieldWord, domain.FieldMeaning, domain.FieldExample,
	domain.FieldSynonyms, domain.FieldTopic, domain.FieldReviewDate,
}

// RenderDue writes the compact review listing.
func RenderDue(w io.Writer, records []domain.Record) {
	RenderTable(w, records, dueColumns)
}

// RenderTable writes records as an aligned text table with the given
// column subset. Cell values longer than 40 runes are elided so the
// table stays readable on a terminal.
func RenderTable(w io.Writer, records []domain.Record, columns []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, rec := range records {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, elide(rec.Field(col), 40))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func elide(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
