package ledger

import (
	"github.com/shopspring/decimal"
)

// Totals carries one figure per currency. The two are independent and
// never combined or converted.
type Totals struct {
	BOB decimal.Decimal
	USD decimal.Decimal
}

// Get returns the figure for the given currency.
func (t Totals) Get(c Currency) decimal.Decimal {
	if c == USD {
		return t.USD
	}

	return t.BOB
}

// Report is the fully reconciled ledger for one reporting window:
// every category's buckets plus grand totals per currency.
type Report struct {
	Range      Range
	Categories map[Category]Buckets

	TotalIncome  Totals
	TotalExpense Totals
	Net          Totals

	// Diagnostics lists source records dropped during classification.
	Diagnostics []RecordError

	// Failures names the sources that could not be fetched. Populated
	// only in partial-result mode; a fully built report has none.
	Failures []string
}

// Drilldown returns the transaction list backing the (category,
// currency) total. It is the same slice the total was computed from,
// so a display of items can never diverge from the displayed total.
func (r *Report) Drilldown(cat Category, cur Currency) []Transaction {
	return r.Categories[cat].Bucket(cur).Items
}

// Summarize folds category buckets into a report with grand totals.
// Net may be negative; a losing period is a valid business state.
func Summarize(categories map[Category]Buckets) *Report {
	income := Totals{BOB: decimal.Zero, USD: decimal.Zero}
	expense := Totals{BOB: decimal.Zero, USD: decimal.Zero}

	for _, cat := range Categories() {
		b := categories[cat]

		switch cat.Kind() {
		case KindIncome:
			income.BOB = income.BOB.Add(b.BOB.Total)
			income.USD = income.USD.Add(b.USD.Total)
		case KindExpense:
			expense.BOB = expense.BOB.Add(b.BOB.Total)
			expense.USD = expense.USD.Add(b.USD.Total)
		}
	}

	return &Report{
		Categories:   categories,
		TotalIncome:  income,
		TotalExpense: expense,
		Net: Totals{
			BOB: income.BOB.Sub(expense.BOB),
			USD: income.USD.Sub(expense.USD),
		},
	}
}
