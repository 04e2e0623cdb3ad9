// Package export renders built ledger reports for hand-off to
// spreadsheet and print collaborators. It owns no formatting state
// beyond what a single report carries.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nmontano/shopledger/internal/ledger"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// WriteCSV writes the summary block followed by the per-category
// transaction detail. The detail rows are taken straight from the
// report's drill-down lists, so exported rows always add up to the
// exported totals.
func (s *Service) WriteCSV(w io.Writer, rep *ledger.Report) error {
	cw := csv.NewWriter(w)

	write := func(rec ...string) {
		// csv.Writer defers errors to Flush; collected there.
		_ = cw.Write(rec)
	}

	write("Report", rep.Range.Start.Format(time.DateOnly), rep.Range.End.Format(time.DateOnly))
	write("")
	write("Category", "Kind", "Total Bs", "Total $us", "Status")

	for _, cat := range ledger.Categories() {
		buckets := rep.Categories[cat]

		status := "ok"
		if buckets.Incomplete {
			status = "incomplete"
		}

		write(cat.Label(), string(cat.Kind()),
			buckets.BOB.Total.StringFixed(2), buckets.USD.Total.StringFixed(2), status)
	}

	write("")
	write("Total Income", "", rep.TotalIncome.BOB.StringFixed(2), rep.TotalIncome.USD.StringFixed(2), "")
	write("Total Expense", "", rep.TotalExpense.BOB.StringFixed(2), rep.TotalExpense.USD.StringFixed(2), "")
	write("Net", "", rep.Net.BOB.StringFixed(2), rep.Net.USD.StringFixed(2), "")

	for _, cat := range ledger.Categories() {
		bob := rep.Drilldown(cat, ledger.BOB)
		usd := rep.Drilldown(cat, ledger.USD)

		if len(bob)+len(usd) == 0 {
			continue
		}

		write("")
		write(cat.Label())
		write("Date", "Description", "Counterparty", "Amount", "Currency", "Method", "Reference")

		for _, items := range [][]ledger.Transaction{bob, usd} {
			for _, tx := range items {
				write(
					tx.Date.Format(time.DateOnly),
					tx.Description,
					tx.Counterparty,
					tx.Amount.StringFixed(2),
					string(tx.Currency),
					tx.PaymentMethod,
					tx.DocumentRef,
				)
			}
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing report csv: %w", err)
	}

	return nil
}

// Summary produces the plain-text digest sent along with exports.
func (s *Service) Summary(rep *ledger.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Ledger %s to %s\n",
		rep.Range.Start.Format(time.DateOnly), rep.Range.End.Format(time.DateOnly))
	fmt.Fprintf(&sb, "Income:  Bs %s | $us %s\n",
		rep.TotalIncome.BOB.StringFixed(2), rep.TotalIncome.USD.StringFixed(2))
	fmt.Fprintf(&sb, "Expense: Bs %s | $us %s\n",
		rep.TotalExpense.BOB.StringFixed(2), rep.TotalExpense.USD.StringFixed(2))
	fmt.Fprintf(&sb, "Net:     Bs %s | $us %s\n",
		rep.Net.BOB.StringFixed(2), rep.Net.USD.StringFixed(2))

	if len(rep.Failures) > 0 {
		fmt.Fprintf(&sb, "Unavailable sources: %s\n", strings.Join(rep.Failures, ", "))
	}

	if len(rep.Diagnostics) > 0 {
		fmt.Fprintf(&sb, "Dropped records: %d\n", len(rep.Diagnostics))
	}

	return sb.String()
}
