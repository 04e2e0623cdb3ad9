package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nmontano/shopledger/internal/ledger"
)

type transactionResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description,omitempty"`
	Counterparty  string          `json:"counterparty,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	DocumentRef   string          `json:"document_ref,omitempty"`
}

type bucketResponse struct {
	Total decimal.Decimal       `json:"total"`
	Items []transactionResponse `json:"items"`
}

type categoryResponse struct {
	Category   string         `json:"category"`
	Kind       string         `json:"kind"`
	BOB        bucketResponse `json:"bob"`
	USD        bucketResponse `json:"usd"`
	Incomplete bool           `json:"incomplete"`
}

type totalsResponse struct {
	BOB decimal.Decimal `json:"bob"`
	USD decimal.Decimal `json:"usd"`
}

type diagnosticResponse struct {
	Category string `json:"category"`
	RecordID string `json:"record_id"`
	Error    string `json:"error"`
}

type reportResponse struct {
	Start        string               `json:"start"`
	End          string               `json:"end"`
	Categories   []categoryResponse   `json:"categories"`
	TotalIncome  totalsResponse       `json:"total_income"`
	TotalExpense totalsResponse       `json:"total_expense"`
	Net          totalsResponse       `json:"net"`
	Diagnostics  []diagnosticResponse `json:"diagnostics"`
	Failures     []string             `json:"failures"`
}

func toTransactionList(items []ledger.Transaction) []transactionResponse {
	out := make([]transactionResponse, len(items))

	for i, tx := range items {
		out[i] = transactionResponse{
			ID:            tx.ID,
			Date:          tx.Date.Format(time.DateOnly),
			Amount:        tx.Amount,
			Currency:      string(tx.Currency),
			Description:   tx.Description,
			Counterparty:  tx.Counterparty,
			PaymentMethod: tx.PaymentMethod,
			DocumentRef:   tx.DocumentRef,
		}
	}

	return out
}

func toBucket(b ledger.Bucket) bucketResponse {
	return bucketResponse{Total: b.Total, Items: toTransactionList(b.Items)}
}

func toResponse(rep *ledger.Report) reportResponse {
	categories := make([]categoryResponse, 0, len(ledger.Categories()))

	for _, cat := range ledger.Categories() {
		buckets := rep.Categories[cat]

		categories = append(categories, categoryResponse{
			Category:   string(cat),
			Kind:       string(cat.Kind()),
			BOB:        toBucket(buckets.BOB),
			USD:        toBucket(buckets.USD),
			Incomplete: buckets.Incomplete,
		})
	}

	diagnostics := make([]diagnosticResponse, len(rep.Diagnostics))
	for i, d := range rep.Diagnostics {
		diagnostics[i] = diagnosticResponse{
			Category: string(d.Category),
			RecordID: d.RecordID,
			Error:    d.Err.Error(),
		}
	}

	failures := rep.Failures
	if failures == nil {
		failures = []string{}
	}

	return reportResponse{
		Start:        rep.Range.Start.Format(time.DateOnly),
		End:          rep.Range.End.Format(time.DateOnly),
		Categories:   categories,
		TotalIncome:  totalsResponse{BOB: rep.TotalIncome.BOB, USD: rep.TotalIncome.USD},
		TotalExpense: totalsResponse{BOB: rep.TotalExpense.BOB, USD: rep.TotalExpense.USD},
		Net:          totalsResponse{BOB: rep.Net.BOB, USD: rep.Net.USD},
		Diagnostics:  diagnostics,
		Failures:     failures,
	}
}
