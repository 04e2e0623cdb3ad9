package classify

import (
	"time"

	"github.com/nmontano/shopledger/internal/ledger"
)

// OrderPaymentRecord is a payment received against a customer order.
// OrderCode and CustomerName come from the parent order and are empty
// when the order row no longer exists.
type OrderPaymentRecord struct {
	ID           int64
	OrderCode    string
	CustomerName string
	Amount       string
	Currency     string
	Method       string
	Reference    string
	PaidAt       time.Time
}

// OrderPayment classifies an order payment as order income.
func OrderPayment(rec OrderPaymentRecord) (ledger.Transaction, error) {
	const cat = ledger.CategoryOrderIncome

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.CustomerName)

	return ledger.Transaction{
		ID:            recordID(rec.ID),
		Date:          rec.PaidAt,
		Amount:        amount,
		Currency:      cur,
		Category:      cat,
		Description:   describe(who, rec.OrderCode),
		Counterparty:  who,
		PaymentMethod: rec.Method,
		DocumentRef:   rec.Reference,
	}, nil
}
