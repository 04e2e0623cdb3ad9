package classify

import (
	"time"

	"github.com/nmontano/shopledger/internal/ledger"
)

// SupplierPaymentRecord is a payment against a supplier invoice.
// SupplierName comes from the linked supplier row and may be empty
// when that row was deleted.
type SupplierPaymentRecord struct {
	ID            int64
	SupplierName  string
	InvoiceNumber string
	Amount        string
	Currency      string
	Method        string
	PaidAt        time.Time
}

// SupplierPayment classifies a supplier invoice payment.
func SupplierPayment(rec SupplierPaymentRecord) (ledger.Transaction, error) {
	const cat = ledger.CategorySupplierPayment

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.SupplierName)

	return ledger.Transaction{
		ID:            recordID(rec.ID),
		Date:          rec.PaidAt,
		Amount:        amount,
		Currency:      cur,
		Category:      cat,
		Description:   describe(who, rec.InvoiceNumber),
		Counterparty:  who,
		PaymentMethod: rec.Method,
		DocumentRef:   rec.InvoiceNumber,
	}, nil
}

// SupplyPurchaseRecord is a direct purchase of shop supplies.
type SupplyPurchaseRecord struct {
	ID            int64
	SupplierName  string
	ItemName      string
	Amount        string
	Currency      string
	ReceiptNumber string
	PurchasedAt   time.Time
}

// SupplyPurchase classifies a supply purchase.
func SupplyPurchase(rec SupplyPurchaseRecord) (ledger.Transaction, error) {
	const cat = ledger.CategorySupplyPurchase

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.SupplierName)

	return ledger.Transaction{
		ID:           recordID(rec.ID),
		Date:         rec.PurchasedAt,
		Amount:       amount,
		Currency:     cur,
		Category:     cat,
		Description:  describe(who, rec.ItemName),
		Counterparty: who,
		DocumentRef:  rec.ReceiptNumber,
	}, nil
}
