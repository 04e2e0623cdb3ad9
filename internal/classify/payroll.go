package classify

import (
	"fmt"
	"time"

	"github.com/nmontano/shopledger/internal/ledger"
)

// Payroll-family sources are paid in Bolivianos; their currency field
// is frequently blank in the source data and resolves to the category
// default instead of being rejected as ambiguous.

// PersonnelPaymentRecord is a one-off payment to a staff member
// outside the regular payroll run.
type PersonnelPaymentRecord struct {
	ID           int64
	EmployeeName string
	Concept      string
	Amount       string
	Currency     string
	Method       string
	PaidAt       time.Time
}

// PersonnelPayment classifies a one-off personnel payment.
func PersonnelPayment(rec PersonnelPaymentRecord) (ledger.Transaction, error) {
	const cat = ledger.CategoryPersonnelPayment

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.EmployeeName)

	return ledger.Transaction{
		ID:            recordID(rec.ID),
		Date:          rec.PaidAt,
		Amount:        amount,
		Currency:      cur,
		Category:      cat,
		Description:   describe(who, rec.Concept),
		Counterparty:  who,
		PaymentMethod: rec.Method,
	}, nil
}

// PayrollAdvanceRecord is a salary advance handed out mid-period.
type PayrollAdvanceRecord struct {
	ID           int64
	EmployeeName string
	Amount       string
	Currency     string
	Note         string
	PaidAt       time.Time
}

// PayrollAdvance classifies a salary advance.
func PayrollAdvance(rec PayrollAdvanceRecord) (ledger.Transaction, error) {
	const cat = ledger.CategoryPayrollAdvance

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.EmployeeName)

	return ledger.Transaction{
		ID:           recordID(rec.ID),
		Date:         rec.PaidAt,
		Amount:       amount,
		Currency:     cur,
		Category:     cat,
		Description:  describe(who, rec.Note),
		Counterparty: who,
	}, nil
}

// PayrollPaymentRecord is a regular salary payment. It carries both
// the payroll period and the disbursement date; the ledger files it
// under the day the money actually left, not the period it covers.
type PayrollPaymentRecord struct {
	ID           int64
	EmployeeName string
	PeriodYear   int
	PeriodMonth  time.Month
	Amount       string
	Currency     string
	Method       string
	PaidAt       time.Time
}

// PayrollPayment classifies a salary payment.
func PayrollPayment(rec PayrollPaymentRecord) (ledger.Transaction, error) {
	const cat = ledger.CategoryPayrollPayment

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.EmployeeName)

	period := ""
	if rec.PeriodYear > 0 {
		period = fmt.Sprintf("%04d-%02d", rec.PeriodYear, rec.PeriodMonth)
	}

	return ledger.Transaction{
		ID:            recordID(rec.ID),
		Date:          rec.PaidAt,
		Amount:        amount,
		Currency:      cur,
		Category:      cat,
		Description:   describe(who, period),
		Counterparty:  who,
		PaymentMethod: rec.Method,
	}, nil
}
