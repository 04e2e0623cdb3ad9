// Package store implements report.Sources on top of the shop's
// PostgreSQL database. Each method reads one source table; joins to
// parent rows are LEFT JOINs so payments whose parent was deleted
// still come back, with empty display fields.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nmontano/shopledger/internal/classify"
	"github.com/nmontano/shopledger/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Amounts are selected as text so they reach the classifiers with the
// exact digits stored in the numeric column.

func (s *Store) OrderPayments(ctx context.Context, rng ledger.Range) ([]classify.OrderPaymentRecord, error) {
	query := `
		SELECT p.id, COALESCE(o.code, ''), COALESCE(o.customer_name, ''),
		       p.amount::text, COALESCE(p.currency, ''), COALESCE(p.method, ''),
		       COALESCE(p.reference, ''), p.paid_at
		FROM order_payments p
		LEFT JOIN orders o ON p.order_id = o.id
		WHERE p.paid_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying order payments: %w", err)
	}
	defer rows.Close()

	var recs []classify.OrderPaymentRecord

	for rows.Next() {
		var rec classify.OrderPaymentRecord
		if err := rows.Scan(
			&rec.ID, &rec.OrderCode, &rec.CustomerName,
			&rec.Amount, &rec.Currency, &rec.Method,
			&rec.Reference, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order payment: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) DailyExpenses(ctx context.Context, rng ledger.Range) ([]classify.DailyExpenseRecord, error) {
	query := `
		SELECT id, COALESCE(detail, ''), amount::text, COALESCE(currency, ''),
		       COALESCE(method, ''), COALESCE(receipt_number, ''), spent_at
		FROM daily_expenses
		WHERE spent_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying daily expenses: %w", err)
	}
	defer rows.Close()

	var recs []classify.DailyExpenseRecord

	for rows.Next() {
		var rec classify.DailyExpenseRecord
		if err := rows.Scan(
			&rec.ID, &rec.Detail, &rec.Amount, &rec.Currency,
			&rec.Method, &rec.ReceiptNumber, &rec.SpentAt,
		); err != nil {
			return nil, fmt.Errorf("scanning daily expense: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) PersonnelPayments(ctx context.Context, rng ledger.Range) ([]classify.PersonnelPaymentRecord, error) {
	query := `
		SELECT p.id, COALESCE(e.full_name, ''), COALESCE(p.concept, ''),
		       p.amount::text, COALESCE(p.currency, ''), COALESCE(p.method, ''), p.paid_at
		FROM personnel_payments p
		LEFT JOIN employees e ON p.employee_id = e.id
		WHERE p.paid_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying personnel payments: %w", err)
	}
	defer rows.Close()

	var recs []classify.PersonnelPaymentRecord

	for rows.Next() {
		var rec classify.PersonnelPaymentRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeName, &rec.Concept,
			&rec.Amount, &rec.Currency, &rec.Method, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scanning personnel payment: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) PayrollAdvances(ctx context.Context, rng ledger.Range) ([]classify.PayrollAdvanceRecord, error) {
	query := `
		SELECT a.id, COALESCE(e.full_name, ''), a.amount::text,
		       COALESCE(a.currency, ''), COALESCE(a.note, ''), a.paid_at
		FROM payroll_advances a
		LEFT JOIN employees e ON a.employee_id = e.id
		WHERE a.paid_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying payroll advances: %w", err)
	}
	defer rows.Close()

	var recs []classify.PayrollAdvanceRecord

	for rows.Next() {
		var rec classify.PayrollAdvanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeName, &rec.Amount,
			&rec.Currency, &rec.Note, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scanning payroll advance: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) PayrollPayments(ctx context.Context, rng ledger.Range) ([]classify.PayrollPaymentRecord, error) {
	// Filter on the disbursement date; period columns describe which
	// payroll the payment covers, not when the money moved.
	query := `
		SELECT p.id, COALESCE(e.full_name, ''), p.period_year, p.period_month,
		       p.amount::text, COALESCE(p.currency, ''), COALESCE(p.method, ''), p.paid_at
		FROM payroll_payments p
		LEFT JOIN employees e ON p.employee_id = e.id
		WHERE p.paid_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying payroll payments: %w", err)
	}
	defer rows.Close()

	var recs []classify.PayrollPaymentRecord

	for rows.Next() {
		var rec classify.PayrollPaymentRecord

		var month int

		if err := rows.Scan(
			&rec.ID, &rec.EmployeeName, &rec.PeriodYear, &month,
			&rec.Amount, &rec.Currency, &rec.Method, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scanning payroll payment: %w", err)
		}

		rec.PeriodMonth = time.Month(month)
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) SupplierPayments(ctx context.Context, rng ledger.Range) ([]classify.SupplierPaymentRecord, error) {
	query := `
		SELECT p.id, COALESCE(s.name, ''), COALESCE(p.invoice_number, ''),
		       p.amount::text, COALESCE(p.currency, ''), COALESCE(p.method, ''), p.paid_at
		FROM supplier_payments p
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.paid_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying supplier payments: %w", err)
	}
	defer rows.Close()

	var recs []classify.SupplierPaymentRecord

	for rows.Next() {
		var rec classify.SupplierPaymentRecord
		if err := rows.Scan(
			&rec.ID, &rec.SupplierName, &rec.InvoiceNumber,
			&rec.Amount, &rec.Currency, &rec.Method, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scanning supplier payment: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) FixedExpenses(ctx context.Context, rng ledger.Range) ([]classify.FixedExpenseRecord, error) {
	query := `
		SELECT p.id, COALESCE(f.name, ''), p.amount::text,
		       COALESCE(p.currency, ''), COALESCE(p.method, ''), p.paid_at
		FROM fixed_expense_payments p
		LEFT JOIN fixed_expenses f ON p.fixed_expense_id = f.id
		WHERE p.paid_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying fixed expenses: %w", err)
	}
	defer rows.Close()

	var recs []classify.FixedExpenseRecord

	for rows.Next() {
		var rec classify.FixedExpenseRecord
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Amount,
			&rec.Currency, &rec.Method, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scanning fixed expense: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (s *Store) SupplyPurchases(ctx context.Context, rng ledger.Range) ([]classify.SupplyPurchaseRecord, error) {
	query := `
		SELECT p.id, COALESCE(s.name, ''), COALESCE(p.item_name, ''),
		       p.amount::text, COALESCE(p.currency, ''),
		       COALESCE(p.receipt_number, ''), p.purchased_at
		FROM supply_purchases p
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.purchased_at::date BETWEEN $1 AND $2
	`

	rows, err := s.db.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("querying supply purchases: %w", err)
	}
	defer rows.Close()

	var recs []classify.SupplyPurchaseRecord

	for rows.Next() {
		var rec classify.SupplyPurchaseRecord
		if err := rows.Scan(
			&rec.ID, &rec.SupplierName, &rec.ItemName,
			&rec.Amount, &rec.Currency,
			&rec.ReceiptNumber, &rec.PurchasedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning supply purchase: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}
