package classify_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmontano/shopledger/internal/classify"
	"github.com/nmontano/shopledger/internal/ledger"
)

var paidAt = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func TestOrderPayment(t *testing.T) {
	type testCase struct {
		name             string
		rec              classify.OrderPaymentRecord
		wantErr          error
		wantCurrency     ledger.Currency
		wantCounterparty string
	}

	tests := []testCase{
		{
			name: "Success",
			rec: classify.OrderPaymentRecord{
				ID:           7,
				OrderCode:    "ORD-0042",
				CustomerName: "Maria Flores",
				Amount:       "350.50",
				Currency:     "Bs",
				Method:       "cash",
				PaidAt:       paidAt,
			},
			wantCurrency:     ledger.BOB,
			wantCounterparty: "Maria Flores",
		},
		{
			name: "MissingParentOrderStillClassifies",
			rec: classify.OrderPaymentRecord{
				ID:       8,
				Amount:   "100",
				Currency: "$us",
				PaidAt:   paidAt,
			},
			wantCurrency:     ledger.USD,
			wantCounterparty: "-",
		},
		{
			name: "NegativeAmount",
			rec: classify.OrderPaymentRecord{
				ID:       9,
				Amount:   "-50",
				Currency: "Bs",
				PaidAt:   paidAt,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "NonNumericAmount",
			rec: classify.OrderPaymentRecord{
				ID:       10,
				Amount:   "abc",
				Currency: "Bs",
				PaidAt:   paidAt,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "MissingCurrencyIsAmbiguous",
			rec: classify.OrderPaymentRecord{
				ID:     11,
				Amount: "50",
				PaidAt: paidAt,
			},
			wantErr: ledger.ErrAmbiguousCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classify.OrderPayment(tt.rec)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var recErr *ledger.RecordError
				require.True(t, errors.As(err, &recErr))
				assert.Equal(t, ledger.CategoryOrderIncome, recErr.Category)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, ledger.CategoryOrderIncome, got.Category)
			assert.Equal(t, ledger.KindIncome, got.Category.Kind())
			assert.Equal(t, tt.wantCurrency, got.Currency)
			assert.Equal(t, tt.wantCounterparty, got.Counterparty)
			assert.False(t, got.Amount.IsNegative())
			assert.Equal(t, paidAt, got.Date)
		})
	}
}

func TestPayrollSources_DefaultToBOB(t *testing.T) {
	t.Run("PersonnelPayment", func(t *testing.T) {
		got, err := classify.PersonnelPayment(classify.PersonnelPaymentRecord{
			ID:           1,
			EmployeeName: "Jorge Mamani",
			Concept:      "overtime",
			Amount:       "200",
			PaidAt:       paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.BOB, got.Currency)
		assert.Equal(t, ledger.CategoryPersonnelPayment, got.Category)
	})

	t.Run("PayrollAdvance", func(t *testing.T) {
		got, err := classify.PayrollAdvance(classify.PayrollAdvanceRecord{
			ID:           2,
			EmployeeName: "Jorge Mamani",
			Amount:       "500",
			PaidAt:       paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.BOB, got.Currency)
	})

	t.Run("PayrollPayment", func(t *testing.T) {
		got, err := classify.PayrollPayment(classify.PayrollPaymentRecord{
			ID:           3,
			EmployeeName: "Jorge Mamani",
			PeriodYear:   2024,
			PeriodMonth:  time.February,
			Amount:       "3200",
			PaidAt:       paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.BOB, got.Currency)
		assert.Contains(t, got.Description, "2024-02")
	})
}

func TestPayrollPayment_UsesDisbursementDate(t *testing.T) {
	// February salaries paid on March 5 belong to a March report.
	got, err := classify.PayrollPayment(classify.PayrollPaymentRecord{
		ID:           4,
		EmployeeName: "Ana Quispe",
		PeriodYear:   2024,
		PeriodMonth:  time.February,
		Amount:       "3000",
		PaidAt:       paidAt,
	})
	require.NoError(t, err)
	assert.Equal(t, paidAt, got.Date)
}

func TestSupplierPayment(t *testing.T) {
	t.Run("LowercaseCurrencyLabel", func(t *testing.T) {
		got, err := classify.SupplierPayment(classify.SupplierPaymentRecord{
			ID:            5,
			SupplierName:  "Importadora Andina",
			InvoiceNumber: "F-1881",
			Amount:        "940",
			Currency:      "bolivianos",
			PaidAt:        paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.BOB, got.Currency)
		assert.Equal(t, "F-1881", got.DocumentRef)
	})

	t.Run("MissingSupplier", func(t *testing.T) {
		got, err := classify.SupplierPayment(classify.SupplierPaymentRecord{
			ID:       6,
			Amount:   "100",
			Currency: "USD",
			PaidAt:   paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, "-", got.Counterparty)
	})

	t.Run("MissingCurrencyIsAmbiguous", func(t *testing.T) {
		_, err := classify.SupplierPayment(classify.SupplierPaymentRecord{
			ID:     7,
			Amount: "100",
			PaidAt: paidAt,
		})
		assert.ErrorIs(t, err, ledger.ErrAmbiguousCurrency)
	})
}

func TestExpenseSources(t *testing.T) {
	t.Run("DailyExpense", func(t *testing.T) {
		got, err := classify.DailyExpense(classify.DailyExpenseRecord{
			ID:            12,
			Detail:        "fuel for delivery truck",
			Amount:        "120.40",
			Currency:      "Bs",
			ReceiptNumber: "R-220",
			SpentAt:       paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.CategoryDailyExpense, got.Category)
		assert.Equal(t, "120.4", got.Amount.String())
		assert.Contains(t, got.Description, "fuel for delivery truck")
	})

	t.Run("FixedExpense", func(t *testing.T) {
		got, err := classify.FixedExpense(classify.FixedExpenseRecord{
			ID:       13,
			Name:     "Workshop rent",
			Amount:   "4500",
			Currency: "Bolivianos",
			PaidAt:   paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.CategoryFixedExpense, got.Category)
		assert.Equal(t, "Workshop rent", got.Counterparty)
	})

	t.Run("SupplyPurchase", func(t *testing.T) {
		got, err := classify.SupplyPurchase(classify.SupplyPurchaseRecord{
			ID:           14,
			SupplierName: "Ferreteria El Tigre",
			ItemName:     "welding rods",
			Amount:       "85",
			Currency:     "bs",
			PurchasedAt:  paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.CategorySupplyPurchase, got.Category)
		assert.Equal(t, "Ferreteria El Tigre - welding rods", got.Description)
	})
}
