package ledger

// Kind tells whether a category adds to income or to expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category is one of the eight fixed transaction classifications, one
// per source the reconciliation consolidates.
type Category string

const (
	CategoryOrderIncome      Category = "order_income"
	CategoryDailyExpense     Category = "daily_expense"
	CategoryPersonnelPayment Category = "personnel_payment"
	CategoryPayrollAdvance   Category = "payroll_advance"
	CategoryPayrollPayment   Category = "payroll_payment"
	CategorySupplierPayment  Category = "supplier_payment"
	CategoryFixedExpense     Category = "fixed_expense"
	CategorySupplyPurchase   Category = "supply_purchase"
)

// Categories returns all categories in stable report order.
func Categories() []Category {
	return []Category{
		CategoryOrderIncome,
		CategoryDailyExpense,
		CategoryPersonnelPayment,
		CategoryPayrollAdvance,
		CategoryPayrollPayment,
		CategorySupplierPayment,
		CategoryFixedExpense,
		CategorySupplyPurchase,
	}
}

// Kind reports whether the category counts as income or expense.
// Order payments are the only income source; everything else is money out.
func (c Category) Kind() Kind {
	if c == CategoryOrderIncome {
		return KindIncome
	}

	return KindExpense
}

// DefaultCurrency returns the currency assumed when a source record
// carries no usable currency label. Only the payroll-family sources
// have one; they are always paid in Bolivianos.
func (c Category) DefaultCurrency() (Currency, bool) {
	switch c {
	case CategoryPersonnelPayment, CategoryPayrollAdvance, CategoryPayrollPayment:
		return BOB, true
	}

	return "", false
}

func (c Category) String() string {
	return string(c)
}

// Label returns the human-readable name used by export and the TUI.
func (c Category) Label() string {
	switch c {
	case CategoryOrderIncome:
		return "Order Income"
	case CategoryDailyExpense:
		return "Daily Expenses"
	case CategoryPersonnelPayment:
		return "Personnel Payments"
	case CategoryPayrollAdvance:
		return "Payroll Advances"
	case CategoryPayrollPayment:
		return "Payroll Payments"
	case CategorySupplierPayment:
		return "Supplier Payments"
	case CategoryFixedExpense:
		return "Fixed Expenses"
	case CategorySupplyPurchase:
		return "Supply Purchases"
	}

	return string(c)
}
