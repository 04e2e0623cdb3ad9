package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmontano/shopledger/internal/ledger"
)

func tx(id string, cat ledger.Category, cur ledger.Currency, amount string, day time.Time) ledger.Transaction {
	return ledger.Transaction{
		ID:       id,
		Date:     day,
		Amount:   decimal.RequireFromString(amount),
		Currency: cur,
		Category: cat,
	}
}

func TestAggregate_GroupsByCategoryAndCurrency(t *testing.T) {
	day := date(2024, 3, 5)
	rng := ledger.SingleDay(day)

	txs := []ledger.Transaction{
		tx("1", ledger.CategoryOrderIncome, ledger.BOB, "500", day),
		tx("2", ledger.CategoryOrderIncome, ledger.USD, "120", day),
		tx("3", ledger.CategoryDailyExpense, ledger.BOB, "80", day),
		tx("4", ledger.CategoryOrderIncome, ledger.BOB, "250.50", day),
	}

	got := ledger.Aggregate(txs, rng)

	orders := got[ledger.CategoryOrderIncome]
	assert.Equal(t, "750.5", orders.BOB.Total.String())
	assert.Len(t, orders.BOB.Items, 2)
	assert.Equal(t, "120", orders.USD.Total.String())
	assert.Len(t, orders.USD.Items, 1)

	daily := got[ledger.CategoryDailyExpense]
	assert.Equal(t, "80", daily.BOB.Total.String())
	assert.True(t, daily.USD.Total.IsZero())
}

func TestAggregate_TotalsMatchItems(t *testing.T) {
	day := date(2024, 6, 1)

	txs := []ledger.Transaction{
		tx("a", ledger.CategorySupplierPayment, ledger.BOB, "10.10", day),
		tx("b", ledger.CategorySupplierPayment, ledger.BOB, "20.20", day.AddDate(0, 0, 3)),
		tx("c", ledger.CategorySupplierPayment, ledger.BOB, "30.30", day.AddDate(0, 0, 7)),
	}

	got := ledger.Aggregate(txs, ledger.MonthOf(2024, time.June))

	for _, cat := range ledger.Categories() {
		for _, cur := range ledger.Currencies() {
			bucket := got[cat].Bucket(cur)

			sum := decimal.Zero
			for _, item := range bucket.Items {
				sum = sum.Add(item.Amount)
			}

			assert.True(t, bucket.Total.Equal(sum),
				"%s/%s total %s != sum of items %s", cat, cur, bucket.Total, sum)
		}
	}
}

func TestAggregate_FiltersByRangeInclusive(t *testing.T) {
	rng, err := ledger.Between(date(2024, 3, 10), date(2024, 3, 20))
	require.NoError(t, err)

	txs := []ledger.Transaction{
		tx("before", ledger.CategoryDailyExpense, ledger.BOB, "1", date(2024, 3, 9)),
		tx("onstart", ledger.CategoryDailyExpense, ledger.BOB, "2", date(2024, 3, 10)),
		tx("inside", ledger.CategoryDailyExpense, ledger.BOB, "4", date(2024, 3, 15)),
		tx("onend", ledger.CategoryDailyExpense, ledger.BOB, "8", date(2024, 3, 20)),
		tx("after", ledger.CategoryDailyExpense, ledger.BOB, "16", date(2024, 3, 21)),
	}

	got := ledger.Aggregate(txs, rng)

	bucket := got[ledger.CategoryDailyExpense].BOB
	assert.Equal(t, "14", bucket.Total.String())
	require.Len(t, bucket.Items, 3)
	assert.Equal(t, "onstart", bucket.Items[0].ID)
	assert.Equal(t, "onend", bucket.Items[2].ID)
}

func TestAggregate_ItemsSortedByDateThenID(t *testing.T) {
	txs := []ledger.Transaction{
		tx("z", ledger.CategoryOrderIncome, ledger.BOB, "1", date(2024, 5, 3)),
		tx("a", ledger.CategoryOrderIncome, ledger.BOB, "1", date(2024, 5, 3)),
		tx("m", ledger.CategoryOrderIncome, ledger.BOB, "1", date(2024, 5, 1)),
	}

	got := ledger.Aggregate(txs, ledger.MonthOf(2024, time.May))

	items := got[ledger.CategoryOrderIncome].BOB.Items
	require.Len(t, items, 3)
	assert.Equal(t, "m", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "z", items[2].ID)
}

func TestAggregate_EmptyCategoriesArePresent(t *testing.T) {
	got := ledger.Aggregate(nil, ledger.YearOf(2024))

	require.Len(t, got, len(ledger.Categories()))

	for _, cat := range ledger.Categories() {
		buckets, ok := got[cat]
		require.True(t, ok, "category %s missing from result", cat)

		for _, cur := range ledger.Currencies() {
			bucket := buckets.Bucket(cur)
			assert.True(t, bucket.Total.IsZero())
			assert.NotNil(t, bucket.Items)
			assert.Empty(t, bucket.Items)
		}
	}
}
