package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bucket holds the aggregate for one (category, currency) pair. Total
// is always recomputed as the exact sum over Items, never mutated
// incrementally, so the two cannot drift apart.
type Bucket struct {
	Total decimal.Decimal
	Items []Transaction
}

// Buckets holds the two per-currency buckets of a category. Incomplete
// is set in partial-result mode when the category's source failed to
// fetch; zero totals then mean "data unavailable", not "no movements".
type Buckets struct {
	BOB Bucket
	USD Bucket

	Incomplete bool
}

// Bucket returns the bucket for the given currency.
func (b Buckets) Bucket(c Currency) Bucket {
	if c == USD {
		return b.USD
	}

	return b.BOB
}

// Aggregate filters transactions to the range and groups them into
// per-category, per-currency buckets. Every category appears in the
// result, with empty zero-total buckets when nothing matched, so
// consumers never have to distinguish a missing key from an empty one.
func Aggregate(txs []Transaction, rng Range) map[Category]Buckets {
	grouped := make(map[Category]map[Currency][]Transaction)

	for _, tx := range txs {
		if !rng.Contains(tx.Date) {
			continue
		}

		byCur := grouped[tx.Category]
		if byCur == nil {
			byCur = make(map[Currency][]Transaction)
			grouped[tx.Category] = byCur
		}

		byCur[tx.Currency] = append(byCur[tx.Currency], tx)
	}

	out := make(map[Category]Buckets, len(Categories()))

	for _, cat := range Categories() {
		out[cat] = Buckets{
			BOB: buildBucket(grouped[cat][BOB]),
			USD: buildBucket(grouped[cat][USD]),
		}
	}

	return out
}

func buildBucket(items []Transaction) Bucket {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := dateOnly(items[i].Date), dateOnly(items[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}

		// Same-day ties break on source id for determinism.
		return items[i].ID < items[j].ID
	})

	total := decimal.Zero
	for _, tx := range items {
		total = total.Add(tx.Amount)
	}

	if items == nil {
		items = []Transaction{}
	}

	return Bucket{Total: total, Items: items}
}
