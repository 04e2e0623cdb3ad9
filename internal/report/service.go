package report

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nmontano/shopledger/internal/classify"
	"github.com/nmontano/shopledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=report

// Sources retrieves the raw records of the eight data sources the
// ledger consolidates. Implementations may push the range down into
// their queries as an optimization; the aggregator re-applies the
// inclusive date predicate regardless.
type Sources interface {
	OrderPayments(ctx context.Context, rng ledger.Range) ([]classify.OrderPaymentRecord, error)
	DailyExpenses(ctx context.Context, rng ledger.Range) ([]classify.DailyExpenseRecord, error)
	PersonnelPayments(ctx context.Context, rng ledger.Range) ([]classify.PersonnelPaymentRecord, error)
	PayrollAdvances(ctx context.Context, rng ledger.Range) ([]classify.PayrollAdvanceRecord, error)
	PayrollPayments(ctx context.Context, rng ledger.Range) ([]classify.PayrollPaymentRecord, error)
	SupplierPayments(ctx context.Context, rng ledger.Range) ([]classify.SupplierPaymentRecord, error)
	FixedExpenses(ctx context.Context, rng ledger.Range) ([]classify.FixedExpenseRecord, error)
	SupplyPurchases(ctx context.Context, rng ledger.Range) ([]classify.SupplyPurchaseRecord, error)
}

// Service builds ledger reports. It holds no state between builds and
// is safe to use from concurrent callers.
type Service struct {
	sources Sources
	partial bool
}

type Option func(*Service)

// WithPartialResults switches the service from fail-closed to partial
// mode: a failed source no longer aborts the build, its categories are
// reported as zero buckets flagged Incomplete, and the source is named
// in Report.Failures.
func WithPartialResults() Option {
	return func(s *Service) { s.partial = true }
}

func NewService(sources Sources, opts ...Option) *Service {
	s := &Service{sources: sources}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type branch struct {
	source     string
	categories []ledger.Category
	fetch      func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error)
}

type branchResult struct {
	txs   []ledger.Transaction
	diags []ledger.RecordError
	err   error
}

// Build resolves the selection, fetches all eight sources concurrently,
// classifies their records and folds everything into a report. A
// cancelled context yields no report, complete or otherwise.
func (s *Service) Build(ctx context.Context, sel Selection) (*ledger.Report, error) {
	rng, err := sel.Resolve()
	if err != nil {
		return nil, err
	}

	buildID := uuid.New()
	slog.Info("building ledger report", "build_id", buildID, "range", rng.String(), "partial", s.partial)

	branches := s.branches(rng)
	results := make([]branchResult, len(branches))

	g, gctx := errgroup.WithContext(ctx)

	for i := range branches {
		g.Go(func() error {
			txs, diags, err := branches[i].fetch(gctx)
			if err != nil {
				srcErr := &SourceError{Source: branches[i].source, Err: err}
				if s.partial {
					results[i].err = srcErr
					return nil
				}

				return srcErr
			}

			results[i].txs = txs
			results[i].diags = diags

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var srcErr *SourceError
		if errors.As(err, &srcErr) {
			return nil, &BuildError{Sources: []*SourceError{srcErr}}
		}

		return nil, err
	}

	// In partial mode a cancelled fetch surfaces as a per-branch error;
	// the build must still return nothing rather than a half report.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		all        []ledger.Transaction
		diags      []ledger.RecordError
		failures   []string
		incomplete []ledger.Category
	)

	for i, b := range branches {
		if results[i].err != nil {
			slog.Warn("source fetch failed", "build_id", buildID, "source", b.source, "error", results[i].err)

			failures = append(failures, b.source)
			incomplete = append(incomplete, b.categories...)

			continue
		}

		all = append(all, results[i].txs...)
		diags = append(diags, results[i].diags...)
	}

	categories := ledger.Aggregate(all, rng)

	for _, cat := range incomplete {
		buckets := categories[cat]
		buckets.Incomplete = true
		categories[cat] = buckets
	}

	rep := ledger.Summarize(categories)
	rep.Range = rng
	rep.Diagnostics = diags
	rep.Failures = failures

	slog.Info("ledger report built",
		"build_id", buildID,
		"transactions", len(all),
		"dropped_records", len(diags),
		"failed_sources", len(failures))

	return rep, nil
}

func (s *Service) branches(rng ledger.Range) []branch {
	return []branch{
		{
			source:     "order_payments",
			categories: []ledger.Category{ledger.CategoryOrderIncome},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.OrderPayments(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.OrderPayment)

				return txs, diags, nil
			},
		},
		{
			source:     "daily_expenses",
			categories: []ledger.Category{ledger.CategoryDailyExpense},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.DailyExpenses(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.DailyExpense)

				return txs, diags, nil
			},
		},
		{
			source:     "personnel_payments",
			categories: []ledger.Category{ledger.CategoryPersonnelPayment},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.PersonnelPayments(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.PersonnelPayment)

				return txs, diags, nil
			},
		},
		{
			source:     "payroll_advances",
			categories: []ledger.Category{ledger.CategoryPayrollAdvance},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.PayrollAdvances(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.PayrollAdvance)

				return txs, diags, nil
			},
		},
		{
			source:     "payroll_payments",
			categories: []ledger.Category{ledger.CategoryPayrollPayment},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.PayrollPayments(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.PayrollPayment)

				return txs, diags, nil
			},
		},
		{
			source:     "supplier_payments",
			categories: []ledger.Category{ledger.CategorySupplierPayment},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.SupplierPayments(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.SupplierPayment)

				return txs, diags, nil
			},
		},
		{
			source:     "fixed_expenses",
			categories: []ledger.Category{ledger.CategoryFixedExpense},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.FixedExpenses(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.FixedExpense)

				return txs, diags, nil
			},
		},
		{
			source:     "supply_purchases",
			categories: []ledger.Category{ledger.CategorySupplyPurchase},
			fetch: func(ctx context.Context) ([]ledger.Transaction, []ledger.RecordError, error) {
				recs, err := s.sources.SupplyPurchases(ctx, rng)
				if err != nil {
					return nil, nil, err
				}

				txs, diags := classifyAll(recs, classify.SupplyPurchase)

				return txs, diags, nil
			},
		},
	}
}

// classifyAll runs a classifier over a source's records. Malformed
// records become diagnostics instead of failing the whole source.
func classifyAll[R any](recs []R, fn func(R) (ledger.Transaction, error)) ([]ledger.Transaction, []ledger.RecordError) {
	txs := make([]ledger.Transaction, 0, len(recs))

	var diags []ledger.RecordError

	for _, rec := range recs {
		tx, err := fn(rec)
		if err != nil {
			var recErr *ledger.RecordError
			if errors.As(err, &recErr) {
				diags = append(diags, *recErr)
			} else {
				diags = append(diags, ledger.RecordError{Err: err})
			}

			continue
		}

		txs = append(txs, tx)
	}

	return txs, diags
}
