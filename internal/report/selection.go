package report

import (
	"fmt"
	"time"

	"github.com/nmontano/shopledger/internal/ledger"
)

type selectionMode int

const (
	modeNone selectionMode = iota
	modeDay
	modeRange
	modeMonth
	modeYear
)

// Selection is a reporting-window choice as made by a caller: a single
// day, an explicit range, a month, or a year. Construct it with one of
// Day, Span, Month or Year; the modes are mutually exclusive by
// construction.
type Selection struct {
	mode  selectionMode
	day   time.Time
	start time.Time
	end   time.Time
	year  int
	month time.Month
}

// Day selects a single calendar day.
func Day(d time.Time) Selection {
	return Selection{mode: modeDay, day: d}
}

// Span selects an explicit [start, end] range.
func Span(start, end time.Time) Selection {
	return Selection{mode: modeRange, start: start, end: end}
}

// Month selects a whole calendar month.
func Month(year int, month time.Month) Selection {
	return Selection{mode: modeMonth, year: year, month: month}
}

// Year selects a whole calendar year.
func Year(year int) Selection {
	return Selection{mode: modeYear, year: year}
}

// Resolve turns the selection into an inclusive date range.
func (s Selection) Resolve() (ledger.Range, error) {
	switch s.mode {
	case modeDay:
		if s.day.IsZero() {
			return ledger.Range{}, fmt.Errorf("%w: missing day", ledger.ErrInvalidRange)
		}

		return ledger.SingleDay(s.day), nil
	case modeRange:
		return ledger.Between(s.start, s.end)
	case modeMonth:
		return ledger.MonthOf(s.year, s.month), nil
	case modeYear:
		return ledger.YearOf(s.year), nil
	}

	return ledger.Range{}, fmt.Errorf("%w: no selection", ledger.ErrInvalidRange)
}
