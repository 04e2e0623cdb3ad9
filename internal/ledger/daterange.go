package ledger

import (
	"fmt"
	"time"
)

// Range is an inclusive [Start, End] calendar interval. Construct it
// with one of the resolver functions below; they guarantee Start <= End.
type Range struct {
	Start time.Time
	End   time.Time
}

// dateOnly strips any time-of-day component so that boundary-day
// comparisons never depend on clock values carried by source records.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SingleDay returns the range covering exactly one calendar day.
func SingleDay(day time.Time) Range {
	d := dateOnly(day)
	return Range{Start: d, End: d}
}

// Between returns the range [start, end]. It fails with ErrInvalidRange
// when either bound is missing or end is before start.
func Between(start, end time.Time) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}

	s, e := dateOnly(start), dateOnly(end)
	if e.Before(s) {
		return Range{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidRange, e.Format(time.DateOnly), s.Format(time.DateOnly))
	}

	return Range{Start: s, End: e}, nil
}

// MonthOf returns the range covering a whole calendar month. The last
// day is computed from the actual month and year, so leap Februaries
// come out right.
func MonthOf(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Day zero of the next month is the last day of this one.
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	return Range{Start: start, End: end}
}

// YearOf returns the range covering a whole calendar year.
func YearOf(year int) Range {
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Contains reports whether t falls inside the range, comparing calendar
// dates only and including both ends.
func (r Range) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return r.Start.Format(time.DateOnly) + ".." + r.End.Format(time.DateOnly)
}
