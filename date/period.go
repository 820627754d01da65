package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period: a day, a week starting on Monday, a month, a
// quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// ParsePeriod parses a period, by name ("month") or adjective ("monthly").
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// Range returns the range of the period containing d.
func (p Period) Range(d Date) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Weekly:
		offset := (int(d.Weekday()) + 6) % 7 // days since Monday
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		return d
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+4, 0) // day 0 is the last day of the previous month
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		return d
	}
}

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If from is after to, they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether d is in the range.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String returns a short name for the range: "2026-10" for a month,
// "2026-Q4" for a quarter, "2026" for a year, and "from_to" otherwise.
func (r Range) String() string {
	switch r {
	case Daily.Range(r.From):
		return r.From.String()
	case Monthly.Range(r.From):
		return r.From.time().Format("2006-01")
	case Quarterly.Range(r.From):
		return fmt.Sprintf("%d-Q%d", r.From.y, (r.From.m-1)/3+1)
	case Yearly.Range(r.From):
		return fmt.Sprintf("%d", r.From.y)
	case Weekly.Range(r.From):
		_, week := r.From.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.y, week)
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
