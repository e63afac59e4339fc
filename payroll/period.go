package payroll

import "time"

// =============================================================================
// PERIOD - The pay-period window for monthly aggregation
// =============================================================================

// Period is an inclusive date range. Membership is tested by calendar
// date only; the 23:59:59 end-of-day boundary of the source data model is
// equivalent to an inclusive end date at day granularity.
type Period struct {
	Start Date
	End   Date
}

// Contains returns true if the date is within [Start, End], both bounds closed.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// ResolveMonthRange computes the pay period labeled (year, month) for a
// configurable month-start day.
//
//   - startDay == 1: the calendar month.
//   - startDay in 2..15: startDay of the labeled month through startDay-1
//     of the next month.
//   - startDay > 15: the period is treated as STARTING IN THE PREVIOUS
//     calendar month: startDay of month-1 through startDay-1 of the
//     labeled month. This lets a late-starting period keep the label of
//     the month most of it falls in.
//
// Year boundaries are handled by time.Date normalization (month 0 is
// December of year-1, month 13 is January of year+1).
//
// startDay is not validated here; callers obtain settings through
// Normalize, which enforces the 1..28 range.
func ResolveMonthRange(year int, month time.Month, startDay int) Period {
	if startDay == 1 {
		return Period{
			Start: NewDate(year, month, 1),
			End:   NewDate(year, month+1, 0), // day 0 = last day of previous month
		}
	}
	if startDay > 15 {
		return Period{
			Start: NewDate(year, month-1, startDay),
			End:   NewDate(year, month, startDay-1),
		}
	}
	return Period{
		Start: NewDate(year, month, startDay),
		End:   NewDate(year, month+1, startDay-1),
	}
}
