package payroll_test

import (
	"testing"
	"time"

	"github.com/hoursly/shiftpay/payroll"
)

func TestResolveMonthRange_CalendarMonth(t *testing.T) {
	// GIVEN: monthStartDay = 1
	// WHEN: Resolving March 2024
	// THEN: The calendar month, inclusive of the leap-year-correct last day
	p := payroll.ResolveMonthRange(2024, time.March, 1)
	if p.Start.String() != "2024-03-01" || p.End.String() != "2024-03-31" {
		t.Errorf("unexpected period %v", p)
	}

	p = payroll.ResolveMonthRange(2024, time.February, 1)
	if p.End.String() != "2024-02-29" {
		t.Errorf("leap February should end on the 29th, got %v", p.End)
	}
}

func TestResolveMonthRange_EarlyStartDay(t *testing.T) {
	// GIVEN: monthStartDay = 10
	// WHEN: Resolving March 2024
	// THEN: March 10 through April 9
	p := payroll.ResolveMonthRange(2024, time.March, 10)
	if p.Start.String() != "2024-03-10" || p.End.String() != "2024-04-09" {
		t.Errorf("unexpected period %v", p)
	}
}

func TestResolveMonthRange_LateStartDayAnchorsPreviousMonth(t *testing.T) {
	// GIVEN: monthStartDay = 20 (late in the month)
	// WHEN: Resolving March 2024
	// THEN: The period starts in February: Feb 20 through Mar 19
	p := payroll.ResolveMonthRange(2024, time.March, 20)
	if p.Start.String() != "2024-02-20" || p.End.String() != "2024-03-19" {
		t.Errorf("unexpected period %v", p)
	}
}

func TestResolveMonthRange_YearBoundaries(t *testing.T) {
	// December with startDay 1 ends on Dec 31; January with a late start
	// day reaches back into the previous year.
	p := payroll.ResolveMonthRange(2024, time.December, 1)
	if p.End.String() != "2024-12-31" {
		t.Errorf("unexpected December end %v", p.End)
	}

	p = payroll.ResolveMonthRange(2024, time.January, 20)
	if p.Start.String() != "2023-12-20" || p.End.String() != "2024-01-19" {
		t.Errorf("unexpected period %v", p)
	}

	p = payroll.ResolveMonthRange(2024, time.December, 10)
	if p.Start.String() != "2024-12-10" || p.End.String() != "2025-01-09" {
		t.Errorf("unexpected period %v", p)
	}
}

func TestPeriod_ContainsIsInclusive(t *testing.T) {
	p := payroll.ResolveMonthRange(2024, time.March, 1)

	cases := []struct {
		date string
		want bool
	}{
		{"2024-02-29", false},
		{"2024-03-01", true}, // start bound
		{"2024-03-15", true},
		{"2024-03-31", true}, // end bound
		{"2024-04-01", false},
	}
	for _, tc := range cases {
		d, err := payroll.ParseDate(tc.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := p.Contains(d); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}
