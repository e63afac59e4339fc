/*
Package payroll provides the shift-tracking salary calculation engine.

PURPOSE:
  This package contains the pure types and algorithms that turn a set of
  shift records plus a settings configuration into a monthly financial
  summary: pay-period resolution, per-shift hour classification
  (regular / overtime tiers / Sabbath-holiday premium), and the monthly
  aggregation of pay components, deductions, and employer contributions.

KEY CONCEPTS IN THIS FILE (types.go):
  - Shift: One worked (or non-worked) period, owned by the caller
  - ShiftCalculation: Per-shift hour breakdown, computed fresh each call
  - MonthlySummary: The aggregate result for one pay period

DESIGN PRINCIPLES:
  1. Purity: Every function is a deterministic function of its inputs.
     The engine never reads the system clock and never mutates shifts.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in
     money and hour arithmetic.
  3. Fail fast: Unparseable times and invalid settings produce explicit
     errors instead of propagating garbage into pay totals.

USAGE:
  settings, err := payroll.DefaultSettings().Normalize()
  summary, err := payroll.SummarizeMonth(shifts, settings, 2024, time.March)

SEE ALSO:
  - period.go:   Pay-period windowing (custom month-start day)
  - evaluate.go: Per-shift hour classification
  - summary.go:  Monthly aggregation
  - settings.go: Settings shape, defaults, and normalization
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SHIFT - One worked (or non-worked) period
// =============================================================================

// ShiftType distinguishes worked shifts from day-off entries.
// Non-regular types contribute to day-off usage counters, not worked hours.
type ShiftType string

const (
	ShiftRegular  ShiftType = "regular"
	ShiftVacation ShiftType = "vacation"
	ShiftSick     ShiftType = "sick"
)

// Shift is one shift record. Shifts crossing midnight are attributed to
// their start date. EndTime is empty while a shift is still clocked in.
//
// The engine treats shifts as read-only: lifecycle (clock-in, clock-out,
// edit, delete) belongs to the caller and the storage layer.
type Shift struct {
	ID         string    `json:"id"`
	Date       Date      `json:"date"`
	StartTime  string    `json:"startTime"` // "HH:MM", minute resolution
	EndTime    string    `json:"endTime"`   // "HH:MM"; empty = not yet ended
	IsHoliday  bool      `json:"isHoliday"` // manual override, no holiday calendar is consulted
	Type       ShiftType `json:"shiftType"`
	Notes      string    `json:"notes,omitempty"`
	InProgress bool      `json:"inProgress"`
}

// =============================================================================
// SHIFT CALCULATION - Per-shift hour breakdown (derived, ephemeral)
// =============================================================================

// ShiftCalculation is the hour breakdown for a single shift.
// When IsShabbat or IsHoliday is set, the regular/overtime split is
// bypassed and the aggregation stage prices all hours at 150%.
type ShiftCalculation struct {
	TotalHours       decimal.Decimal
	RegularHours     decimal.Decimal
	Overtime125Hours decimal.Decimal
	Overtime150Hours decimal.Decimal
	IsShabbat        bool
	IsHoliday        bool
}

// =============================================================================
// MONTHLY SUMMARY - Aggregate result for one pay period (derived, ephemeral)
// =============================================================================

// MonthlySummary is the complete financial summary for one pay period.
// Pure output; the caller owns it and the engine holds no reference.
type MonthlySummary struct {
	TotalHours  decimal.Decimal
	ShiftsCount int

	// Pay components. Under a monthly salary these are still computed and
	// reported for display even though the gross total ignores them.
	RegularPay        decimal.Decimal
	Overtime125Pay    decimal.Decimal
	Overtime150Pay    decimal.Decimal
	ShabbatHolidayPay decimal.Decimal
	TravelPay         decimal.Decimal
	GrossTotal        decimal.Decimal

	// Employee-side deductions. All zero when deductions are disabled.
	SocialSecurityDeduction decimal.Decimal
	IncomeTaxDeduction      decimal.Decimal
	PensionDeduction        decimal.Decimal
	TrainingFundDeduction   decimal.Decimal
	TotalDeductions         decimal.Decimal
	NetPay                  decimal.Decimal

	// Employer-side contributions, computed regardless of the deductions toggle.
	EmployerPension      decimal.Decimal
	EmployerSeverance    decimal.Decimal
	EmployerTrainingFund decimal.Decimal
	TotalEmployerCost    decimal.Decimal

	// Day-off usage. The engine reports usage; remaining-balance arithmetic
	// belongs to the presentation layer.
	VacationDaysUsed int
	SickDaysUsed     int
}
