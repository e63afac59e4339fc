/*
summary.go - Monthly payroll aggregation

PURPOSE:
  SummarizeMonth is the top of the engine: it resolves the pay period,
  runs the shift evaluator over every regular shift in range, and folds
  the results into a MonthlySummary - pay components, travel allowance,
  gross total, deductions, employer contributions, and day-off usage.

AGGREGATION RULES:
  - Shabbat/holiday shifts: all hours at 150%, no regular/overtime split.
  - Travel perDay pays for every in-period shift (including day-off
    entries); travel monthly is a flat amount even with zero shifts.
  - Under a monthly salary, gross = monthlySalary + travel. The hourly
    pay components are still computed and reported for display but are
    excluded from the gross. This mirrors the product's established
    behavior; see DESIGN.md before "fixing" it.
  - Deductions apply only when enabled; employer contributions always.

GUARANTEES:
  Deterministic and idempotent: identical inputs produce identical
  output, decimal fields included. Safe for concurrent callers - only
  local values are allocated and inputs are never mutated.
*/
package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	premiumRate150 = decimal.NewFromFloat(1.5)
	premiumRate125 = decimal.NewFromFloat(1.25)
	oneHundred     = decimal.NewFromInt(100)
)

// SummarizeMonth computes the financial summary for the pay period
// labeled (year, month) under the given settings.
//
// Settings must have passed Normalize; shifts with unparseable times
// abort the aggregation with an explicit error rather than corrupting
// the totals.
func SummarizeMonth(shifts []Shift, settings Settings, year int, month time.Month) (MonthlySummary, error) {
	period := ResolveMonthRange(year, month, settings.MonthStartDay)

	var inPeriod []Shift
	for _, shift := range shifts {
		if period.Contains(shift.Date) {
			inPeriod = append(inPeriod, shift)
		}
	}

	var summary MonthlySummary
	summary.ShiftsCount = len(inPeriod)

	rate := decimal.NewFromFloat(settings.HourlyRate)
	for _, shift := range inPeriod {
		switch shift.Type {
		case ShiftVacation:
			summary.VacationDaysUsed++
			continue
		case ShiftSick:
			summary.SickDaysUsed++
			continue
		}
		if shift.InProgress {
			continue
		}

		calc, err := EvaluateShift(shift, settings)
		if err != nil {
			return MonthlySummary{}, fmt.Errorf("shift %s (%s): %w", shift.ID, shift.Date, err)
		}

		summary.TotalHours = summary.TotalHours.Add(calc.TotalHours)
		if calc.IsShabbat || calc.IsHoliday {
			summary.ShabbatHolidayPay = summary.ShabbatHolidayPay.Add(calc.TotalHours.Mul(rate).Mul(premiumRate150))
		} else {
			summary.RegularPay = summary.RegularPay.Add(calc.RegularHours.Mul(rate))
			summary.Overtime125Pay = summary.Overtime125Pay.Add(calc.Overtime125Hours.Mul(rate).Mul(premiumRate125))
			summary.Overtime150Pay = summary.Overtime150Pay.Add(calc.Overtime150Hours.Mul(rate).Mul(premiumRate150))
		}
	}

	if settings.TravelPay.Enabled {
		amount := decimal.NewFromFloat(settings.TravelPay.Amount)
		if settings.TravelPay.Type == TravelPerDay {
			summary.TravelPay = amount.Mul(decimal.NewFromInt(int64(len(inPeriod))))
		} else {
			summary.TravelPay = amount
		}
	}

	if settings.SalaryType == SalaryMonthly {
		summary.GrossTotal = decimal.NewFromFloat(settings.MonthlySalary).Add(summary.TravelPay)
	} else {
		summary.GrossTotal = summary.RegularPay.
			Add(summary.Overtime125Pay).
			Add(summary.Overtime150Pay).
			Add(summary.ShabbatHolidayPay).
			Add(summary.TravelPay)
	}

	if settings.CalculateDeductions {
		summary.SocialSecurityDeduction = percentOf(summary.GrossTotal, settings.Deductions.SocialSecurity)
		summary.IncomeTaxDeduction = percentOf(summary.GrossTotal, settings.Deductions.IncomeTax)
		summary.PensionDeduction = percentOf(summary.GrossTotal, settings.Deductions.Pension)
		summary.TrainingFundDeduction = percentOf(summary.GrossTotal, settings.Deductions.TrainingFund)
		summary.TotalDeductions = summary.SocialSecurityDeduction.
			Add(summary.IncomeTaxDeduction).
			Add(summary.PensionDeduction).
			Add(summary.TrainingFundDeduction)
	}
	summary.NetPay = summary.GrossTotal.Sub(summary.TotalDeductions)

	summary.EmployerPension = percentOf(summary.GrossTotal, settings.EmployerContributions.Pension)
	summary.EmployerSeverance = percentOf(summary.GrossTotal, settings.EmployerContributions.Severance)
	summary.EmployerTrainingFund = percentOf(summary.GrossTotal, settings.EmployerContributions.TrainingFund)
	summary.TotalEmployerCost = summary.GrossTotal.
		Add(summary.EmployerPension).
		Add(summary.EmployerSeverance).
		Add(summary.EmployerTrainingFund)

	return summary, nil
}

func percentOf(base decimal.Decimal, percent float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(percent)).Div(oneHundred)
}
