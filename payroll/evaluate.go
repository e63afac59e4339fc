package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// SHIFT EVALUATOR - Hour classification for a single shift
// =============================================================================

// Statutory thresholds: the first 8 hours are regular, the next 2 are
// paid at 125%, everything above 10 at 150%.
var (
	regularLimit  = decimal.NewFromInt(8)
	overtimeLimit = decimal.NewFromInt(10)
	tier125Cap    = decimal.NewFromInt(2)
)

// EvaluateShift computes the worked duration of one shift and splits it
// into regular / overtime-125% / overtime-150% buckets.
//
// A Sabbath shift (Saturday, with the premium enabled) or a manually
// flagged holiday shift bypasses the overtime split entirely: the
// aggregation stage prices all of its hours at 150%.
//
// Pure and deterministic; returns an error only for unparseable clock
// times, which includes the empty end-time sentinel of an in-progress
// shift - callers filter those out before evaluating.
func EvaluateShift(shift Shift, settings Settings) (ShiftCalculation, error) {
	total, err := Duration(shift.StartTime, shift.EndTime)
	if err != nil {
		return ShiftCalculation{}, err
	}

	calc := ShiftCalculation{
		TotalHours:   total,
		RegularHours: total,
		IsShabbat:    settings.ShabbatPremium.Enabled && shift.Date.IsShabbat(),
		IsHoliday:    shift.IsHoliday,
	}

	if settings.Overtime.Enabled && !calc.IsShabbat && !calc.IsHoliday {
		switch {
		case total.GreaterThan(overtimeLimit):
			calc.RegularHours = regularLimit
			calc.Overtime125Hours = tier125Cap
			calc.Overtime150Hours = total.Sub(overtimeLimit)
		case total.GreaterThan(regularLimit):
			calc.RegularHours = regularLimit
			calc.Overtime125Hours = total.Sub(regularLimit)
		}
	}

	return calc, nil
}
