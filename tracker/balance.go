package tracker

import "github.com/hoursly/shiftpay/payroll"

// =============================================================================
// DAY-OFF BALANCES - Presentation-layer arithmetic
// =============================================================================

// DayOffBalances is the remaining vacation and sick entitlement for a
// period. The engine stays read-only and only reports usage counts;
// subtracting usage from the configured balance happens here, at the
// presentation edge.
type DayOffBalances struct {
	VacationUsed      int
	VacationRemaining float64
	SickUsed          int
	SickRemaining     float64
}

// RemainingDaysOff derives the day-off balances from a monthly summary
// and the configured entitlements. Balances can go negative when usage
// exceeds the entitlement; the UI decides how to render that.
func RemainingDaysOff(settings payroll.Settings, summary payroll.MonthlySummary) DayOffBalances {
	return DayOffBalances{
		VacationUsed:      summary.VacationDaysUsed,
		VacationRemaining: settings.VacationDaysBalance - float64(summary.VacationDaysUsed),
		SickUsed:          summary.SickDaysUsed,
		SickRemaining:     settings.SickDaysBalance - float64(summary.SickDaysUsed),
	}
}
