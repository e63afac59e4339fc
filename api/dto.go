/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Shift and Settings
  already carry the wire shape on their payroll types (the storage layer
  shares it); the DTOs here cover everything derived - summaries, clock
  status - where decimals must become floats at the edge and
  presentation-only fields (remaining balances) are attached.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.
*/
package api

import (
	"github.com/hoursly/shiftpay/payroll"
	"github.com/hoursly/shiftpay/tracker"
)

// SummaryDTO is the monthly financial summary plus the presentation-side
// day-off balances.
type SummaryDTO struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	TotalHours  float64 `json:"total_hours"`
	ShiftsCount int     `json:"shifts_count"`

	RegularPay        float64 `json:"regular_pay"`
	Overtime125Pay    float64 `json:"overtime_125_pay"`
	Overtime150Pay    float64 `json:"overtime_150_pay"`
	ShabbatHolidayPay float64 `json:"shabbat_holiday_pay"`
	TravelPay         float64 `json:"travel_pay"`
	GrossTotal        float64 `json:"gross_total"`

	SocialSecurityDeduction float64 `json:"social_security_deduction"`
	IncomeTaxDeduction      float64 `json:"income_tax_deduction"`
	PensionDeduction        float64 `json:"pension_deduction"`
	TrainingFundDeduction   float64 `json:"training_fund_deduction"`
	TotalDeductions         float64 `json:"total_deductions"`
	NetPay                  float64 `json:"net_pay"`

	EmployerPension      float64 `json:"employer_pension"`
	EmployerSeverance    float64 `json:"employer_severance"`
	EmployerTrainingFund float64 `json:"employer_training_fund"`
	TotalEmployerCost    float64 `json:"total_employer_cost"`

	VacationDaysUsed      int     `json:"vacation_days_used"`
	VacationDaysRemaining float64 `json:"vacation_days_remaining"`
	SickDaysUsed          int     `json:"sick_days_used"`
	SickDaysRemaining     float64 `json:"sick_days_remaining"`
}

// ClockStatusDTO reports whether a shift is in progress and for how long.
type ClockStatusDTO struct {
	Active         bool           `json:"active"`
	Shift          *payroll.Shift `json:"shift,omitempty"`
	ElapsedSeconds int64          `json:"elapsed_seconds"`
}

// ClockOutRequest carries optional notes for the completed shift.
type ClockOutRequest struct {
	Notes string `json:"notes,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toSummaryDTO(summary payroll.MonthlySummary, settings payroll.Settings, period payroll.Period, year, month int) SummaryDTO {
	balances := tracker.RemainingDaysOff(settings, summary)
	return SummaryDTO{
		Year:        year,
		Month:       month,
		PeriodStart: period.Start.String(),
		PeriodEnd:   period.End.String(),
		TotalHours:  summary.TotalHours.InexactFloat64(),
		ShiftsCount: summary.ShiftsCount,

		RegularPay:        summary.RegularPay.InexactFloat64(),
		Overtime125Pay:    summary.Overtime125Pay.InexactFloat64(),
		Overtime150Pay:    summary.Overtime150Pay.InexactFloat64(),
		ShabbatHolidayPay: summary.ShabbatHolidayPay.InexactFloat64(),
		TravelPay:         summary.TravelPay.InexactFloat64(),
		GrossTotal:        summary.GrossTotal.InexactFloat64(),

		SocialSecurityDeduction: summary.SocialSecurityDeduction.InexactFloat64(),
		IncomeTaxDeduction:      summary.IncomeTaxDeduction.InexactFloat64(),
		PensionDeduction:        summary.PensionDeduction.InexactFloat64(),
		TrainingFundDeduction:   summary.TrainingFundDeduction.InexactFloat64(),
		TotalDeductions:         summary.TotalDeductions.InexactFloat64(),
		NetPay:                  summary.NetPay.InexactFloat64(),

		EmployerPension:      summary.EmployerPension.InexactFloat64(),
		EmployerSeverance:    summary.EmployerSeverance.InexactFloat64(),
		EmployerTrainingFund: summary.EmployerTrainingFund.InexactFloat64(),
		TotalEmployerCost:    summary.TotalEmployerCost.InexactFloat64(),

		VacationDaysUsed:      balances.VacationUsed,
		VacationDaysRemaining: balances.VacationRemaining,
		SickDaysUsed:          balances.SickUsed,
		SickDaysRemaining:     balances.SickRemaining,
	}
}
