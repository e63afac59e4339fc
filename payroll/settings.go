/*
settings.go - Pay-period configuration: shape, defaults, normalization

PURPOSE:
  Settings is the single, exhaustively-typed configuration the engine
  computes against. The engine requires every field to be present and
  valid - it performs no defaulting itself. Two entry points guarantee
  that:

    DefaultSettings()        The single source of truth for defaults.
    UnmarshalSettings(raw)   Deep-merges stored JSON over the defaults,
                             so newly introduced fields are never absent.
    (Settings).Normalize()   Validates and returns a fully-populated copy;
                             fails fast on enum or range violations.

  Storage layers load settings through UnmarshalSettings; the aggregator
  is only ever fed the result of Normalize.
*/
package payroll

import "encoding/json"

// =============================================================================
// SETTINGS SHAPE
// =============================================================================

type SalaryType string

const (
	SalaryHourly  SalaryType = "hourly"
	SalaryMonthly SalaryType = "monthly"
)

type TravelPayType string

const (
	TravelPerDay  TravelPayType = "perDay"
	TravelMonthly TravelPayType = "monthly"
)

type OvertimeMode string

const (
	OvertimeAutomatic OvertimeMode = "automatic"
	OvertimeManual    OvertimeMode = "manual"
)

// TravelPay configures the travel allowance.
type TravelPay struct {
	Enabled bool          `json:"enabled"`
	Amount  float64       `json:"amount"`
	Type    TravelPayType `json:"type"`
}

// Overtime configures the overtime split. Only Enabled participates in
// the calculation; Mode and ManualAmount are carried for the settings UI.
type Overtime struct {
	Enabled      bool         `json:"enabled"`
	Mode         OvertimeMode `json:"mode"`
	ManualAmount float64      `json:"manualAmount"`
}

// ShabbatPremium gates the Saturday 150% override.
type ShabbatPremium struct {
	Enabled bool `json:"enabled"`
}

// Deductions holds employee-side deduction percentages.
type Deductions struct {
	SocialSecurity float64 `json:"socialSecurity"`
	IncomeTax      float64 `json:"incomeTax"`
	Pension        float64 `json:"pension"`
	TrainingFund   float64 `json:"trainingFund"`
}

// EmployerContributions holds employer-side contribution percentages.
type EmployerContributions struct {
	Pension      float64 `json:"pension"`
	Severance    float64 `json:"severance"`
	TrainingFund float64 `json:"trainingFund"`
}

// ShiftTemplate is a named preset for manual shift entry.
type ShiftTemplate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Color     string `json:"color"`
}

// Settings is the pay-period configuration, one active instance per user.
type Settings struct {
	SalaryType            SalaryType            `json:"salaryType"`
	HourlyRate            float64               `json:"hourlyRate"`
	MonthlySalary         float64               `json:"monthlySalary"`
	TravelPay             TravelPay             `json:"travelPay"`
	Overtime              Overtime              `json:"overtime"`
	ShabbatPremium        ShabbatPremium        `json:"shabbatPremium"`
	MonthStartDay         int                   `json:"monthStartDay"`
	CalculateDeductions   bool                  `json:"calculateDeductions"`
	Deductions            Deductions            `json:"deductions"`
	EmployerContributions EmployerContributions `json:"employerContributions"`
	VacationDaysBalance   float64               `json:"vacationDaysBalance"`
	SickDaysBalance       float64               `json:"sickDaysBalance"`
	ShiftTemplates        []ShiftTemplate       `json:"shiftTemplates"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultSettings returns the default configuration. This is the single
// source of truth for defaults; every other layer merges against it.
func DefaultSettings() Settings {
	return Settings{
		SalaryType:    SalaryHourly,
		HourlyRate:    40,
		MonthlySalary: 10000,
		TravelPay: TravelPay{
			Enabled: false,
			Amount:  22,
			Type:    TravelPerDay,
		},
		Overtime: Overtime{
			Enabled:      true,
			Mode:         OvertimeAutomatic,
			ManualAmount: 0,
		},
		ShabbatPremium:      ShabbatPremium{Enabled: false},
		MonthStartDay:       1,
		CalculateDeductions: false,
		Deductions: Deductions{
			SocialSecurity: 7,
			IncomeTax:      10,
			Pension:        6,
			TrainingFund:   2.5,
		},
		EmployerContributions: EmployerContributions{
			Pension:      6.5,
			Severance:    6,
			TrainingFund: 5,
		},
		VacationDaysBalance: 0,
		SickDaysBalance:     0,
		ShiftTemplates: []ShiftTemplate{
			{ID: "template-1", Name: "Morning shift", StartTime: "07:00", EndTime: "16:00", Color: "#3b82f6"},
			{ID: "template-2", Name: "Evening shift", StartTime: "16:00", EndTime: "00:00", Color: "#f59e0b"},
			{ID: "template-3", Name: "Night shift", StartTime: "22:00", EndTime: "07:00", Color: "#8b5cf6"},
		},
	}
}

// UnmarshalSettings decodes stored settings JSON, merged over the
// defaults: fields absent from the stored document keep their default
// values, including fields inside nested objects. This is how settings
// that predate a field acquire it without a migration.
func UnmarshalSettings(raw []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, err
	}
	if len(s.ShiftTemplates) == 0 {
		s.ShiftTemplates = DefaultSettings().ShiftTemplates
	}
	return s, nil
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// Normalize validates the settings and returns a fully-populated copy.
// The aggregator must only ever be handed normalized settings; partially
// populated or out-of-range configurations are rejected here instead of
// surfacing as nonsense pay totals.
func (s Settings) Normalize() (Settings, error) {
	switch s.SalaryType {
	case SalaryHourly, SalaryMonthly:
	default:
		return Settings{}, &SettingsError{Field: "salaryType", Reason: "must be hourly or monthly"}
	}
	switch s.TravelPay.Type {
	case TravelPerDay, TravelMonthly:
	default:
		return Settings{}, &SettingsError{Field: "travelPay.type", Reason: "must be perDay or monthly"}
	}
	switch s.Overtime.Mode {
	case OvertimeAutomatic, OvertimeManual:
	default:
		return Settings{}, &SettingsError{Field: "overtime.mode", Reason: "must be automatic or manual"}
	}
	if s.MonthStartDay < 1 || s.MonthStartDay > 28 {
		return Settings{}, &SettingsError{Field: "monthStartDay", Reason: "must be between 1 and 28"}
	}
	for _, check := range []struct {
		field string
		value float64
	}{
		{"hourlyRate", s.HourlyRate},
		{"monthlySalary", s.MonthlySalary},
		{"travelPay.amount", s.TravelPay.Amount},
		{"overtime.manualAmount", s.Overtime.ManualAmount},
		{"deductions.socialSecurity", s.Deductions.SocialSecurity},
		{"deductions.incomeTax", s.Deductions.IncomeTax},
		{"deductions.pension", s.Deductions.Pension},
		{"deductions.trainingFund", s.Deductions.TrainingFund},
		{"employerContributions.pension", s.EmployerContributions.Pension},
		{"employerContributions.severance", s.EmployerContributions.Severance},
		{"employerContributions.trainingFund", s.EmployerContributions.TrainingFund},
		{"vacationDaysBalance", s.VacationDaysBalance},
		{"sickDaysBalance", s.SickDaysBalance},
	} {
		if check.value < 0 {
			return Settings{}, &SettingsError{Field: check.field, Reason: "must not be negative"}
		}
	}
	return s, nil
}
