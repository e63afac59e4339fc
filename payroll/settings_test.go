package payroll_test

import (
	"errors"
	"testing"

	"github.com/hoursly/shiftpay/payroll"
)

func TestUnmarshalSettings_MergesOverDefaults(t *testing.T) {
	// GIVEN: A stored document that predates most fields
	// WHEN: Unmarshaling
	// THEN: Present fields win, absent fields keep defaults, including
	//       fields inside nested objects
	raw := []byte(`{
		"salaryType": "monthly",
		"monthlySalary": 12000,
		"travelPay": {"enabled": true},
		"deductions": {"incomeTax": 14}
	}`)

	s, err := payroll.UnmarshalSettings(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.SalaryType != payroll.SalaryMonthly || s.MonthlySalary != 12000 {
		t.Errorf("stored fields lost: %+v", s)
	}
	if s.HourlyRate != 40 {
		t.Errorf("hourlyRate default lost: %v", s.HourlyRate)
	}
	if !s.TravelPay.Enabled {
		t.Error("travelPay.enabled not applied")
	}
	if s.TravelPay.Amount != 22 || s.TravelPay.Type != payroll.TravelPerDay {
		t.Errorf("nested travelPay defaults lost: %+v", s.TravelPay)
	}
	if s.Deductions.IncomeTax != 14 {
		t.Errorf("deductions.incomeTax not applied: %v", s.Deductions.IncomeTax)
	}
	if s.Deductions.SocialSecurity != 7 {
		t.Errorf("nested deductions defaults lost: %+v", s.Deductions)
	}
	if len(s.ShiftTemplates) != 3 {
		t.Errorf("default shift templates should be restored, got %d", len(s.ShiftTemplates))
	}
}

func TestUnmarshalSettings_KeepsStoredTemplates(t *testing.T) {
	raw := []byte(`{"shiftTemplates": [{"id": "t1", "name": "Split", "startTime": "06:00", "endTime": "10:00"}]}`)
	s, err := payroll.UnmarshalSettings(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.ShiftTemplates) != 1 || s.ShiftTemplates[0].Name != "Split" {
		t.Errorf("stored templates lost: %+v", s.ShiftTemplates)
	}
}

func TestUnmarshalSettings_MalformedJSON(t *testing.T) {
	if _, err := payroll.UnmarshalSettings([]byte(`{"salaryType":`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestNormalize_AcceptsDefaults(t *testing.T) {
	if _, err := payroll.DefaultSettings().Normalize(); err != nil {
		t.Fatalf("defaults should normalize cleanly: %v", err)
	}
}

func TestNormalize_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*payroll.Settings)
		field  string
	}{
		{"bad salary type", func(s *payroll.Settings) { s.SalaryType = "weekly" }, "salaryType"},
		{"bad travel type", func(s *payroll.Settings) { s.TravelPay.Type = "yearly" }, "travelPay.type"},
		{"bad overtime mode", func(s *payroll.Settings) { s.Overtime.Mode = "sometimes" }, "overtime.mode"},
		{"start day too low", func(s *payroll.Settings) { s.MonthStartDay = 0 }, "monthStartDay"},
		{"start day too high", func(s *payroll.Settings) { s.MonthStartDay = 29 }, "monthStartDay"},
		{"negative rate", func(s *payroll.Settings) { s.HourlyRate = -1 }, "hourlyRate"},
		{"negative deduction", func(s *payroll.Settings) { s.Deductions.Pension = -0.5 }, "deductions.pension"},
		{"negative balance", func(s *payroll.Settings) { s.SickDaysBalance = -2 }, "sickDaysBalance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := payroll.DefaultSettings()
			tc.mutate(&s)
			_, err := s.Normalize()
			if !errors.Is(err, payroll.ErrInvalidSettings) {
				t.Fatalf("want ErrInvalidSettings, got %v", err)
			}
			var serr *payroll.SettingsError
			if !errors.As(err, &serr) {
				t.Fatalf("want *SettingsError, got %T", err)
			}
			if serr.Field != tc.field {
				t.Errorf("field = %q, want %q", serr.Field, tc.field)
			}
		})
	}
}
