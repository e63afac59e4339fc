/*
Package export renders shift logs and monthly summaries for spreadsheets
and clipboards.

PURPOSE:
  Pure formatting over engine output: a MonthlySummary and Settings go
  in, CSV or tab-separated text comes out. No computation happens here
  beyond per-shift durations for the shift log.

CSV NOTES:
  Files start with a UTF-8 BOM so spreadsheet applications detect the
  encoding. The summary report omits zero pay components and hides the
  deductions block entirely when deductions are disabled, matching what
  the report screen shows.
*/
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoursly/shiftpay/payroll"
)

const utf8BOM = "\uFEFF"

var shiftHeader = []string{"Date", "Day", "Start", "End", "Hours", "Holiday", "Notes"}

// WriteShiftsCSV writes one row per shift: date, weekday, start, end,
// duration, holiday flag, notes. In-progress shifts are skipped - they
// have no duration yet.
func WriteShiftsCSV(w io.Writer, shifts []payroll.Shift) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(shiftHeader); err != nil {
		return err
	}
	for _, shift := range shifts {
		if shift.InProgress || shift.Type != payroll.ShiftRegular {
			continue
		}
		hours, err := payroll.Duration(shift.StartTime, shift.EndTime)
		if err != nil {
			return fmt.Errorf("shift %s: %w", shift.ID, err)
		}
		row := []string{
			shift.Date.String(),
			shift.Date.Weekday().String(),
			shift.StartTime,
			shift.EndTime,
			payroll.FormatHours(hours),
			yesNo(shift.IsHoliday),
			shift.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the labeled monthly salary report.
func WriteSummaryCSV(w io.Writer, summary payroll.MonthlySummary, settings payroll.Settings, year int, month time.Month) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	rows := [][]string{
		{"Monthly salary report", fmt.Sprintf("%s %d", month, year)},
		{},
		{"Total hours", payroll.FormatHours(summary.TotalHours)},
		{"Shifts", fmt.Sprintf("%d", summary.ShiftsCount)},
		{},
		{"Earnings:", ""},
		{"Regular hours", money(summary.RegularPay)},
	}
	if summary.Overtime125Pay.IsPositive() {
		rows = append(rows, []string{"Overtime 125%", money(summary.Overtime125Pay)})
	}
	if summary.Overtime150Pay.IsPositive() {
		rows = append(rows, []string{"Overtime 150%", money(summary.Overtime150Pay)})
	}
	if summary.ShabbatHolidayPay.IsPositive() {
		rows = append(rows, []string{"Shabbat/holiday", money(summary.ShabbatHolidayPay)})
	}
	if summary.TravelPay.IsPositive() {
		rows = append(rows, []string{"Travel allowance", money(summary.TravelPay)})
	}
	rows = append(rows, []string{}, []string{"Gross total", money(summary.GrossTotal)})

	if settings.CalculateDeductions {
		rows = append(rows,
			[]string{},
			[]string{"Deductions:", ""},
			[]string{"Social security", money(summary.SocialSecurityDeduction)},
			[]string{"Income tax", money(summary.IncomeTaxDeduction)},
			[]string{"Pension", money(summary.PensionDeduction)},
			[]string{"Training fund", money(summary.TrainingFundDeduction)},
			[]string{},
			[]string{"Total deductions", money(summary.TotalDeductions)},
			[]string{},
			[]string{"Net pay", money(summary.NetPay)},
		)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// ShiftsText renders the shift log as tab-separated text for pasting
// into a spreadsheet.
func ShiftsText(shifts []payroll.Shift) (string, error) {
	var b strings.Builder
	b.WriteString(strings.Join(shiftHeader, "\t"))
	b.WriteByte('\n')
	for _, shift := range shifts {
		if shift.InProgress || shift.Type != payroll.ShiftRegular {
			continue
		}
		hours, err := payroll.Duration(shift.StartTime, shift.EndTime)
		if err != nil {
			return "", fmt.Errorf("shift %s: %w", shift.ID, err)
		}
		fields := []string{
			shift.Date.String(),
			shift.Date.Weekday().String(),
			shift.StartTime,
			shift.EndTime,
			payroll.FormatHours(hours),
			yesNo(shift.IsHoliday),
			shift.Notes,
		}
		b.WriteString(strings.Join(fields, "\t"))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
