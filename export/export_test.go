package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoursly/shiftpay/export"
	"github.com/hoursly/shiftpay/payroll"
)

func sampleShifts() []payroll.Shift {
	open := payroll.Shift{
		ID: "open", Date: payroll.NewDate(2024, 3, 6), StartTime: "09:00",
		Type: payroll.ShiftRegular, InProgress: true,
	}
	return []payroll.Shift{
		{ID: "s1", Date: payroll.NewDate(2024, 3, 4), StartTime: "09:00", EndTime: "17:30",
			Type: payroll.ShiftRegular, Notes: "with, comma"},
		{ID: "s2", Date: payroll.NewDate(2024, 3, 2), StartTime: "22:00", EndTime: "06:00",
			IsHoliday: true, Type: payroll.ShiftRegular},
		{ID: "v1", Date: payroll.NewDate(2024, 3, 5), Type: payroll.ShiftVacation},
		open,
	}
}

func TestWriteShiftsCSV(t *testing.T) {
	// GIVEN: Worked shifts plus a vacation entry and an open shift
	// WHEN: Exporting the shift log
	// THEN: Only completed regular shifts appear, behind a BOM and header
	var buf strings.Builder
	require.NoError(t, export.WriteShiftsCSV(&buf, sampleShifts()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\uFEFF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\uFEFF")), "\n")
	require.Len(t, lines, 3) // header + two completed regular shifts

	assert.Equal(t, "Date,Day,Start,End,Hours,Holiday,Notes", lines[0])
	assert.Contains(t, lines[1], "2024-03-04")
	assert.Contains(t, lines[1], "Monday")
	assert.Contains(t, lines[1], "08:30") // 09:00-17:30
	assert.Contains(t, lines[1], `"with, comma"`)
	assert.Contains(t, lines[2], "2024-03-02")
	assert.Contains(t, lines[2], "yes") // holiday flag
	assert.NotContains(t, out, "open")
	assert.NotContains(t, out, "v1")
}

func TestWriteSummaryCSV(t *testing.T) {
	// GIVEN: A summary with zero overtime and deductions disabled
	// WHEN: Exporting the salary report
	// THEN: Zero components and the deductions block are omitted
	settings := payroll.DefaultSettings()
	shifts := []payroll.Shift{
		{ID: "s1", Date: payroll.NewDate(2024, 3, 4), StartTime: "09:00", EndTime: "17:00",
			Type: payroll.ShiftRegular},
	}
	summary, err := payroll.SummarizeMonth(shifts, settings, 2024, time.March)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, export.WriteSummaryCSV(&buf, summary, settings, 2024, time.March))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\uFEFF"))
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Regular hours,320.00")
	assert.NotContains(t, out, "Overtime 125%")
	assert.NotContains(t, out, "Deductions:")
	assert.NotContains(t, out, "Net pay")
	assert.Contains(t, out, "Gross total,320.00")
}

func TestWriteSummaryCSV_WithDeductions(t *testing.T) {
	settings := payroll.DefaultSettings()
	settings.CalculateDeductions = true
	shifts := []payroll.Shift{
		{ID: "s1", Date: payroll.NewDate(2024, 3, 4), StartTime: "09:00", EndTime: "17:00",
			Type: payroll.ShiftRegular},
	}
	summary, err := payroll.SummarizeMonth(shifts, settings, 2024, time.March)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, export.WriteSummaryCSV(&buf, summary, settings, 2024, time.March))

	out := buf.String()
	assert.Contains(t, out, "Deductions:")
	assert.Contains(t, out, "Social security,22.40") // 7% of 320
	assert.Contains(t, out, "Total deductions,81.60")
	assert.Contains(t, out, "Net pay,238.40")
}

func TestShiftsText(t *testing.T) {
	text, err := export.ShiftsText(sampleShifts())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date\tDay\tStart\tEnd\tHours\tHoliday\tNotes", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-04\tMonday\t09:00\t17:30\t08:30"))
}

func TestWriteShiftsCSV_BadShiftSurfacesError(t *testing.T) {
	var buf strings.Builder
	err := export.WriteShiftsCSV(&buf, []payroll.Shift{
		{ID: "bad", Date: payroll.NewDate(2024, 3, 4), StartTime: "junk", EndTime: "17:00",
			Type: payroll.ShiftRegular},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}
