/*
demo.go - Demo month loader for testing and demonstrations

PURPOSE:

	Seeds the shift store with a realistic month of data so the summary,
	export, and report screens have something to show. The seeded month
	exercises every pay component: regular hours, both overtime tiers, a
	Shabbat shift, a manual holiday, a vacation day, and a sick day.

USAGE VIA API:

	POST /api/demo/load
	{"year": 2026, "month": 3}

	Omitting the body seeds the current month.

NOTE:

	Existing shifts for the seeded month are left in place; seeded shifts
	use deterministic IDs so reloading the demo overwrites itself instead
	of piling up duplicates.

SEE ALSO:
  - handlers.go: The rest of the API surface
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hoursly/shiftpay/payroll"
)

type demoRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// LoadDemo seeds a demonstration month of shifts.
func (h *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := demoRequest{Year: now.Year(), Month: int(now.Month())}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}
	if req.Year < 1970 || req.Year > 9999 || req.Month < 1 || req.Month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid year or month", nil)
		return
	}

	shifts := demoMonth(req.Year, time.Month(req.Month))
	for _, shift := range shifts {
		if err := h.Shifts.PutShift(r.Context(), shift); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed demo data", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "loaded",
		"year":   req.Year,
		"month":  req.Month,
		"shifts": len(shifts),
	})
}

// demoMonth builds the seed shifts for a month. Day numbers are chosen
// relative to the first Saturday so the Shabbat shift really lands on
// a Saturday regardless of the month requested.
func demoMonth(year int, month time.Month) []payroll.Shift {
	first := payroll.NewDate(year, month, 1)
	saturday := first
	for saturday.Weekday() != time.Saturday {
		saturday = saturday.AddDays(1)
	}

	id := func(n int) string { return fmt.Sprintf("demo-%d-%02d-%02d", year, int(month), n) }

	return []payroll.Shift{
		// A plain 8-hour day.
		{ID: id(1), Date: payroll.NewDate(year, month, 2), StartTime: "09:00", EndTime: "17:00", Type: payroll.ShiftRegular, Notes: "Regular day"},
		// 9.5 hours: 8 regular + 1.5 at 125%.
		{ID: id(2), Date: payroll.NewDate(year, month, 3), StartTime: "08:30", EndTime: "18:00", Type: payroll.ShiftRegular, Notes: "Stayed late"},
		// 12 hours: 8 + 2 at 125% + 2 at 150%.
		{ID: id(3), Date: payroll.NewDate(year, month, 5), StartTime: "07:00", EndTime: "19:00", Type: payroll.ShiftRegular, Notes: "Inventory count"},
		// Night shift crossing midnight, 8 hours.
		{ID: id(4), Date: payroll.NewDate(year, month, 9), StartTime: "22:00", EndTime: "06:00", Type: payroll.ShiftRegular, Notes: "Night shift"},
		// Saturday shift; becomes premium pay when the Shabbat setting is on.
		{ID: id(5), Date: saturday, StartTime: "10:00", EndTime: "18:00", Type: payroll.ShiftRegular, Notes: "Weekend cover"},
		// Manual holiday flag.
		{ID: id(6), Date: payroll.NewDate(year, month, 15), StartTime: "09:00", EndTime: "17:00", IsHoliday: true, Type: payroll.ShiftRegular, Notes: "Holiday cover"},
		{ID: id(7), Date: payroll.NewDate(year, month, 17), StartTime: "09:00", EndTime: "17:30", Type: payroll.ShiftRegular},
		{ID: id(8), Date: payroll.NewDate(year, month, 22), StartTime: "12:00", EndTime: "20:00", Type: payroll.ShiftRegular},
		{ID: id(9), Date: payroll.NewDate(year, month, 24), Type: payroll.ShiftVacation, Notes: "Long weekend"},
		{ID: id(10), Date: payroll.NewDate(year, month, 26), Type: payroll.ShiftSick},
	}
}
