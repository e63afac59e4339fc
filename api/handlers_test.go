/*
handlers_test.go - HTTP-level tests for the API

Tests exercise the full router (middleware included) over the in-memory
store, so URL routing, JSON shapes, and status codes are all covered.
*/
package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoursly/shiftpay/api"
	"github.com/hoursly/shiftpay/payroll"
	"github.com/hoursly/shiftpay/payroll/store"
	"github.com/hoursly/shiftpay/tracker"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type testEnv struct {
	server *httptest.Server
	store  *store.Memory
	clock  *fakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mem := store.NewMemory()
	clock := &fakeClock{now: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)}
	handler := api.NewHandler(mem, mem, tracker.New(mem, clock))
	server := httptest.NewServer(api.NewRouter(handler))
	t.Cleanup(server.Close)
	return &testEnv{server: server, store: mem, clock: clock}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, e.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// =============================================================================
// SHIFT CRUD
// =============================================================================

func TestShiftCRUD(t *testing.T) {
	env := newTestEnv(t)

	// Empty list comes back as [], not null
	resp := env.do(t, http.MethodGet, "/api/shifts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]payroll.Shift](t, resp))

	// Create
	resp = env.do(t, http.MethodPost, "/api/shifts",
		`{"date": "2024-03-04", "startTime": "09:00", "endTime": "17:00", "shiftType": "regular", "notes": "first"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[payroll.Shift](t, resp)
	assert.NotEmpty(t, created.ID, "server should assign an ID")

	// Get
	resp = env.do(t, http.MethodGet, "/api/shifts/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode[payroll.Shift](t, resp))

	// Update
	resp = env.do(t, http.MethodPut, "/api/shifts/"+created.ID,
		`{"date": "2024-03-04", "startTime": "09:00", "endTime": "18:00", "shiftType": "regular"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[payroll.Shift](t, resp)
	assert.Equal(t, created.ID, updated.ID, "ID comes from the URL")
	assert.Equal(t, "18:00", updated.EndTime)

	// Delete
	resp = env.do(t, http.MethodDelete, "/api/shifts/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/shifts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateShift_Validation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body string
	}{
		{"unknown type", `{"date": "2024-03-04", "startTime": "09:00", "endTime": "17:00", "shiftType": "overtime"}`},
		{"missing date", `{"startTime": "09:00", "endTime": "17:00", "shiftType": "regular"}`},
		{"bad start time", `{"date": "2024-03-04", "startTime": "9am", "endTime": "17:00", "shiftType": "regular"}`},
		{"missing end time", `{"date": "2024-03-04", "startTime": "09:00", "shiftType": "regular"}`},
		{"malformed json", `{"date":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/api/shifts", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	// Day-off entries need no times
	resp := env.do(t, http.MethodPost, "/api/shifts", `{"date": "2024-03-05", "shiftType": "vacation"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUpdateShift_NotFound(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPut, "/api/shifts/nope",
		`{"date": "2024-03-04", "startTime": "09:00", "endTime": "17:00", "shiftType": "regular"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/shifts/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// CLOCK
// =============================================================================

func TestClockLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	// Idle status
	resp := env.do(t, http.MethodGet, "/api/clock/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decode[api.ClockStatusDTO](t, resp)
	assert.False(t, status.Active)

	// Clock in
	resp = env.do(t, http.MethodPost, "/api/clock/in", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	opened := decode[payroll.Shift](t, resp)
	assert.True(t, opened.InProgress)
	assert.Equal(t, "09:00", opened.StartTime)

	// Double clock-in conflicts
	resp = env.do(t, http.MethodPost, "/api/clock/in", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Status reflects elapsed time
	env.clock.now = env.clock.now.Add(90 * time.Minute)
	resp = env.do(t, http.MethodGet, "/api/clock/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status = decode[api.ClockStatusDTO](t, resp)
	require.True(t, status.Active)
	assert.Equal(t, int64(90*60), status.ElapsedSeconds)

	// Clock out with notes
	resp = env.do(t, http.MethodPost, "/api/clock/out", `{"notes": "done"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	closed := decode[payroll.Shift](t, resp)
	assert.Equal(t, opened.ID, closed.ID)
	assert.Equal(t, "10:30", closed.EndTime)
	assert.Equal(t, "done", closed.Notes)

	// Clock out again conflicts
	resp = env.do(t, http.MethodPost, "/api/clock/out", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// =============================================================================
// SETTINGS
// =============================================================================

func TestSettingsGetAndUpdate(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	settings := decode[payroll.Settings](t, resp)
	assert.Equal(t, payroll.DefaultSettings(), settings)

	// Partial update merges over defaults before storing
	resp = env.do(t, http.MethodPut, "/api/settings", `{"hourlyRate": 50, "shabbatPremium": {"enabled": true}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[payroll.Settings](t, resp)
	assert.Equal(t, 50.0, updated.HourlyRate)
	assert.True(t, updated.ShabbatPremium.Enabled)
	assert.Equal(t, 10000.0, updated.MonthlySalary, "absent fields keep defaults")

	// Invalid documents are rejected before storage
	resp = env.do(t, http.MethodPut, "/api/settings", `{"monthStartDay": 31}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/settings", "")
	settings = decode[payroll.Settings](t, resp)
	assert.Equal(t, 50.0, settings.HourlyRate, "rejected update must not overwrite")
}

// =============================================================================
// SUMMARY & EXPORT
// =============================================================================

func seedMarch(t *testing.T, env *testEnv) {
	t.Helper()
	for i, body := range []string{
		`{"id": "s1", "date": "2024-03-04", "startTime": "09:00", "endTime": "17:00", "shiftType": "regular"}`,
		`{"id": "s2", "date": "2024-03-05", "startTime": "07:00", "endTime": "19:00", "shiftType": "regular"}`,
		`{"id": "v1", "date": "2024-03-06", "shiftType": "vacation"}`,
	} {
		resp := env.do(t, http.MethodPost, "/api/shifts", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode, "seed shift %d", i)
	}
}

func TestGetSummary(t *testing.T) {
	env := newTestEnv(t)
	seedMarch(t, env)

	resp := env.do(t, http.MethodGet, "/api/summary?year=2024&month=3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[api.SummaryDTO](t, resp)

	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, "2024-03-01", summary.PeriodStart)
	assert.Equal(t, "2024-03-31", summary.PeriodEnd)
	assert.Equal(t, 3, summary.ShiftsCount)
	assert.Equal(t, 20.0, summary.TotalHours)
	// s1: 8h regular; s2: 8h + 2h@125% + 2h@150% at rate 40
	assert.Equal(t, 640.0, summary.RegularPay)
	assert.Equal(t, 100.0, summary.Overtime125Pay)
	assert.Equal(t, 120.0, summary.Overtime150Pay)
	assert.Equal(t, 860.0, summary.GrossTotal)
	assert.Equal(t, 1, summary.VacationDaysUsed)
}

func TestGetSummary_BadParams(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{
		"/api/summary",
		"/api/summary?year=2024",
		"/api/summary?year=2024&month=13",
		"/api/summary?year=abc&month=3",
	} {
		resp := env.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestExportEndpoints(t *testing.T) {
	env := newTestEnv(t)
	seedMarch(t, env)

	resp := env.do(t, http.MethodGet, "/api/export/shifts.csv?year=2024&month=3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "shifts_2024_03.csv")

	resp = env.do(t, http.MethodGet, "/api/export/summary.csv?year=2024&month=3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "salary_report_2024_03.csv")
}

// =============================================================================
// DEMO LOADER
// =============================================================================

func TestLoadDemo(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/demo/load", `{"year": 2024, "month": 3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[map[string]any](t, resp)
	assert.Equal(t, "loaded", result["status"])

	resp = env.do(t, http.MethodGet, "/api/shifts", "")
	shifts := decode[[]payroll.Shift](t, resp)
	assert.NotEmpty(t, shifts)

	// Reloading overwrites instead of duplicating
	resp = env.do(t, http.MethodPost, "/api/demo/load", `{"year": 2024, "month": 3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/api/shifts", "")
	again := decode[[]payroll.Shift](t, resp)
	assert.Equal(t, len(shifts), len(again))

	// The seeded month summarizes without errors
	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/summary?year=%d&month=%d", 2024, 3), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
