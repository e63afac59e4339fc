/*
handlers.go - HTTP API handlers for the shift-pay server

PURPOSE:
  Exposes the payroll engine and shift tracker via REST. Handles HTTP
  request/response, JSON serialization, and delegates to the engine and
  the stores.

ENDPOINTS:
  Shifts:
    GET    /api/shifts            List all shifts
    POST   /api/shifts            Create a shift (manual entry)
    GET    /api/shifts/{id}       Get one shift
    PUT    /api/shifts/{id}       Replace a shift
    DELETE /api/shifts/{id}       Delete a shift

  Clock:
    POST   /api/clock/in          Start an in-progress shift
    POST   /api/clock/out         Complete the in-progress shift
    GET    /api/clock/status      Live timer state

  Settings:
    GET    /api/settings          Current settings (merged with defaults)
    PUT    /api/settings          Replace settings (normalized first)

  Summary & export:
    GET    /api/summary?year=&month=        Monthly summary
    GET    /api/export/shifts.csv?year=&month=
    GET    /api/export/summary.csv?year=&month=

  Demo:
    POST   /api/demo/load         Seed a demonstration month (dev aid)

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Shift not found
  - 409: Clock-in/out conflicts
  - 500: Internal errors

SEE ALSO:
  - dto.go: Derived response structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hoursly/shiftpay/export"
	"github.com/hoursly/shiftpay/payroll"
	"github.com/hoursly/shiftpay/tracker"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Shifts   payroll.ShiftStore
	Settings payroll.SettingsStore
	Tracker  *tracker.Tracker
}

// NewHandler wires the handler with its stores and tracker.
func NewHandler(shifts payroll.ShiftStore, settings payroll.SettingsStore, trk *tracker.Tracker) *Handler {
	return &Handler{Shifts: shifts, Settings: settings, Tracker: trk}
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns all shifts.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Shifts.ListShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}
	if shifts == nil {
		shifts = []payroll.Shift{}
	}
	writeJSON(w, http.StatusOK, shifts)
}

// CreateShift records a manually entered shift.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var shift payroll.Shift
	if err := json.NewDecoder(r.Body).Decode(&shift); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	if err := validateShift(shift); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}
	if err := h.Shifts.PutShift(r.Context(), shift); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusCreated, shift)
}

// GetShift returns a single shift.
func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift, err := h.Shifts.GetShift(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, payroll.ErrShiftNotFound) {
		writeError(w, http.StatusNotFound, "Shift not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get shift", err)
		return
	}
	writeJSON(w, http.StatusOK, shift)
}

// UpdateShift replaces a shift by ID.
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Shifts.GetShift(r.Context(), id); errors.Is(err, payroll.ErrShiftNotFound) {
		writeError(w, http.StatusNotFound, "Shift not found", err)
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get shift", err)
		return
	}

	var shift payroll.Shift
	if err := json.NewDecoder(r.Body).Decode(&shift); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shift.ID = id
	if err := validateShift(shift); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}
	if err := h.Shifts.PutShift(r.Context(), shift); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusOK, shift)
}

// DeleteShift removes a shift.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	err := h.Shifts.DeleteShift(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, payroll.ErrShiftNotFound) {
		writeError(w, http.StatusNotFound, "Shift not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete shift", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateShift rejects records the engine would later choke on.
// Day-off entries carry no meaningful times, so only regular shifts get
// their clocks checked.
func validateShift(shift payroll.Shift) error {
	switch shift.Type {
	case payroll.ShiftRegular, payroll.ShiftVacation, payroll.ShiftSick:
	default:
		return fmt.Errorf("unknown shift type %q", shift.Type)
	}
	if shift.Date.IsZero() {
		return payroll.ErrInvalidDate
	}
	if shift.Type != payroll.ShiftRegular {
		return nil
	}
	if _, err := payroll.ParseClock(shift.StartTime); err != nil {
		return err
	}
	if !shift.InProgress {
		if _, err := payroll.ParseClock(shift.EndTime); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// CLOCK HANDLERS
// =============================================================================

// ClockIn starts an in-progress shift.
func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	shift, err := h.Tracker.ClockIn(r.Context())
	if errors.Is(err, tracker.ErrAlreadyClockedIn) {
		writeError(w, http.StatusConflict, "Already clocked in", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clock in", err)
		return
	}
	writeJSON(w, http.StatusCreated, shift)
}

// ClockOut completes the in-progress shift.
func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req ClockOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	shift, err := h.Tracker.ClockOut(r.Context(), req.Notes)
	if errors.Is(err, tracker.ErrNotClockedIn) {
		writeError(w, http.StatusConflict, "No shift in progress", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clock out", err)
		return
	}
	writeJSON(w, http.StatusOK, shift)
}

// ClockStatus reports the live timer state.
func (h *Handler) ClockStatus(w http.ResponseWriter, r *http.Request) {
	active, err := h.Tracker.Active(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read clock state", err)
		return
	}
	status := ClockStatusDTO{Active: active != nil, Shift: active}
	if active != nil {
		elapsed, err := h.Tracker.Elapsed(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to compute elapsed time", err)
			return
		}
		status.ElapsedSeconds = int64(elapsed.Seconds())
	}
	writeJSON(w, http.StatusOK, status)
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the current settings, merged with defaults.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.LoadSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings replaces the settings after normalization. Partially
// populated documents are merged over the defaults, never stored bare.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	merged, err := payroll.UnmarshalSettings(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid settings document", err)
		return
	}
	normalized, err := merged.Normalize()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid settings", err)
		return
	}
	if err := h.Settings.SaveSettings(r.Context(), normalized); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, normalized)
}

// =============================================================================
// SUMMARY & EXPORT HANDLERS
// =============================================================================

// GetSummary computes the monthly summary for ?year=&month= (month 1-12).
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	shifts, settings, ok := h.loadInputs(w, r)
	if !ok {
		return
	}

	summary, err := payroll.SummarizeMonth(shifts, settings, year, month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to summarize month", err)
		return
	}
	period := payroll.ResolveMonthRange(year, month, settings.MonthStartDay)
	writeJSON(w, http.StatusOK, toSummaryDTO(summary, settings, period, year, int(month)))
}

// ExportShiftsCSV streams the period's shift log as CSV.
func (h *Handler) ExportShiftsCSV(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}
	shifts, settings, ok := h.loadInputs(w, r)
	if !ok {
		return
	}

	period := payroll.ResolveMonthRange(year, month, settings.MonthStartDay)
	var inPeriod []payroll.Shift
	for _, shift := range shifts {
		if period.Contains(shift.Date) {
			inPeriod = append(inPeriod, shift)
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="shifts_%d_%02d.csv"`, year, int(month)))
	if err := export.WriteShiftsCSV(w, inPeriod); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export shifts", err)
	}
}

// ExportSummaryCSV streams the monthly salary report as CSV.
func (h *Handler) ExportSummaryCSV(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}
	shifts, settings, ok := h.loadInputs(w, r)
	if !ok {
		return
	}

	summary, err := payroll.SummarizeMonth(shifts, settings, year, month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to summarize month", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="salary_report_%d_%02d.csv"`, year, int(month)))
	if err := export.WriteSummaryCSV(w, summary, settings, year, month); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export summary", err)
	}
}

// loadInputs fetches shifts plus normalized settings, writing the error
// response itself on failure.
func (h *Handler) loadInputs(w http.ResponseWriter, r *http.Request) ([]payroll.Shift, payroll.Settings, bool) {
	shifts, err := h.Shifts.ListShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return nil, payroll.Settings{}, false
	}
	settings, err := h.Settings.LoadSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return nil, payroll.Settings{}, false
	}
	normalized, err := settings.Normalize()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Stored settings are invalid", err)
		return nil, payroll.Settings{}, false
	}
	return shifts, normalized, true
}

func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1970 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid or missing year", err)
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid or missing month (1-12)", err)
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Error = fmt.Sprintf("%s: %v", message, err)
	}
	writeJSON(w, status, resp)
}
