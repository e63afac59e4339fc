// Package store provides in-memory implementations of the payroll
// storage interfaces, for tests and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/hoursly/shiftpay/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory ShiftStore + SettingsStore
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	shifts   map[string]payroll.Shift
	settings *payroll.Settings
}

func NewMemory() *Memory {
	return &Memory{shifts: make(map[string]payroll.Shift)}
}

func (m *Memory) ListShifts(_ context.Context) ([]payroll.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.Shift, 0, len(m.shifts))
	for _, s := range m.shifts {
		result = append(result, s)
	}
	// Stable output: by date, then start time, then ID
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *Memory) GetShift(_ context.Context, id string) (payroll.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shift, ok := m.shifts[id]
	if !ok {
		return payroll.Shift{}, payroll.ErrShiftNotFound
	}
	return shift, nil
}

func (m *Memory) PutShift(_ context.Context, shift payroll.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shifts[shift.ID] = shift
	return nil
}

func (m *Memory) DeleteShift(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shifts[id]; !ok {
		return payroll.ErrShiftNotFound
	}
	delete(m.shifts, id)
	return nil
}

func (m *Memory) LoadSettings(_ context.Context) (payroll.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return payroll.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *Memory) SaveSettings(_ context.Context, settings payroll.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}
