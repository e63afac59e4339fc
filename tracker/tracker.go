/*
Package tracker implements the clock-in/clock-out lifecycle on top of the
payroll engine's shift store.

PURPOSE:
  The engine is pure and never reads the system clock; this package owns
  the stateful part of shift tracking. A clock-in creates an in-progress
  shift attributed to today; a clock-out stamps the end time and clears
  the in-progress flag. At most one shift can be in progress at a time.

  Times are recorded at minute resolution ("HH:MM"), matching the
  engine's duration arithmetic. A shift clocked out after midnight keeps
  its start date - the engine's midnight-rollover rule handles the rest.

SEE ALSO:
  - payroll/store.go: The ShiftStore contract this package drives
  - payroll/evaluate.go: How completed shifts are priced
*/
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hoursly/shiftpay/payroll"
)

var (
	// ErrAlreadyClockedIn is returned when a clock-in finds an open shift.
	ErrAlreadyClockedIn = errors.New("a shift is already in progress")

	// ErrNotClockedIn is returned when a clock-out finds no open shift.
	ErrNotClockedIn = errors.New("no shift in progress")
)

const clockLayout = "15:04"

// Clock supplies "now" for clock-in/out timestamping. The engine itself
// takes explicit dates and times; only the tracker consults a clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Tracker drives the shift lifecycle against a ShiftStore.
type Tracker struct {
	shifts payroll.ShiftStore
	clock  Clock
}

func New(shifts payroll.ShiftStore, clock Clock) *Tracker {
	return &Tracker{shifts: shifts, clock: clock}
}

// Active returns the in-progress shift, or nil when not clocked in.
func (t *Tracker) Active(ctx context.Context) (*payroll.Shift, error) {
	shifts, err := t.shifts.ListShifts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shifts {
		if shifts[i].InProgress {
			return &shifts[i], nil
		}
	}
	return nil, nil
}

// ClockIn opens a new in-progress shift starting now.
func (t *Tracker) ClockIn(ctx context.Context) (payroll.Shift, error) {
	active, err := t.Active(ctx)
	if err != nil {
		return payroll.Shift{}, err
	}
	if active != nil {
		return payroll.Shift{}, fmt.Errorf("%w (since %s)", ErrAlreadyClockedIn, active.StartTime)
	}

	now := t.clock.Now()
	shift := payroll.Shift{
		ID:         uuid.NewString(),
		Date:       payroll.NewDate(now.Year(), now.Month(), now.Day()),
		StartTime:  now.Format(clockLayout),
		Type:       payroll.ShiftRegular,
		InProgress: true,
	}
	if err := t.shifts.PutShift(ctx, shift); err != nil {
		return payroll.Shift{}, err
	}
	return shift, nil
}

// ClockOut completes the in-progress shift, stamping the end time.
// The shift keeps its start date even when the clock-out happens after
// midnight.
func (t *Tracker) ClockOut(ctx context.Context, notes string) (payroll.Shift, error) {
	active, err := t.Active(ctx)
	if err != nil {
		return payroll.Shift{}, err
	}
	if active == nil {
		return payroll.Shift{}, ErrNotClockedIn
	}

	shift := *active
	shift.EndTime = t.clock.Now().Format(clockLayout)
	shift.InProgress = false
	if notes != "" {
		shift.Notes = notes
	}
	if err := t.shifts.PutShift(ctx, shift); err != nil {
		return payroll.Shift{}, err
	}
	return shift, nil
}

// Elapsed returns how long the in-progress shift has been running, for
// the live timer display. Returns ErrNotClockedIn when idle.
func (t *Tracker) Elapsed(ctx context.Context) (time.Duration, error) {
	active, err := t.Active(ctx)
	if err != nil {
		return 0, err
	}
	if active == nil {
		return 0, ErrNotClockedIn
	}

	startMinutes, err := payroll.ParseClock(active.StartTime)
	if err != nil {
		return 0, err
	}

	// Rebuild the start instant in the clock's own location: StartTime was
	// stamped from the same clock we read now.
	now := t.clock.Now()
	started := time.Date(active.Date.Year(), active.Date.Month(), active.Date.Day(),
		startMinutes/60, startMinutes%60, 0, 0, now.Location())
	elapsed := now.Sub(started)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}
	return elapsed, nil
}
