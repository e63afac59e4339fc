package payroll

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Calendar date at day granularity (UTC)
// =============================================================================

const dateLayout = "2006-01-02"

// Date is a calendar date. All comparisons are by calendar day; the engine
// never cares about time zones, so dates are pinned to UTC midnight.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t.UTC()}, nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool  { return d.Time.Equal(other.Time) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{Time: d.Time.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

// IsShabbat reports whether the date falls on Saturday.
func (d Date) IsShabbat() bool { return d.Weekday() == time.Saturday }

func (d Date) String() string { return d.Time.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// CLOCK TIMES - "HH:MM" parsing and shift duration
// =============================================================================

var minutesPerHour = decimal.NewFromInt(60)

// ParseClock parses a "HH:MM" time-of-day into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// Duration computes the worked duration between two clock times as a
// fractional hour count. When the end time is not later than the start
// time, 24 hours are added: the shift crossed midnight (22:00-06:00 is
// 8 hours, not -16).
func Duration(startTime, endTime string) (decimal.Decimal, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("end time: %w", err)
	}
	if end <= start {
		end += 24 * 60
	}
	return decimal.NewFromInt(int64(end - start)).Div(minutesPerHour), nil
}

// FormatHours renders a fractional hour count as "HH:MM" for display,
// truncating seconds the way the shift log does.
func FormatHours(hours decimal.Decimal) string {
	totalMinutes := hours.Mul(minutesPerHour).IntPart()
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
