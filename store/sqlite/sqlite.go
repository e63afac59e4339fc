/*
Package sqlite provides a SQLite-backed implementation of the payroll
storage interfaces.

PURPOSE:
  Implements payroll.ShiftStore and payroll.SettingsStore using SQLite.
  This is a single-user tool, so one local database file is the whole
  persistence story.

KEY TABLES:
  shifts:   One row per shift record, keyed by ID
  settings: A single JSON document (row id = 1)

SETTINGS MERGE:
  Settings are stored as JSON and decoded through
  payroll.UnmarshalSettings, which deep-merges the stored document over
  DefaultSettings(). Fields introduced after the document was written
  come back with their defaults - no migration needed.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/shiftpay.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). Use ":memory:" for tests.

SEE ALSO:
  - payroll/store.go: Interface definitions
  - payroll/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hoursly/shiftpay/payroll"
)

// Store implements payroll.ShiftStore and payroll.SettingsStore.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ payroll.ShiftStore = (*Store)(nil)
var _ payroll.SettingsStore = (*Store)(nil)

// New creates a SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL DEFAULT '',
		is_holiday INTEGER NOT NULL DEFAULT 0,
		shift_type TEXT NOT NULL DEFAULT 'regular',
		notes TEXT NOT NULL DEFAULT '',
		in_progress INTEGER NOT NULL DEFAULT 0
	);

	-- Period filtering is the hot path
	CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);

	-- Settings is a single JSON document; id is pinned to 1
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SHIFT STORE
// =============================================================================

func (s *Store) ListShifts(ctx context.Context) ([]payroll.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, start_time, end_time, is_holiday, shift_type, notes, in_progress
		FROM shifts ORDER BY date, start_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []payroll.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

func (s *Store) GetShift(ctx context.Context, id string) (payroll.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, start_time, end_time, is_holiday, shift_type, notes, in_progress
		FROM shifts WHERE id = ?`, id)
	shift, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.Shift{}, payroll.ErrShiftNotFound
	}
	return shift, err
}

func (s *Store) PutShift(ctx context.Context, shift payroll.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO shifts
			(id, date, start_time, end_time, is_holiday, shift_type, notes, in_progress)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		shift.ID, shift.Date.String(), shift.StartTime, shift.EndTime,
		boolToInt(shift.IsHoliday), string(shift.Type), shift.Notes,
		boolToInt(shift.InProgress))
	return err
}

func (s *Store) DeleteShift(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return payroll.ErrShiftNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (payroll.Shift, error) {
	var (
		shift                 payroll.Shift
		date, shiftType       string
		isHoliday, inProgress int
	)
	err := row.Scan(&shift.ID, &date, &shift.StartTime, &shift.EndTime,
		&isHoliday, &shiftType, &shift.Notes, &inProgress)
	if err != nil {
		return payroll.Shift{}, err
	}
	shift.Date, err = payroll.ParseDate(date)
	if err != nil {
		return payroll.Shift{}, err
	}
	shift.Type = payroll.ShiftType(shiftType)
	shift.IsHoliday = isHoliday != 0
	shift.InProgress = inProgress != 0
	return shift, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// =============================================================================
// SETTINGS STORE
// =============================================================================

func (s *Store) LoadSettings(ctx context.Context) (payroll.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM settings WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.DefaultSettings(), nil
	}
	if err != nil {
		return payroll.Settings{}, err
	}
	return payroll.UnmarshalSettings([]byte(payload))
}

func (s *Store) SaveSettings(ctx context.Context, settings payroll.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (id, payload) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`, string(payload))
	return err
}
