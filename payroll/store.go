/*
store.go - Persistence interfaces for shifts and settings

PURPOSE:
  Defines the contracts between the engine's callers and storage. The
  engine itself is pure - it takes shifts and settings as arguments - so
  these interfaces exist for the glue layers (tracker, HTTP API, CLI).

CONTRACTS:
  ShiftStore:    Stable identifiers, point lookups by ID. Consistency
                 and durability are the store's concern, not the engine's.
  SettingsStore: Load must return a fully-populated Settings, merged
                 with defaults, so newly introduced fields are never
                 absent. The engine performs no defaulting itself.

IMPLEMENTATIONS:
  - payroll/store: in-memory, for tests and development
  - store/sqlite:  SQLite-backed, for the server
*/
package payroll

import "context"

// ShiftStore supplies shift records with stable identifiers.
type ShiftStore interface {
	// ListShifts returns all shifts. Order is unspecified; the engine
	// filters and aggregates regardless of order.
	ListShifts(ctx context.Context) ([]Shift, error)

	// GetShift returns the shift with the given ID, or ErrShiftNotFound.
	GetShift(ctx context.Context, id string) (Shift, error)

	// PutShift inserts or replaces a shift by ID.
	PutShift(ctx context.Context, shift Shift) error

	// DeleteShift removes a shift. Returns ErrShiftNotFound for unknown IDs.
	DeleteShift(ctx context.Context, id string) error
}

// SettingsStore supplies the single active Settings instance.
type SettingsStore interface {
	// LoadSettings returns the current settings merged with defaults.
	// A store with nothing persisted returns DefaultSettings().
	LoadSettings(ctx context.Context) (Settings, error)

	// SaveSettings replaces the current settings.
	SaveSettings(ctx context.Context, settings Settings) error
}
