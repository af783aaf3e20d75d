// Package store is the persistence boundary for the account record. A store
// holds at most one record per device (single-slot): Save overwrites it,
// Load returns it or nil, Clear erases it.
package store

import (
	"context"

	"github.com/tobim/famvault/internal/account"
)

// Store is the account persistence contract.
//
// Contract:
//   - Ready: initialize the underlying storage (open, migrate).
//   - Load: return the persisted record, or nil if none exists.
//   - Save: overwrite the persisted record with the given one.
//   - Clear: erase the persisted record; a no-op if none exists.
//
// All methods must honor context cancellation/timeouts.
type Store interface {
	Ready(ctx context.Context) error
	Load(ctx context.Context) (*account.Record, error)
	Save(ctx context.Context, r *account.Record) error
	Clear(ctx context.Context) error
}
