// Package repository holds the dataset snapshot served by the dashboard.
package repository

import (
	"context"
	"time"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Snapshot is a copy of the dataset together with the time it was stored.
type Snapshot struct {
	model.Dataset
	// LoadedAt is the time of the Replace that stored Dataset, or the zero
	// time before the first Replace.
	LoadedAt time.Time
}

// Store provides read/write access to the loaded dataset.
type Store interface {
	// Replace swaps the current snapshot for ds.
	Replace(ctx context.Context, ds model.Dataset)

	// Snapshot returns a copy of the current dataset and its load time, read
	// under one lock. Callers may keep and modify it without affecting the
	// store.
	Snapshot(ctx context.Context) Snapshot

	// Player returns the first player row with id.
	// Returns ErrNotFound if no row matches.
	Player(ctx context.Context, id string) (model.PlayerRecord, error)
}
