package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/pkg/metrics"
)

// MemoryStore keeps the dataset in memory behind a read/write lock.
type MemoryStore struct {
	mu       sync.RWMutex
	ds       model.Dataset
	byID     map[string]int
	loadedAt time.Time

	now     func() time.Time
	metrics bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byID:    make(map[string]int),
		now:     time.Now,
		metrics: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace swaps the snapshot. The store keeps its own copy of ds.
func (s *MemoryStore) Replace(_ context.Context, ds model.Dataset) {
	snap := cloneDataset(ds)
	byID := make(map[string]int, len(snap.Players))
	for i, p := range snap.Players {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = i
		}
	}

	s.mu.Lock()
	s.ds = snap
	s.byID = byID
	s.loadedAt = s.now()
	s.mu.Unlock()

	if s.metrics {
		s.updateMetrics(snap, byID)
	}
}

// Snapshot returns a copy of the current dataset and its load time.
func (s *MemoryStore) Snapshot(_ context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Dataset: cloneDataset(s.ds), LoadedAt: s.loadedAt}
}

// Player returns the first player row with id.
func (s *MemoryStore) Player(_ context.Context, id string) (model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return model.PlayerRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.ds.Players[i], nil
}

func (s *MemoryStore) updateMetrics(ds model.Dataset, byID map[string]int) {
	metrics.UpdateRecordsLoaded(metrics.TablePlayers, len(ds.Players))
	metrics.UpdateRecordsLoaded(metrics.TableReports, len(ds.Reports))
	metrics.UpdateRecordsLoaded(metrics.TableShortlist, len(ds.Shortlist))

	dangling := 0
	for _, r := range ds.Reports {
		if _, ok := byID[r.PlayerID]; !ok {
			dangling++
		}
	}
	metrics.UpdateDanglingReferences(metrics.TableReports, dangling)

	dangling = 0
	for _, e := range ds.Shortlist {
		if _, ok := byID[e.PlayerID]; !ok {
			dangling++
		}
	}
	metrics.UpdateDanglingReferences(metrics.TableShortlist, dangling)
}

func cloneDataset(ds model.Dataset) model.Dataset {
	return model.Dataset{
		Players:   slices.Clone(ds.Players),
		Reports:   slices.Clone(ds.Reports),
		Shortlist: slices.Clone(ds.Shortlist),
	}
}
