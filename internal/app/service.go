// Package service composes the data source, the dataset store and the
// aggregation and card packages into dashboard render passes.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/scoutboard/internal/adapters/repository"
	"github.com/okian/scoutboard/internal/adapters/source"
	"github.com/okian/scoutboard/internal/domain/aggregation"
	"github.com/okian/scoutboard/internal/domain/cards"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

// Sentinel kinds for service errors.
var (
	ErrNotStarted = errors.New("service not started")
	ErrNotFound   = repository.ErrNotFound
)

// DatasetLoader reads the three tables.
type DatasetLoader interface {
	Load(ctx context.Context, paths source.Paths) (model.Dataset, error)
}

// SkippedRecord is a player row left out of a render pass.
type SkippedRecord struct {
	Index    int    `json:"index"`
	PlayerID string `json:"player_id,omitempty"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
}

// Dashboard is the full output of one render pass.
type Dashboard struct {
	RenderID    string               `json:"render_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	LoadedAt    time.Time            `json:"loaded_at"`
	Summary     model.SummaryMetrics `json:"summary"`
	KPIs        []model.KPICard      `json:"kpis"`
	Players     []model.PlayerCard   `json:"players"`
	Skipped     []SkippedRecord      `json:"skipped"`
}

// Service serves dashboard render passes over the loaded dataset.
type Service struct {
	mu sync.RWMutex

	loader DatasetLoader
	store  repository.Store
	paths  source.Paths

	maxCards int
	now      func() time.Time

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets the dataset loader.
func WithLoader(l DatasetLoader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithStore sets the dataset store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithPaths sets the table files to load.
func WithPaths(p source.Paths) Option {
	return func(s *Service) {
		s.paths = p
	}
}

// WithMaxCards caps the player cards per render pass. 0 means unlimited.
func WithMaxCards(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxCards = n
		}
	}
}

// WithClock sets the time source used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		loader: source.NewLoader(),
		store:  repository.NewMemoryStore(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the initial load. Calling Start on a started service is a
// no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...",
		logger.String("players", s.paths.Players),
		logger.String("reports", s.paths.Reports),
		logger.String("shortlist", s.paths.Shortlist),
	)
	if err := s.load(ctx); err != nil {
		return err
	}
	s.started = true
	s.logger.Info(ctx, "dashboard service started")
	return nil
}

// Stop marks the service stopped. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Reload reads the tables again and swaps the snapshot. On failure the
// previous snapshot stays in place.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotStarted
	}
	return s.load(ctx)
}

// load must be called with mu held.
func (s *Service) load(ctx context.Context) error {
	start := time.Now()
	ds, err := s.loader.Load(ctx, s.paths)
	metrics.RecordLoad(float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		s.logger.Error(ctx, "dataset load failed", logger.Error(err))
		return fmt.Errorf("load dataset: %w", err)
	}
	s.store.Replace(ctx, ds)

	if len(ds.Players) == 0 && len(ds.Reports) == 0 && len(ds.Shortlist) == 0 {
		s.logger.Warn(ctx, "dataset is empty; dashboard will show zeroed metrics")
	}
	s.logger.Info(ctx, "dataset loaded",
		logger.Int("players", len(ds.Players)),
		logger.Int("reports", len(ds.Reports)),
		logger.Int("shortlist", len(ds.Shortlist)),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}

// Summary computes the summary metrics for the current snapshot.
func (s *Service) Summary(ctx context.Context) model.SummaryMetrics {
	ds := s.store.Snapshot(ctx)
	return aggregation.ComputeSummary(ds.Players, ds.Reports, ds.Shortlist)
}

// KPIs returns the KPI cards for the current snapshot.
func (s *Service) KPIs(ctx context.Context) []model.KPICard {
	return aggregation.KPIs(s.Summary(ctx))
}

// PlayerCards formats the snapshot's players in order. Invalid rows are
// skipped and returned alongside.
func (s *Service) PlayerCards(ctx context.Context) ([]model.PlayerCard, []SkippedRecord) {
	return s.playerCards(ctx, s.store.Snapshot(ctx).Players)
}

func (s *Service) playerCards(ctx context.Context, players []model.PlayerRecord) ([]model.PlayerCard, []SkippedRecord) {
	out, errs := cards.FormatPlayerCards(players)
	skipped := make([]SkippedRecord, 0, len(errs))
	for _, err := range errs {
		var ire *model.InvalidRecordError
		if !errors.As(err, &ire) {
			continue
		}
		skipped = append(skipped, SkippedRecord{Index: ire.Index, PlayerID: ire.PlayerID, Field: ire.Field, Reason: ire.Reason})
		s.log().Warn(ctx, "skipping invalid player record",
			logger.Int("index", ire.Index),
			logger.String("player_id", ire.PlayerID),
			logger.String("field", ire.Field),
			logger.String("reason", ire.Reason),
		)
	}
	if s.maxCards > 0 && len(out) > s.maxCards {
		out = out[:s.maxCards]
	}
	return out, skipped
}

// PlayerCard formats a single player by id. It returns ErrNotFound for an
// unknown id and a *model.InvalidRecordError for an invalid row.
func (s *Service) PlayerCard(ctx context.Context, id string) (model.PlayerCard, error) {
	p, err := s.store.Player(ctx, id)
	if err != nil {
		return model.PlayerCard{}, err
	}
	return cards.FormatPlayerCard(p)
}

// Dashboard runs one full render pass over a single snapshot.
func (s *Service) Dashboard(ctx context.Context) Dashboard {
	start := time.Now()
	snap := s.store.Snapshot(ctx)

	summary := aggregation.ComputeSummary(snap.Players, snap.Reports, snap.Shortlist)
	players, skipped := s.playerCards(ctx, snap.Players)

	d := Dashboard{
		RenderID:    uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		LoadedAt:    snap.LoadedAt.UTC(),
		Summary:     summary,
		KPIs:        aggregation.KPIs(summary),
		Players:     players,
		Skipped:     skipped,
	}

	metrics.RecordRender(float64(time.Since(start).Milliseconds()), len(players), len(skipped))
	s.log().Debug(ctx, "dashboard rendered",
		logger.String("render_id", d.RenderID),
		logger.Int("cards", len(players)),
		logger.Int("skipped", len(skipped)),
	)
	return d
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":  s.started,
		"maxCards": s.maxCards,
	}
	if s.started {
		snap := s.store.Snapshot(ctx)
		stats["players"] = len(snap.Players)
		stats["reports"] = len(snap.Reports)
		stats["shortlist"] = len(snap.Shortlist)
		stats["loadedAt"] = snap.LoadedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}
