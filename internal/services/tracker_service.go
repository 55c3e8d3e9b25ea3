package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/logger"
	"coinfolio/internal/market"
	"coinfolio/internal/models"
	"coinfolio/internal/store"
	"coinfolio/internal/valuation"
)

// TrackerOptions tunes tracker behaviour.
type TrackerOptions struct {
	// RefetchOnRefresh makes RefreshPrices fetch a new snapshot before reconciling.
	RefetchOnRefresh bool
}

// trackerService ties the token store, the in-memory snapshot and the
// valuation engine together.
type trackerService struct {
	store    *store.Store
	provider market.Provider
	opts     TrackerOptions
	now      func() time.Time
	log      *zap.SugaredLogger

	mu       sync.RWMutex
	snapshot models.Snapshot
}

// NewTrackerService creates a new TrackerServicer. The store should already be loaded.
func NewTrackerService(s *store.Store, provider market.Provider, opts TrackerOptions) TrackerServicer {
	return &trackerService{
		store:    s,
		provider: provider,
		opts:     opts,
		now:      time.Now,
		log:      logger.Named("tracker"),
		snapshot: models.Snapshot{},
	}
}

// LoadMarkets fetches a snapshot once. A successful fetch replaces the
// snapshot wholesale; a failed one is logged and leaves it as it was.
func (s *trackerService) LoadMarkets(ctx context.Context) error {
	snap, err := s.provider.FetchSnapshot(ctx)
	if err != nil {
		s.log.Warnw("unable to load market data", "provider", s.provider.Name(), "error", err)
		return apperrors.Wrap(apperrors.ErrMarketUnavailable, err)
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.log.Infow("market snapshot loaded", "provider", s.provider.Name(), "quotes", len(snap))
	return nil
}

// Markets returns the current snapshot.
func (s *trackerService) Markets() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// QuickSelect returns the add-form prefill for the quote with the given id.
func (s *trackerService) QuickSelect(id string) (*QuickSelect, error) {
	q, ok := s.Markets().Find(id)
	if !ok {
		return nil, apperrors.ErrMarketNotFound
	}
	return &QuickSelect{
		ID:       q.ID,
		Name:     q.Name,
		Symbol:   strings.ToUpper(q.Symbol),
		BuyPrice: q.CurrentPrice,
	}, nil
}

// AddHolding validates input, prices the new holding from the current
// snapshot and appends it. Invalid input changes nothing.
func (s *trackerService) AddHolding(ctx context.Context, input HoldingInput) (*models.HoldingValue, error) {
	h, err := valuation.NewHolding(valuation.Submission{
		Name:     input.Name,
		Symbol:   input.Symbol,
		BuyPrice: input.BuyPrice,
		Amount:   input.Amount,
	}, s.Markets(), s.now())
	if err != nil {
		if errors.Is(err, valuation.ErrInvalidSubmission) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	h = s.store.Add(ctx, h)
	v := valuation.Value(h)
	return &v, nil
}

// DeleteHolding removes the holding with id. Unknown ids are not an error.
func (s *trackerService) DeleteHolding(ctx context.Context, id string) error {
	if !s.store.Remove(ctx, id) {
		s.log.Debugw("delete of unknown holding ignored", "id", id)
	}
	return nil
}

// RefreshPrices reconciles every holding against the snapshot in memory.
// With no holdings or no snapshot it returns the holdings unchanged.
func (s *trackerService) RefreshPrices(ctx context.Context) ([]models.HoldingValue, error) {
	if s.opts.RefetchOnRefresh {
		// failure keeps the previous snapshot and is already logged
		_ = s.LoadMarkets(ctx)
	}

	snap := s.Markets()
	if s.store.Len() == 0 || snap.Empty() {
		return s.Holdings(), nil
	}

	now := s.now()
	holdings := s.store.Update(ctx, func(hs []models.Holding) []models.Holding {
		return valuation.ReconcileAll(hs, snap, now)
	})
	return valuation.ValueAll(holdings), nil
}

// Holdings returns the itemized view in display order.
func (s *trackerService) Holdings() []models.HoldingValue {
	return valuation.ValueAll(s.store.All())
}

// Summary returns portfolio totals, recomputed on every call.
func (s *trackerService) Summary() models.Totals {
	return valuation.Summarize(s.store.All())
}
