// Package store holds the ordered list of holdings and mirrors it into
// persistent storage after every change. Storage failures never reach the
// caller: they are logged and the in-memory list stays authoritative.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"coinfolio/internal/logger"
	"coinfolio/internal/models"
	"coinfolio/internal/storage"
	"coinfolio/internal/uuid"
)

// Store is the Token Store. Insertion order is display order.
type Store struct {
	kv    storage.KeyValue
	key   string
	newID func() string
	log   *zap.SugaredLogger

	mu       sync.RWMutex
	holdings []models.Holding
}

// New creates an empty store persisting under key.
func New(kv storage.KeyValue, key string) *Store {
	return &Store{
		kv:    kv,
		key:   key,
		newID: uuid.New,
		log:   logger.Named("store"),
	}
}

// Load replaces the in-memory list with what storage holds. Missing,
// unreadable or malformed data loads as an empty list.
func (s *Store) Load(ctx context.Context) []models.Holding {
	holdings := s.read(ctx)

	s.mu.Lock()
	s.holdings = holdings
	s.mu.Unlock()

	return clone(holdings)
}

func (s *Store) read(ctx context.Context) []models.Holding {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Holding{}
	}
	if err != nil {
		s.log.Warnw("reading holdings failed, starting empty", "key", s.key, "error", err)
		return []models.Holding{}
	}

	var holdings []models.Holding
	if err := json.Unmarshal(raw, &holdings); err != nil {
		s.log.Warnw("discarding malformed holdings blob", "key", s.key, "error", err)
		return []models.Holding{}
	}
	if holdings == nil {
		holdings = []models.Holding{}
	}
	return holdings
}

// All returns a copy of the holdings in display order.
func (s *Store) All() []models.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.holdings)
}

// Len returns the number of holdings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.holdings)
}

// Add appends h, assigning an id when it has none, and persists.
func (s *Store) Add(ctx context.Context, h models.Holding) models.Holding {
	if h.ID == "" {
		h.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.holdings = append(s.holdings, h)
	s.persist(ctx)
	return h
}

// Remove deletes the holding with id. It reports whether one was removed;
// an unknown id changes nothing and is not persisted.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.holdings {
		if h.ID == id {
			s.holdings = append(s.holdings[:i:i], s.holdings[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// Update replaces the list with fn's result under one lock and persists.
// fn receives a copy it may modify freely.
func (s *Store) Update(ctx context.Context, fn func([]models.Holding) []models.Holding) []models.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holdings = fn(clone(s.holdings))
	s.persist(ctx)
	return clone(s.holdings)
}

// persist writes the full list. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.holdings)
	if err != nil {
		s.log.Warnw("encoding holdings failed", "error", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.log.Warnw("persisting holdings failed, continuing in memory", "key", s.key, "error", err)
	}
}

func clone(holdings []models.Holding) []models.Holding {
	out := make([]models.Holding, len(holdings))
	copy(out, holdings)
	return out
}
