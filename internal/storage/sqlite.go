package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coinfolio/internal/models"
)

// SQLStore keeps blobs in the kv_entries table of the local database.
type SQLStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSQLStore creates a KeyValue backed by the given database.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

// Get returns the blob stored under key, or ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	result := s.db.WithContext(ctx).Where("entry_key = ?", key).Limit(1).Find(&entry)
	if result.Error != nil {
		return nil, fmt.Errorf("reading %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return entry.Value, nil
}

// Set upserts the blob stored under key.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: s.now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}
