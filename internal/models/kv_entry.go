package models

import "time"

// KVEntry is one key-value blob in the local storage file.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name used by the migrations.
func (KVEntry) TableName() string { return "kv_entries" }
