package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// kvEntry is the single-table key/value row backing the SQL substrate.
type kvEntry struct {
	Key       string         `gorm:"primaryKey;size:128"`
	Value     datatypes.JSON `gorm:"type:json;not null"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (kvEntry) TableName() string { return "kv_entries" }

// SQL persists keys in a relational key/value table via GORM. Each Set
// is one upsert, so the single-key write stays atomic.
type SQL struct {
	db *gorm.DB
}

// NewSQL constructs a SQL backend and migrates its table.
func NewSQL(db *gorm.DB) (*SQL, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &SQL{db: db}, nil
}

// Get returns the stored value or ErrKeyNotFound.
func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("sql get %s: %w", key, err)
	}
	return string(entry.Value), nil
}

// Set overwrites the value under key.
func (s *SQL) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Save(&entry).Error
	if err != nil {
		return fmt.Errorf("sql set %s: %w", key, err)
	}
	return nil
}
