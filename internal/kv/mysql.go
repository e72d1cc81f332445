package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one named value in the records table.
type Record struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     []byte    `gorm:"type:longblob"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (Record) TableName() string {
	return "records"
}

// MySQLStore keeps each key as a row in MySQL, preserving the
// whole-value-per-key storage model on a durable backend.
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore migrates the records table and returns a store.
func NewMySQLStore(db *gorm.DB) (*MySQLStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate records: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

// Get returns the stored value, or (nil, nil) when the key is absent.
func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record Record
	err := s.db.WithContext(ctx).Where("`key` = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mysql get %s: %w", key, err)
	}
	return record.Value, nil
}

// Set upserts the value for the key.
func (s *MySQLStore) Set(ctx context.Context, key string, value []byte) error {
	record := Record{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("mysql set %s: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("`key` = ?", key).Delete(&Record{}).Error
	if err != nil {
		return fmt.Errorf("mysql delete %s: %w", key, err)
	}
	return nil
}
