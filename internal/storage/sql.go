package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one row of the key-value table
type Snapshot struct {
	Name      string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the Snapshot model
func (Snapshot) TableName() string {
	return "snapshots"
}

// SQLStore keeps the snapshot in a key-value table through gorm,
// so it works with both the sqlite and postgres dialectors.
type SQLStore struct {
	db  *gorm.DB
	key string
}

// NewSQLStore migrates the snapshots table and returns a store for key
func NewSQLStore(db *gorm.DB, key string) (*SQLStore, error) {
	if key == "" {
		key = DefaultKey
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshots table: %w", err)
	}
	return &SQLStore{db: db, key: key}, nil
}

func (s *SQLStore) Load(ctx context.Context) ([]byte, error) {
	var row Snapshot
	err := s.db.WithContext(ctx).First(&row, "name = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", s.key, err)
	}
	return []byte(row.Value), nil
}

func (s *SQLStore) Save(ctx context.Context, data []byte) error {
	row := Snapshot{Name: s.key, Value: string(data), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
