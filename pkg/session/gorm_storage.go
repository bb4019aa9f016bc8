package session

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// kvRecord is one persisted session key.
type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (kvRecord) TableName() string { return "session_kv" }

// GormStorage keeps session keys in a local SQLite database through GORM.
// A step up from FileStorage when the client already ships a database
// file with other local state.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage opens (or creates) the SQLite file and migrates the
// key-value table.
func NewGormStorage(path string) (*GormStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &GormStorage{db: db}, nil
}

func (s *GormStorage) Get(key string) (string, error) {
	var rec kvRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session db get: %w", err)
	}
	return rec.Value, nil
}

func (s *GormStorage) Set(key, value string) error {
	rec := kvRecord{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("session db set: %w", err)
	}
	return nil
}

func (s *GormStorage) Delete(key string) error {
	if err := s.db.Delete(&kvRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("session db delete: %w", err)
	}
	return nil
}

func (s *GormStorage) Clear() error {
	if err := s.db.Where("1 = 1").Delete(&kvRecord{}).Error; err != nil {
		return fmt.Errorf("session db clear: %w", err)
	}
	return nil
}
