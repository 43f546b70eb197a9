// Package settings persists small client-side preferences. It is the
// server-rendered analog of the webapp's single localStorage key: the
// remembered test user id used in test deployments.
package settings

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"finadvisor/internal/backend"
)

// ClientSettings is the single persisted settings row.
type ClientSettings struct {
	ID         uint `gorm:"primarykey"`
	TestUserID string
	UpdatedAt  time.Time
}

// Store reads and writes client settings in a local sqlite file.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the settings database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening settings db: %w", err)
	}
	if err := db.AutoMigrate(&ClientSettings{}); err != nil {
		return nil, fmt.Errorf("migrating settings db: %w", err)
	}
	return &Store{db: db}, nil
}

// TestUserID returns the remembered test user id, or the default when
// nothing has been stored.
func (s *Store) TestUserID() string {
	var row ClientSettings
	if err := s.db.First(&row).Error; err != nil {
		return backend.DefaultTestUserID
	}
	if row.TestUserID == "" {
		return backend.DefaultTestUserID
	}
	return row.TestUserID
}

// SetTestUserID stores the test user id, creating the row on first use.
func (s *Store) SetTestUserID(id string) error {
	var row ClientSettings
	err := s.db.First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("loading settings: %w", err)
		}
		row = ClientSettings{TestUserID: id}
		if err := s.db.Create(&row).Error; err != nil {
			return fmt.Errorf("creating settings: %w", err)
		}
		return nil
	}

	row.TestUserID = id
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

var _ backend.TestUserSource = (*Store)(nil)
