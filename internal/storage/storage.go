// Package storage is the durable local storage layer: a sqlite file under
// the data directory holding namespaced key/value records, plus the
// activity log. The content store's whole post sequence lives under a
// single key, the same shape a browser client persists to localStorage.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mayasahsra/write-verse-online/internal/config"
	"github.com/mayasahsra/write-verse-online/internal/models"
)

const (
	// BlogsKey is the namespace key the content store persists under.
	BlogsKey = "writeverse:blog-storage"
	// SessionKey holds the active session identity.
	SessionKey = "writeverse:session"
)

// record is one namespaced key/value pair.
type record struct {
	Name      string    `gorm:"primaryKey;type:varchar(255)"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (record) TableName() string { return "records" }

// blogsBlob is the serialized form stored under BlogsKey.
type blogsBlob struct {
	Blogs []models.Post `json:"blogs"`
}

type Storage struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

func Open(cfg *config.Config) (*Storage, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	gormDB, err := gorm.Open(sqlite.Open(cfg.DatabasePath()), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gormDB.AutoMigrate(&record{}, &models.ActivityLog{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Storage{Gorm: gormDB, SQL: sqlDB}, nil
}

func (s *Storage) Close() error {
	if s.SQL != nil {
		return s.SQL.Close()
	}
	return nil
}

// Load reads the persisted post sequence. A missing or unreadable blob is
// treated as an empty sequence so a corrupt store never takes the app down.
func (s *Storage) Load() []models.Post {
	var blob blogsBlob
	found, err := s.GetValue(BlogsKey, &blob)
	if err != nil {
		log.Printf("storage: discarding unreadable blog blob: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	return blob.Blogs
}

// Save writes the full post sequence under the blog namespace key.
func (s *Storage) Save(posts []models.Post) error {
	return s.SetValue(BlogsKey, blogsBlob{Blogs: posts})
}

// GetValue reads the JSON value stored under name into dest. It reports
// whether the key existed.
func (s *Storage) GetValue(name string, dest interface{}) (bool, error) {
	var rec record
	err := s.Gorm.First(&rec, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(rec.Value), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// SetValue serializes value and upserts it under name.
func (s *Storage) SetValue(name string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := record{Name: name, Value: string(b)}
	return s.Gorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (s *Storage) DeleteValue(name string) error {
	return s.Gorm.Delete(&record{}, "name = ?", name).Error
}

func (s *Storage) LogActivity(action, postID string) error {
	entry := models.ActivityLog{Action: action, PostID: postID}
	return s.Gorm.Create(&entry).Error
}

// RecentActivity returns the latest log entries, newest first.
func (s *Storage) RecentActivity(limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	if err := s.Gorm.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
