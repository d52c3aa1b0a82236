// Package store persists scoring runs to a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	eventmatch "github.com/jamesainslie/go-eventmatch"
)

// Run is one persisted scoring invocation.
type Run struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	GroundTruth string `gorm:"index:idx_ground_truth" json:"ground_truth"`
	Comparison  string `json:"comparison"`
	Threshold   float64
	Samples     int
	CreatedAt   time.Time
	Metrics     []TypeMetrics `gorm:"foreignKey:RunID"`
}

// TypeMetrics holds one event type's counts within a run. The overall
// aggregate is stored as a row with Overall set.
type TypeMetrics struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	RunID        string `gorm:"type:varchar(36);index:idx_run"`
	Key          string
	Hits         int
	Misses       int
	FalseAlarms1 int
	FalseAlarms2 int
	F1           float64
	Overall      bool
}

// Store wraps the run database.
type Store struct {
	DB *gorm.DB
	db *sql.DB
}

// Open opens (creating if needed) the run database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	if err := db.AutoMigrate(&Run{}, &TypeMetrics{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &Store{DB: db, db: sqlDB}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun persists one scoring result and returns the new run's ID.
func (s *Store) SaveRun(gtPath, cmpPath string, res *eventmatch.Result) (string, error) {
	run := Run{
		ID:          uuid.NewString(),
		GroundTruth: gtPath,
		Comparison:  cmpPath,
		Threshold:   res.Threshold,
		Samples:     res.N,
	}
	for _, key := range res.Keys {
		tr := res.PerType[key]
		run.Metrics = append(run.Metrics, TypeMetrics{
			Key:          key,
			Hits:         tr.Hits,
			Misses:       tr.Misses,
			FalseAlarms1: tr.FalseAlarms1,
			FalseAlarms2: tr.FalseAlarms2,
			F1:           tr.F1,
		})
	}
	run.Metrics = append(run.Metrics, TypeMetrics{
		Key:          "overall",
		Hits:         res.Overall.Hits,
		Misses:       res.Overall.Misses,
		FalseAlarms1: res.Overall.FalseAlarms1,
		FalseAlarms2: res.Overall.FalseAlarms2,
		F1:           res.Overall.F1,
		Overall:      true,
	})

	if err := s.DB.Create(&run).Error; err != nil {
		return "", fmt.Errorf("saving run: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns all persisted runs with their metrics, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	var runs []Run
	err := s.DB.Preload("Metrics").Order("created_at DESC").Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
