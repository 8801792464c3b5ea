/*
Copyright 2026 the Platform Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package gormstore keeps result documents in a SQL database through gorm.
package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trustedanalytics/platform-tests/pkg/results"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrNotFound is returned when replacing a document that was never inserted.
var ErrNotFound = errors.New("document not found")

// Config selects the database.
type Config struct {
	// Driver is one of DriverSQLite or DriverPostgres.
	Driver string
	// DSN is a file path for sqlite and a connection string for postgres.
	DSN string
}

// StoredDocument is a row of the documents table.
type StoredDocument struct {
	ID         string `gorm:"primaryKey;size:36"`
	Collection string `gorm:"not null;index"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (StoredDocument) TableName() string {
	return "documents"
}

// Decode returns the stored document body.
func (d *StoredDocument) Decode() (results.Document, error) {
	var document results.Document

	if err := json.Unmarshal([]byte(d.Body), &document); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", d.ID, err)
	}

	return document, nil
}

// Store implements results.Store.
type Store struct {
	log logrus.FieldLogger
	cfg Config
	db  *gorm.DB
}

var _ results.Store = (*Store)(nil)

func New(log logrus.FieldLogger, cfg Config) *Store {
	return &Store{
		log: log.WithField("component", "gormstore"),
		cfg: cfg,
	}
}

// Start opens the database connection and runs migrations.
func (s *Store) Start(ctx context.Context) error {
	var dialector gorm.Dialector

	switch s.cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(s.cfg.DSN)
	case DriverPostgres:
		dialector = postgres.Open(s.cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %q", s.cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return fmt.Errorf("opening result database: %w", err)
	}

	s.db = db

	if err := s.db.WithContext(ctx).AutoMigrate(&StoredDocument{}); err != nil {
		return fmt.Errorf("running result migrations: %w", err)
	}

	s.log.WithField("driver", s.cfg.Driver).Info("result database connected")

	return nil
}

// Stop closes the underlying database connection.
func (s *Store) Stop() error {
	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying db: %w", err)
	}

	return sqlDB.Close()
}

func encode(document results.Document) (string, error) {
	data, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	return string(data), nil
}

func (s *Store) Insert(ctx context.Context, collection string, document results.Document) (string, error) {
	body, err := encode(document)
	if err != nil {
		return "", err
	}

	row := &StoredDocument{
		ID:         uuid.NewString(),
		Collection: collection,
		Body:       body,
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	return row.ID, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, document results.Document) error {
	body, err := encode(document)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&StoredDocument{}).
		Where("id = ? AND collection = ?", id, collection).
		Update("body", body)
	if result.Error != nil {
		return fmt.Errorf("replacing %s in %s: %w", id, collection, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s in %s", ErrNotFound, id, collection)
	}

	return nil
}

// Get returns a single document.
func (s *Store) Get(ctx context.Context, collection, id string) (*StoredDocument, error) {
	var row StoredDocument

	err := s.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, collection).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, id, collection)
	}

	if err != nil {
		return nil, fmt.Errorf("getting %s from %s: %w", id, collection, err)
	}

	return &row, nil
}

// List returns the documents of a collection, newest first.
func (s *Store) List(ctx context.Context, collection string) ([]StoredDocument, error) {
	var rows []StoredDocument

	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	return rows, nil
}
