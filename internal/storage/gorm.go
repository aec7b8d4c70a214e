package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

// GormStore persists sessions in PostgreSQL through gorm.
type GormStore struct {
	db     *gorm.DB
	logger *errors.Logger
}

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// NewGormStore opens the configured Postgres database and optionally
// migrates the session table.
func NewGormStore(cfg config.StorageConfig, logger *errors.Logger) (*GormStore, error) {
	if cfg.DSN == "" {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"Storage DSN is required for the postgres driver", nil)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
			"Failed to open database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
			"Failed to access database handle", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
			"Failed to ping database", err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&ResumeSession{}); err != nil {
			return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
				"Failed to migrate session table", err)
		}
		logger.Debug("Session table migrated", "table", ResumeSession{}.TableName())
	}

	logger.Info("Connected to session database", "driver", cfg.Driver)

	return &GormStore{db: db, logger: logger}, nil
}

// CreateSession inserts a new session row.
func (s *GormStore) CreateSession(ctx context.Context, session *ResumeSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("Failed to create session: %s", session.ID), err)
	}
	return nil
}

// GetSession loads a session by ID.
func (s *GormStore) GetSession(ctx context.Context, id uuid.UUID) (*ResumeSession, error) {
	var session ResumeSession
	err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewStorageError(errors.ErrCodeSessionNotFound,
				fmt.Sprintf("Session not found: %s", id), err)
		}
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("Failed to load session: %s", id), err)
	}
	return &session, nil
}

// UpdateSession saves all fields of an existing session.
func (s *GormStore) UpdateSession(ctx context.Context, session *ResumeSession) error {
	result := s.db.WithContext(ctx).Model(&ResumeSession{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"job_description":  session.JobDescription,
			"tailored_content": session.TailoredContent,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("Failed to update session: %s", session.ID), result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewStorageError(errors.ErrCodeSessionNotFound,
			fmt.Sprintf("Session not found: %s", session.ID), nil)
	}
	return nil
}

// ListSessions returns all sessions, newest first.
func (s *GormStore) ListSessions(ctx context.Context) ([]ResumeSession, error) {
	var sessions []ResumeSession
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed,
			"Failed to list sessions", err)
	}
	return sessions, nil
}

// Close releases the underlying database connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
