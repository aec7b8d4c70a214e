package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

// ResumeSession records one uploaded resume and everything derived from
// it across requests. OriginalContent is the extracted plain text, not
// the uploaded bytes.
type ResumeSession struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileName        string    `json:"fileName"`
	OriginalContent string    `gorm:"type:text" json:"originalContent"`
	JobDescription  string    `gorm:"type:text" json:"jobDescription,omitempty"`
	TailoredContent string    `gorm:"type:text" json:"tailoredContent,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (ResumeSession) TableName() string {
	return "resume_sessions"
}

// Store persists resume sessions. Implementations must be safe for
// concurrent use by HTTP handlers.
type Store interface {
	CreateSession(ctx context.Context, session *ResumeSession) error
	GetSession(ctx context.Context, id uuid.UUID) (*ResumeSession, error)
	UpdateSession(ctx context.Context, session *ResumeSession) error
	ListSessions(ctx context.Context) ([]ResumeSession, error)
	Close() error
}

// NewStore creates the store selected by configuration.
func NewStore(cfg config.StorageConfig, logger *errors.Logger) (Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "postgres":
		return NewGormStore(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported storage driver: %s", cfg.Driver), nil)
	}
}
