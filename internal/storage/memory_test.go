package storage

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := &ResumeSession{
		FileName:        "resume.pdf",
		OriginalContent: "Jane Doe\njane@example.com",
	}

	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.ID == uuid.Nil {
		t.Fatal("CreateSession should assign an ID")
	}
	if session.CreatedAt.IsZero() || session.UpdatedAt.IsZero() {
		t.Error("CreateSession should set timestamps")
	}

	loaded, err := store.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if loaded.FileName != "resume.pdf" {
		t.Errorf("Expected file name 'resume.pdf', got '%s'", loaded.FileName)
	}
	if loaded.OriginalContent != session.OriginalContent {
		t.Error("Original content should round-trip unchanged")
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := &ResumeSession{FileName: "resume.txt", OriginalContent: "text"}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	session.JobDescription = "Go developer"
	session.TailoredContent = "tailored text"
	if err := store.UpdateSession(ctx, session); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	loaded, err := store.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if loaded.JobDescription != "Go developer" {
		t.Errorf("Expected updated job description, got '%s'", loaded.JobDescription)
	}
	if loaded.TailoredContent != "tailored text" {
		t.Errorf("Expected updated tailored content, got '%s'", loaded.TailoredContent)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetSession(ctx, uuid.New())
	if err == nil {
		t.Fatal("Expected error for unknown session")
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeSessionNotFound {
		t.Errorf("Expected code %s, got %s", errors.ErrCodeSessionNotFound, appErr.Code)
	}

	unknown := &ResumeSession{ID: uuid.New()}
	if err := store.UpdateSession(ctx, unknown); err == nil {
		t.Error("Expected error updating unknown session")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"first.txt", "second.txt", "third.txt"} {
		if err := store.CreateSession(ctx, &ResumeSession{FileName: name}); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].CreatedAt.After(sessions[i-1].CreatedAt) {
			t.Error("Sessions should be ordered newest first")
		}
	}
}

func TestNewStoreDriverSelection(t *testing.T) {
	tests := []struct {
		driver  string
		wantErr bool
	}{
		{"", false},
		{"memory", false},
		{"sqlite", true},
	}

	for _, tt := range tests {
		t.Run("driver_"+tt.driver, func(t *testing.T) {
			store, err := NewStore(config.StorageConfig{Driver: tt.driver}, nil)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for driver %q", tt.driver)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for driver %q: %v", tt.driver, err)
			}
			if _, ok := store.(*MemoryStore); !ok {
				t.Errorf("Expected MemoryStore for driver %q, got %T", tt.driver, store)
			}
		})
	}
}
