package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/pkg/database"

	"github.com/google/uuid"
)

func newTestRepository(t *testing.T) SessionRepository {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSessionRepository(db.DB)
}

func TestSessionRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	user := &models.User{
		ID:        5,
		Email:     "a@b.com",
		LastName:  "Иванов",
		FirstName: "Иван",
		Roles:     []models.Role{models.RoleStudent},
	}

	session, err := repo.Create("tok-1", user)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if session.ID == uuid.Nil {
		t.Fatal("expected non-nil session id")
	}

	stored, restored, err := repo.Get(session.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if stored.Token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", stored.Token)
	}
	if restored.ID != user.ID || restored.Email != user.Email {
		t.Fatalf("unexpected restored user: %+v", restored)
	}
	if !restored.HasRole(models.RoleStudent) {
		t.Fatal("expected restored user to keep student role")
	}
}

func TestSessionDeleteRemovesTokenAndUser(t *testing.T) {
	repo := newTestRepository(t)

	session, err := repo.Create("tok-1", &models.User{ID: 5})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if err := repo.Delete(session.ID); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	// токен и запись пользователя лежат в одной строке: удаление убирает оба
	if _, _, err := repo.Get(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// повторное удаление не ошибка
	if err := repo.Delete(session.ID); err != nil {
		t.Fatalf("repeated delete must be a no-op, got %v", err)
	}
}

func TestSessionGetUnknown(t *testing.T) {
	repo := newTestRepository(t)
	if _, _, err := repo.Get(uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
