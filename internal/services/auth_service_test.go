package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/repository"
	"github.com/GrinOnFace/Educat/pkg/database"

	"github.com/google/uuid"
)

func newAuthService(t *testing.T, backend http.Handler) *AuthService {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	client := api.NewClient(server.URL, 5*time.Second)
	return NewAuthService(client, repository.NewSessionRepository(db.DB), "test-secret")
}

func loginBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Auth/login":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"token":"tok-1","user":{"id":5,"email":"a@b.com","roles":["STUDENT"]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestLoginOpensSession(t *testing.T) {
	svc := newAuthService(t, loginBackend())

	user, cookie, err := svc.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if cookie == "" {
		t.Fatal("expected signed session cookie")
	}

	session, restored, err := svc.CurrentSession(cookie)
	if err != nil {
		t.Fatalf("failed to restore session: %v", err)
	}
	if session.Token != "tok-1" {
		t.Fatalf("expected stored backend token, got %q", session.Token)
	}
	if restored.ID != 5 || restored.Email != "a@b.com" {
		t.Fatalf("unexpected restored user: %+v", restored)
	}
	if !svc.IsAuthenticated(cookie) {
		t.Fatal("expected IsAuthenticated after login")
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	svc := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"message":"Неверный пароль"}`))
	}))

	if _, _, err := svc.Login(context.Background(), "a@b.com", "bad"); err == nil {
		t.Fatal("expected error when backend returns no token")
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	svc := newAuthService(t, loginBackend())

	_, cookie, err := svc.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(cookie); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if svc.IsAuthenticated(cookie) {
		t.Fatal("expected session gone after logout")
	}

	// повторный logout и мусорная cookie не дают ошибку
	if err := svc.Logout(cookie); err != nil {
		t.Fatalf("repeated logout failed: %v", err)
	}
	if err := svc.Logout("garbage"); err != nil {
		t.Fatalf("logout with invalid cookie failed: %v", err)
	}
}

func TestTeardownDestroysSession(t *testing.T) {
	svc := newAuthService(t, loginBackend())

	_, cookie, err := svc.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	session, _, err := svc.CurrentSession(cookie)
	if err != nil {
		t.Fatalf("failed to restore session: %v", err)
	}

	svc.Teardown(session.ID)

	if svc.IsAuthenticated(cookie) {
		t.Fatal("expected session gone after teardown")
	}
}

func TestForgedCookieRejected(t *testing.T) {
	svc := newAuthService(t, loginBackend())

	_, cookie, err := svc.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	other := newAuthService(t, loginBackend())
	other.jwtSecret = "other-secret"
	forged, err := other.signCookie(mustSessionID(t, svc, cookie))
	if err != nil {
		t.Fatalf("failed to sign forged cookie: %v", err)
	}

	if svc.IsAuthenticated(forged) {
		t.Fatal("cookie signed with another secret must be rejected")
	}
	if svc.IsAuthenticated("") {
		t.Fatal("empty cookie must be rejected")
	}
}

func mustSessionID(t *testing.T, svc *AuthService, cookie string) uuid.UUID {
	t.Helper()
	session, _, err := svc.CurrentSession(cookie)
	if err != nil {
		t.Fatalf("failed to restore session: %v", err)
	}
	return session.ID
}
