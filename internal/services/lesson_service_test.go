package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/forms"
	"github.com/GrinOnFace/Educat/internal/models"
)

func TestLessonsForSwitchesByRole(t *testing.T) {
	var requested atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested.Store(r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := NewLessonService(api.NewClient(server.URL, 5*time.Second), 1<<20)

	teacher := &models.User{ID: 7, Roles: []models.Role{models.RoleTeacher}}
	if _, err := svc.LessonsFor(context.Background(), "tok", teacher); err != nil {
		t.Fatalf("teacher lessons failed: %v", err)
	}
	if got := requested.Load(); got != "/Teacher/7/lessons" {
		t.Fatalf("expected teacher lessons path, got %v", got)
	}

	student := &models.User{ID: 9, Roles: []models.Role{models.RoleStudent}}
	if _, err := svc.LessonsFor(context.Background(), "tok", student); err != nil {
		t.Fatalf("student lessons failed: %v", err)
	}
	if got := requested.Load(); got != "/Student/9/lessons" {
		t.Fatalf("expected student lessons path, got %v", got)
	}
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := NewLessonService(api.NewClient(server.URL, 5*time.Second), 1<<20)
	teacher := &models.User{ID: 7, Roles: []models.Role{models.RoleTeacher}}

	start := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	form := forms.LessonForm{
		StudentID:      1,
		SubjectID:      2,
		StartTime:      start,
		EndTime:        start.Add(-time.Hour),
		ConferenceLink: "https://meet.example.com/1",
		WhiteboardLink: "https://board.example.com/1",
	}

	lesson, errs, err := svc.Create(context.Background(), "tok", teacher, form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson != nil {
		t.Fatal("expected no lesson on invalid form")
	}
	if _, ok := errs["endTime"]; !ok {
		t.Fatalf("expected endTime field error, got %v", errs)
	}
	if calls.Load() != 0 {
		t.Fatalf("invalid form must not reach the backend, got %d calls", calls.Load())
	}

	form.EndTime = start.Add(time.Hour)
	if _, errs, err := svc.Create(context.Background(), "tok", teacher, form); err != nil || !errs.Valid() {
		t.Fatalf("expected successful create, got errs=%v err=%v", errs, err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one backend call, got %d", calls.Load())
	}
}
