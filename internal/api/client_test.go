package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLoginDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Login != "a@b.com" || req.Password == "" {
			t.Errorf("unexpected credentials: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"token":"tok-1","user":{"id":5,"email":"a@b.com","roles":["STUDENT"]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.Login(context.Background(), LoginRequest{Login: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", resp.Token)
	}
	if resp.User.ID != 5 || resp.User.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.StudentLessons(context.Background(), "tok-1", 5); err != nil {
		t.Fatalf("request failed: %v", err)
	}
}

func TestUnauthorizedSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.StudentLessons(context.Background(), "stale", 5)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAPIErrorKeepsServerMessage(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		expect string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Неверный пароль"}`, "Неверный пароль"},
		{"error field", http.StatusConflict, `{"error":"Заявка уже отправлена"}`, "Заявка уже отправлена"},
		{"no body", http.StatusInternalServerError, ``, "Internal Server Error"},
		{"non-json body", http.StatusNotFound, `not found`, "Not Found"},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))

		client := NewClient(server.URL, 5*time.Second)
		_, err := client.Login(context.Background(), LoginRequest{Login: "a@b.com", Password: "x"})
		server.Close()

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("%s: expected APIError, got %v", tc.name, err)
		}
		if apiErr.Status != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, apiErr.Status)
		}
		if apiErr.Message != tc.expect {
			t.Fatalf("%s: expected message %q, got %q", tc.name, tc.expect, apiErr.Message)
		}
	}
}

func TestNetworkErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // соединение больше не принимается

	client := NewClient(server.URL, time.Second)
	_, err := client.Subjects(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected network error")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatal("network error must not map to ErrUnauthorized")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatal("network error must not map to APIError")
	}
}

func TestSearchTutorsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("subjectId") != "3" {
			t.Errorf("expected subjectId=3, got %q", q.Get("subjectId"))
		}
		if q.Get("maxPrice") != "2000" {
			t.Errorf("expected maxPrice=2000, got %q", q.Get("maxPrice"))
		}
		if q.Has("minExperience") {
			t.Error("unset filter must not appear in query")
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	subjectID := 3
	maxPrice := 2000.0
	client := NewClient(server.URL, 5*time.Second)
	_, err := client.SearchTutors(context.Background(), "tok", SearchTutorsParams{
		SubjectID: &subjectID,
		MaxPrice:  &maxPrice,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
}
