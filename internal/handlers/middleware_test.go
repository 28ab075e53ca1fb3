package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GrinOnFace/Educat/internal/guard"
	"github.com/GrinOnFace/Educat/internal/models"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(user *models.User, access guard.Access) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
			c.Set("token", "tok")
		}
		c.Next()
	})
	router.GET("/page", Guard(access), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestGuardMiddleware(t *testing.T) {
	student := &models.User{ID: 5, Roles: []models.Role{models.RoleStudent}}
	teacher := &models.User{ID: 7, Roles: []models.Role{models.RoleTeacher}}

	cases := []struct {
		name     string
		user     *models.User
		access   guard.Access
		status   int
		location string
	}{
		{"anonymous public", nil, guard.PublicAccess(), http.StatusOK, ""},
		{"authenticated public", student, guard.PublicAccess(), http.StatusFound, "/dashboard"},
		{"anonymous protected", nil, guard.ProtectedAccess(), http.StatusFound, "/login"},
		{"authenticated protected", student, guard.ProtectedAccess(), http.StatusOK, ""},
		{"anonymous role route", nil, guard.RoleAccess(models.RoleTeacher), http.StatusFound, "/login"},
		{"wrong role", student, guard.RoleAccess(models.RoleTeacher), http.StatusFound, "/dashboard"},
		{"matching role", teacher, guard.RoleAccess(models.RoleTeacher), http.StatusOK, ""},
	}

	for _, tc := range cases {
		router := newGuardedRouter(tc.user, tc.access)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/page", nil)
		router.ServeHTTP(rec, req)

		if rec.Code != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tc.location {
			t.Fatalf("%s: expected redirect to %q, got %q", tc.name, tc.location, got)
		}
	}
}
