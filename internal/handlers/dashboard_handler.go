package handlers

import (
	"net/http"
	"time"

	"github.com/GrinOnFace/Educat/internal/services"
	"github.com/GrinOnFace/Educat/internal/viewmodel"

	"github.com/gin-gonic/gin"
)

// DashboardHandler представляет обработчик дашборда
type DashboardHandler struct {
	authService   *services.AuthService
	lessonService *services.LessonService
}

// NewDashboardHandler создает новый обработчик дашборда
func NewDashboardHandler(authService *services.AuthService, lessonService *services.LessonService) *DashboardHandler {
	return &DashboardHandler{
		authService:   authService,
		lessonService: lessonService,
	}
}

// Dashboard отдает дашборд с агрегатами по занятиям пользователя
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)

	lessons, err := h.lessonService.LessonsFor(c.Request.Context(), currentToken(c), user)
	if err != nil {
		failPage(c, h.authService, "dashboard.html", err)
		return
	}

	dashboard := viewmodel.BuildDashboard(lessons, time.Now())

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":      user,
		"Dashboard": dashboard,
		"Weekdays":  []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
		"Offsets":   []string{"Сегодня", "Завтра", "+2 дня", "+3 дня", "+4 дня", "+5 дней", "+6 дней"},
	})
}
