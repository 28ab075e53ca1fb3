package handlers

import (
	"net/http"
	"time"

	"github.com/GrinOnFace/Educat/internal/services"
	"github.com/GrinOnFace/Educat/internal/viewmodel"

	"github.com/gin-gonic/gin"
)

// dayLabels подписи дней недели для переключателя расписания
var dayLabels = map[string]string{
	"monday":    "Понедельник",
	"tuesday":   "Вторник",
	"wednesday": "Среда",
	"thursday":  "Четверг",
	"friday":    "Пятница",
	"saturday":  "Суббота",
	"sunday":    "Воскресенье",
}

// ScheduleHandler представляет обработчик расписания
type ScheduleHandler struct {
	authService   *services.AuthService
	lessonService *services.LessonService
}

// NewScheduleHandler создает новый обработчик расписания
func NewScheduleHandler(authService *services.AuthService, lessonService *services.LessonService) *ScheduleHandler {
	return &ScheduleHandler{
		authService:   authService,
		lessonService: lessonService,
	}
}

// Schedule отдает расписание, сгруппированное по дням недели. Расписание
// перестраивается целиком на каждый запрос.
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	user := currentUser(c)

	lessons, err := h.lessonService.LessonsFor(c.Request.Context(), currentToken(c), user)
	if err != nil {
		failPage(c, h.authService, "schedule.html", err)
		return
	}

	schedule := viewmodel.BuildWeekSchedule(lessons)

	selected := c.Param("day")
	if _, ok := dayLabels[selected]; !ok {
		selected = viewmodel.WeekdayKey(time.Now())
	}

	c.HTML(http.StatusOK, "schedule.html", gin.H{
		"User":      user,
		"Schedule":  schedule,
		"Weekdays":  viewmodel.Weekdays,
		"DayLabels": dayLabels,
		"Selected":  selected,
	})
}
