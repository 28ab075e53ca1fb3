package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/services"

	"github.com/gin-gonic/gin"
)

// StudentHandler представляет обработчик страницы учеников преподавателя
type StudentHandler struct {
	authService    *services.AuthService
	studentService *services.StudentService
}

// NewStudentHandler создает новый обработчик учеников
func NewStudentHandler(authService *services.AuthService, studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{
		authService:    authService,
		studentService: studentService,
	}
}

// List отдает список учеников и входящие заявки. Оба списка запрашиваются
// параллельно и собираются после обоих ответов.
func (h *StudentHandler) List(c *gin.Context) {
	user := currentUser(c)
	token := currentToken(c)
	ctx := c.Request.Context()

	var (
		wg          sync.WaitGroup
		roster      []models.StudentProfile
		requests    []models.StudentRequest
		rosterErr   error
		requestsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		roster, rosterErr = h.studentService.Roster(ctx, token, user.ID)
	}()
	go func() {
		defer wg.Done()
		requests, requestsErr = h.studentService.Requests(ctx, token, user.ID)
	}()
	wg.Wait()

	if rosterErr != nil {
		failPage(c, h.authService, "students.html", rosterErr)
		return
	}
	if requestsErr != nil {
		failPage(c, h.authService, "students.html", requestsErr)
		return
	}

	c.HTML(http.StatusOK, "students.html", gin.H{
		"User":     user,
		"Students": roster,
		"Requests": requests,
	})
}

// AcceptRequest принимает заявку ученика
func (h *StudentHandler) AcceptRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/students")
		return
	}

	if err := h.studentService.AcceptRequest(c.Request.Context(), currentToken(c), requestID); err != nil {
		failPage(c, h.authService, "students.html", err)
		return
	}
	c.Redirect(http.StatusFound, "/students")
}

// RejectRequest отклоняет заявку ученика
func (h *StudentHandler) RejectRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/students")
		return
	}

	if err := h.studentService.RejectRequest(c.Request.Context(), currentToken(c), requestID); err != nil {
		failPage(c, h.authService, "students.html", err)
		return
	}
	c.Redirect(http.StatusFound, "/students")
}

// Remove убирает ученика из списка преподавателя
func (h *StudentHandler) Remove(c *gin.Context) {
	user := currentUser(c)

	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/students")
		return
	}

	if err := h.studentService.RemoveStudent(c.Request.Context(), currentToken(c), user.ID, studentID); err != nil {
		failPage(c, h.authService, "students.html", err)
		return
	}
	c.Redirect(http.StatusFound, "/students")
}
