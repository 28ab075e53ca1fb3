package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/services"

	"github.com/gin-gonic/gin"
)

// TutorHandler представляет обработчик поиска репетиторов
type TutorHandler struct {
	authService    *services.AuthService
	tutorService   *services.TutorService
	subjectService *services.SubjectService
}

// NewTutorHandler создает новый обработчик репетиторов
func NewTutorHandler(authService *services.AuthService, tutorService *services.TutorService, subjectService *services.SubjectService) *TutorHandler {
	return &TutorHandler{
		authService:    authService,
		tutorService:   tutorService,
		subjectService: subjectService,
	}
}

// Search отдает страницу поиска репетиторов с результатами по фильтрам
func (h *TutorHandler) Search(c *gin.Context) {
	user := currentUser(c)
	token := currentToken(c)
	ctx := c.Request.Context()

	params := searchParams(c)

	var (
		wg          sync.WaitGroup
		tutors      []models.TeacherProfile
		subjects    []models.Subject
		tutorsErr   error
		subjectsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tutors, tutorsErr = h.tutorService.Search(ctx, token, params)
	}()
	go func() {
		defer wg.Done()
		subjects, subjectsErr = h.subjectService.Subjects(ctx, token)
	}()
	wg.Wait()

	if tutorsErr != nil {
		failPage(c, h.authService, "search.html", tutorsErr)
		return
	}
	if subjectsErr != nil {
		failPage(c, h.authService, "search.html", subjectsErr)
		return
	}

	c.HTML(http.StatusOK, "search.html", gin.H{
		"User":     user,
		"Tutors":   tutors,
		"Subjects": subjects,
		"Query":    c.Request.URL.Query(),
	})
}

// TutorProfile отдает страницу репетитора с его отзывами
func (h *TutorHandler) TutorProfile(c *gin.Context) {
	user := currentUser(c)

	teacherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/search")
		return
	}

	profile, err := h.tutorService.TutorProfile(c.Request.Context(), currentToken(c), teacherID)
	if err != nil {
		failPage(c, h.authService, "tutor.html", err)
		return
	}

	c.HTML(http.StatusOK, "tutor.html", gin.H{
		"User":  user,
		"Tutor": profile,
	})
}

// MyTeachers отдает список преподавателей ученика
func (h *TutorHandler) MyTeachers(c *gin.Context) {
	user := currentUser(c)

	teachers, err := h.tutorService.MyTeachers(c.Request.Context(), currentToken(c), user.ID)
	if err != nil {
		failPage(c, h.authService, "teachers.html", err)
		return
	}

	c.HTML(http.StatusOK, "teachers.html", gin.H{
		"User":     user,
		"Teachers": teachers,
	})
}

// SendRequest отправляет заявку репетитору
func (h *TutorHandler) SendRequest(c *gin.Context) {
	user := currentUser(c)

	teacherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/search")
		return
	}

	if err := h.tutorService.SendRequest(c.Request.Context(), currentToken(c), teacherID, user.ID); err != nil {
		failPage(c, h.authService, "search.html", err)
		return
	}
	c.Redirect(http.StatusFound, "/search")
}

// searchParams читает фильтры поиска из строки запроса; пустые значения
// означают отсутствие фильтра
func searchParams(c *gin.Context) api.SearchTutorsParams {
	var params api.SearchTutorsParams

	if v, err := strconv.Atoi(c.Query("subjectId")); err == nil && v > 0 {
		params.SubjectID = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		params.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		params.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("minExperience")); err == nil {
		params.MinExperience = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		params.MinRating = &v
	}
	return params
}
