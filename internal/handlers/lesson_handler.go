package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/GrinOnFace/Educat/internal/forms"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/services"

	"github.com/gin-gonic/gin"
)

// LessonHandler представляет обработчик занятий
type LessonHandler struct {
	authService    *services.AuthService
	lessonService  *services.LessonService
	studentService *services.StudentService
	subjectService *services.SubjectService
}

// NewLessonHandler создает новый обработчик занятий
func NewLessonHandler(
	authService *services.AuthService,
	lessonService *services.LessonService,
	studentService *services.StudentService,
	subjectService *services.SubjectService,
) *LessonHandler {
	return &LessonHandler{
		authService:    authService,
		lessonService:  lessonService,
		studentService: studentService,
		subjectService: subjectService,
	}
}

// List отдает список занятий преподавателя
func (h *LessonHandler) List(c *gin.Context) {
	user := currentUser(c)

	lessons, err := h.lessonService.LessonsFor(c.Request.Context(), currentToken(c), user)
	if err != nil {
		failPage(c, h.authService, "lessons.html", err)
		return
	}

	c.HTML(http.StatusOK, "lessons.html", gin.H{
		"User":    user,
		"Lessons": lessons,
	})
}

// Details отдает страницу занятия. Преподавателю список материалов
// запрашивается отдельным эндпоинтом параллельно с занятием, чтобы
// страница показывала актуальное состояние после загрузки или удаления
// файла; ученик видит материалы из самого занятия.
func (h *LessonHandler) Details(c *gin.Context) {
	user := currentUser(c)
	token := currentToken(c)
	ctx := c.Request.Context()

	lessonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var (
		wg             sync.WaitGroup
		lesson         *models.Lesson
		attachments    []models.Attachment
		lessonErr      error
		attachmentsErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		lesson, lessonErr = h.lessonService.Lesson(ctx, token, user, lessonID)
	}()
	if user.HasRole(models.RoleTeacher) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attachments, attachmentsErr = h.lessonService.Attachments(ctx, token, lessonID)
		}()
	}
	wg.Wait()

	if lessonErr != nil {
		failPage(c, h.authService, "lesson_details.html", lessonErr)
		return
	}
	if attachmentsErr != nil {
		failPage(c, h.authService, "lesson_details.html", attachmentsErr)
		return
	}
	if !user.HasRole(models.RoleTeacher) {
		attachments = lesson.Attachments
	}

	c.HTML(http.StatusOK, "lesson_details.html", gin.H{
		"User":        user,
		"Lesson":      lesson,
		"Attachments": attachments,
	})
}

// createContext собирает список учеников и справочник предметов для формы
// создания занятия. Оба запроса выполняются параллельно.
func (h *LessonHandler) createContext(c *gin.Context) ([]models.StudentProfile, []models.Subject, error) {
	user := currentUser(c)
	token := currentToken(c)
	ctx := c.Request.Context()

	var (
		wg          sync.WaitGroup
		students    []models.StudentProfile
		subjects    []models.Subject
		studentsErr error
		subjectsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		students, studentsErr = h.studentService.Roster(ctx, token, user.ID)
	}()
	go func() {
		defer wg.Done()
		subjects, subjectsErr = h.subjectService.Subjects(ctx, token)
	}()
	wg.Wait()

	if studentsErr != nil {
		return nil, nil, studentsErr
	}
	if subjectsErr != nil {
		return nil, nil, subjectsErr
	}
	return students, subjects, nil
}

// ShowCreate отдает форму создания занятия
func (h *LessonHandler) ShowCreate(c *gin.Context) {
	students, subjects, err := h.createContext(c)
	if err != nil {
		failPage(c, h.authService, "create_lesson.html", err)
		return
	}

	c.HTML(http.StatusOK, "create_lesson.html", gin.H{
		"User":     currentUser(c),
		"Students": students,
		"Subjects": subjects,
	})
}

// Create создает занятие. Ошибки формы возвращаются до сетевого вызова;
// форма перерисовывается вместе со списками, чтобы её можно было поправить
// и отправить снова.
func (h *LessonHandler) Create(c *gin.Context) {
	user := currentUser(c)

	var form forms.LessonForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderCreate(c, http.StatusBadRequest, gin.H{"Error": err.Error()})
		return
	}

	lesson, fieldErrs, err := h.lessonService.Create(c.Request.Context(), currentToken(c), user, form)
	if err != nil {
		failPage(c, h.authService, "create_lesson.html", err)
		return
	}
	if !fieldErrs.Valid() {
		h.renderCreate(c, http.StatusOK, gin.H{"Form": form, "FieldErrors": fieldErrs})
		return
	}

	c.Redirect(http.StatusFound, "/lessons/"+strconv.Itoa(lesson.ID))
}

// renderCreate перерисовывает форму создания занятия, заново запрашивая
// списки для селектов
func (h *LessonHandler) renderCreate(c *gin.Context, status int, data gin.H) {
	students, subjects, err := h.createContext(c)
	if err != nil {
		failPage(c, h.authService, "create_lesson.html", err)
		return
	}

	data["User"] = currentUser(c)
	data["Students"] = students
	data["Subjects"] = subjects
	c.HTML(status, "create_lesson.html", data)
}

// UploadAttachment загружает файл к занятию
func (h *LessonHandler) UploadAttachment(c *gin.Context) {
	user := currentUser(c)

	lessonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/lessons")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.HTML(http.StatusBadRequest, "lesson_details.html", gin.H{"User": user, "Error": "Файл не выбран"})
		return
	}

	if err := h.lessonService.UploadAttachment(c.Request.Context(), currentToken(c), user.ID, lessonID, file); err != nil {
		failPage(c, h.authService, "lesson_details.html", err)
		return
	}

	c.Redirect(http.StatusFound, "/lessons/"+c.Param("id"))
}

// DeleteAttachment удаляет файл занятия
func (h *LessonHandler) DeleteAttachment(c *gin.Context) {
	lessonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	attachmentID, err := strconv.Atoi(c.Param("attachmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attachment id"})
		return
	}

	if err := h.lessonService.DeleteAttachment(c.Request.Context(), currentToken(c), lessonID, attachmentID); err != nil {
		failJSON(c, h.authService, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted"})
}

// CreateReview создает отзыв о занятии
func (h *LessonHandler) CreateReview(c *gin.Context) {
	user := currentUser(c)

	var form forms.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "lesson_details.html", gin.H{"User": user, "Error": err.Error()})
		return
	}

	_, fieldErrs, err := h.lessonService.CreateReview(c.Request.Context(), currentToken(c), user, form)
	if err != nil {
		failPage(c, h.authService, "lesson_details.html", err)
		return
	}
	if !fieldErrs.Valid() {
		c.HTML(http.StatusOK, "lesson_details.html", gin.H{
			"User":        user,
			"FieldErrors": fieldErrs,
		})
		return
	}

	c.Redirect(http.StatusFound, "/lessons/"+strconv.Itoa(form.LessonID))
}
