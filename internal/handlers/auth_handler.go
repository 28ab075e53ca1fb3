package handlers

import (
	"net/http"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/forms"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/services"
	"github.com/GrinOnFace/Educat/pkg/photo"

	"github.com/gin-gonic/gin"
)

// AuthHandler представляет обработчик входа и регистрации
type AuthHandler struct {
	authService    *services.AuthService
	subjectService *services.SubjectService
	photos         *photo.Processor
}

// NewAuthHandler создает новый обработчик авторизации
func NewAuthHandler(authService *services.AuthService, subjectService *services.SubjectService, photos *photo.Processor) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		subjectService: subjectService,
		photos:         photos,
	}
}

// Home отдает стартовую страницу
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// ShowLogin отдает страницу входа
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login выполняет вход
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": err.Error()})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		c.HTML(http.StatusOK, "login.html", gin.H{"Form": form, "FieldErrors": errs})
		return
	}

	_, cookie, err := h.authService.Login(c.Request.Context(), form.Login, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Form": form, "Error": errorText(err)})
		return
	}

	c.SetCookie(SessionCookie, cookie, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister отдает страницу регистрации
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, gin.H{})
}

// renderRegister рисует страницу регистрации, заново запрашивая справочник
// предметов для вкладки преподавателя. Страница переживает недоступный
// справочник: форма ученика работает и без него.
func (h *AuthHandler) renderRegister(c *gin.Context, status int, data gin.H) {
	subjects, err := h.subjectService.Subjects(c.Request.Context(), "")
	if err != nil {
		if _, ok := data["Error"]; !ok {
			data["Error"] = errorText(err)
		}
	} else {
		data["Subjects"] = subjects
	}
	c.HTML(status, "register.html", data)
}

// Register регистрирует ученика или преподавателя в зависимости от
// выбранной роли
func (h *AuthHandler) Register(c *gin.Context) {
	role, _ := models.ParseRole(c.PostForm("role"))
	if role == models.RoleTeacher {
		h.registerTeacher(c)
		return
	}
	h.registerStudent(c)
}

// Logout завершает сессию безусловно
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		_ = h.authService.Logout(cookie)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) registerStudent(c *gin.Context) {
	var form forms.RegisterStudentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegister(c, http.StatusBadRequest, gin.H{"Error": err.Error()})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		h.renderRegister(c, http.StatusOK, gin.H{"Form": form, "FieldErrors": errs})
		return
	}

	photoBase64, err := h.processPhoto(c)
	if err != nil {
		h.renderRegister(c, http.StatusOK, gin.H{"Form": form, "FieldErrors": forms.Errors{"photo": err.Error()}})
		return
	}
	form.PhotoBase64 = photoBase64

	_, cookie, err := h.authService.RegisterStudent(c.Request.Context(), api.RegisterStudentRequest{
		Login:           form.Login,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		LastName:        form.LastName,
		FirstName:       form.FirstName,
		MiddleName:      form.MiddleName,
		BirthDate:       form.BirthDate,
		Gender:          form.Gender,
		ContactInfo:     form.ContactInfo,
		PhotoBase64:     form.PhotoBase64,
	})
	if err != nil {
		h.renderRegister(c, http.StatusOK, gin.H{"Form": form, "Error": errorText(err)})
		return
	}

	c.SetCookie(SessionCookie, cookie, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) registerTeacher(c *gin.Context) {
	var form forms.RegisterTeacherForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegister(c, http.StatusBadRequest, gin.H{"Error": err.Error(), "Teacher": true})
		return
	}

	if errs := form.Validate(); !errs.Valid() {
		h.renderRegister(c, http.StatusOK, gin.H{"Form": form, "FieldErrors": errs, "Teacher": true})
		return
	}

	photoBase64, err := h.processPhoto(c)
	if err != nil {
		h.renderRegister(c, http.StatusOK, gin.H{"Form": form, "FieldErrors": forms.Errors{"photo": err.Error()}, "Teacher": true})
		return
	}
	form.PhotoBase64 = photoBase64

	_, cookie, err := h.authService.RegisterTeacher(c.Request.Context(), api.RegisterTeacherRequest{
		Login:                 form.Login,
		Password:              form.Password,
		ConfirmPassword:       form.ConfirmPassword,
		LastName:              form.LastName,
		FirstName:             form.FirstName,
		MiddleName:            form.MiddleName,
		BirthDate:             form.BirthDate,
		Gender:                form.Gender,
		ContactInfo:           form.ContactInfo,
		Education:             form.Education,
		PreparationProgramIDs: form.PreparationProgramIDs,
		ExperienceYears:       form.ExperienceYears,
		HourlyRate:            form.HourlyRate,
		SubjectIDs:            form.SubjectIDs,
		PhotoBase64:           form.PhotoBase64,
	})
	if err != nil {
		h.renderRegister(c, http.StatusOK, gin.H{"Form": form, "Error": errorText(err), "Teacher": true})
		return
	}

	c.SetCookie(SessionCookie, cookie, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// processPhoto обрабатывает необязательную фотографию из формы
func (h *AuthHandler) processPhoto(c *gin.Context) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		// Фотография не обязательна
		return "", nil
	}
	return h.photos.FromUpload(file)
}
