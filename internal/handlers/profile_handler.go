package handlers

import (
	"net/http"
	"sync"

	"github.com/GrinOnFace/Educat/internal/forms"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/services"

	"github.com/gin-gonic/gin"
)

// ProfileHandler представляет обработчик страницы профиля
type ProfileHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

// NewProfileHandler создает новый обработчик профиля
func NewProfileHandler(authService *services.AuthService, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// Show отдает страницу профиля со статистикой. Независимые запросы
// выполняются параллельно; результаты собираются, когда готовы все.
func (h *ProfileHandler) Show(c *gin.Context) {
	user := currentUser(c)
	if user.HasRole(models.RoleTeacher) {
		h.showTeacher(c)
		return
	}
	h.showStudent(c)
}

// Update обновляет профиль в зависимости от роли
func (h *ProfileHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user.HasRole(models.RoleTeacher) {
		h.updateTeacher(c)
		return
	}
	h.updateStudent(c)
}

func (h *ProfileHandler) showStudent(c *gin.Context) {
	user := currentUser(c)
	token := currentToken(c)
	ctx := c.Request.Context()

	var (
		wg         sync.WaitGroup
		profile    *models.StudentProfile
		stats      *models.StudentStatistics
		profileErr error
		statsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profileErr = h.profileService.StudentProfile(ctx, token, user.ID)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.profileService.StudentStatistics(ctx, token, user.ID)
	}()
	wg.Wait()

	if profileErr != nil {
		failPage(c, h.authService, "profile.html", profileErr)
		return
	}
	if statsErr != nil {
		failPage(c, h.authService, "profile.html", statsErr)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":       user,
		"Profile":    profile,
		"Statistics": stats,
	})
}

func (h *ProfileHandler) showTeacher(c *gin.Context) {
	user := currentUser(c)
	token := currentToken(c)
	ctx := c.Request.Context()

	var (
		wg         sync.WaitGroup
		profile    *models.TeacherProfile
		stats      *models.TeacherStatistics
		rating     *models.TeacherRating
		reviews    []models.Review
		profileErr error
		statsErr   error
		ratingErr  error
		reviewsErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, profileErr = h.profileService.TeacherProfile(ctx, token, user.ID)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.profileService.TeacherStatistics(ctx, token, user.ID)
	}()
	go func() {
		defer wg.Done()
		rating, ratingErr = h.profileService.TeacherRating(ctx, token, user.ID)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = h.profileService.TeacherReviews(ctx, token, user.ID)
	}()
	wg.Wait()

	for _, err := range []error{profileErr, statsErr, ratingErr, reviewsErr} {
		if err != nil {
			failPage(c, h.authService, "profile.html", err)
			return
		}
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":       user,
		"Teacher":    profile,
		"Statistics": stats,
		"Rating":     rating,
		"Reviews":    reviews,
	})
}

func (h *ProfileHandler) updateStudent(c *gin.Context) {
	user := currentUser(c)

	var form forms.StudentProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "profile.html", gin.H{"User": user, "Error": err.Error()})
		return
	}

	photoFile, _ := c.FormFile("photo")

	_, fieldErrs, err := h.profileService.UpdateStudent(c.Request.Context(), currentToken(c), user.ID, form, photoFile)
	if err != nil {
		failPage(c, h.authService, "profile.html", err)
		return
	}
	if !fieldErrs.Valid() {
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"User":        user,
			"Form":        form,
			"FieldErrors": fieldErrs,
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

func (h *ProfileHandler) updateTeacher(c *gin.Context) {
	user := currentUser(c)

	var form forms.TeacherProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "profile.html", gin.H{"User": user, "Error": err.Error()})
		return
	}

	photoFile, _ := c.FormFile("photo")

	_, fieldErrs, err := h.profileService.UpdateTeacher(c.Request.Context(), currentToken(c), user.ID, form, photoFile)
	if err != nil {
		failPage(c, h.authService, "profile.html", err)
		return
	}
	if !fieldErrs.Valid() {
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"User":        user,
			"Form":        form,
			"FieldErrors": fieldErrs,
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
