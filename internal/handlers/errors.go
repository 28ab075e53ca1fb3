package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/services"

	"github.com/gin-gonic/gin"
)

// errorText возвращает сообщение для страничного алерта: текст сервера
// дословно либо общее сообщение о сетевой ошибке
func errorText(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Не удалось связаться с сервером"
}

// renderError рисует страницу с алертом. Каждый обработчик ловит свою
// ошибку сам; глобального перехватчика нет.
func renderError(c *gin.Context, template string, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusOK, template, gin.H{
		"User":  currentUser(c),
		"Error": errorText(err),
	})
}

// failJSON обрабатывает ошибку JSON-запроса: 401 рушит сессию, остальные
// статусы пробрасываются с текстом сервера
func failJSON(c *gin.Context, authService *services.AuthService, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		if sessionID, ok := currentSessionID(c); ok {
			authService.Teardown(sessionID)
		}
		c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	status := http.StatusBadGateway
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	c.JSON(status, gin.H{"error": errorText(err)})
}

// failPage обрабатывает ошибку загрузки данных страницы. 401 — единственная
// ошибка с глобальным эффектом: сессия уничтожается, пользователь уходит
// на вход. Остальные ошибки остаются на странице.
func failPage(c *gin.Context, authService *services.AuthService, template string, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		if sessionID, ok := currentSessionID(c); ok {
			authService.Teardown(sessionID)
		}
		c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	renderError(c, template, err)
}
