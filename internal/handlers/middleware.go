package handlers

import (
	"net/http"

	"github.com/GrinOnFace/Educat/internal/guard"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie имя сессионной cookie
const SessionCookie = "educat_session"

// SessionMiddleware восстанавливает сессию из cookie и кладет её в
// контекст запроса. Отсутствие сессии не ошибка: решение принимает guard.
func SessionMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		session, user, err := authService.CurrentSession(cookie)
		if err != nil {
			c.Next()
			return
		}

		// Сохраняем данные сессии в контексте (строгие типы)
		c.Set("session_id", session.ID) // uuid.UUID
		c.Set("token", session.Token)
		c.Set("user", user) // *models.User

		c.Next()
	}
}

// Guard создает middleware, проверяющее маршрут по классу доступа.
// Проверка выполняется заново на каждой навигации.
func Guard(access guard.Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		switch guard.Decide(user != nil, user, access) {
		case guard.RedirectLogin:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case guard.RedirectDashboard:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
		default:
			c.Next()
		}
	}
}

// CORSMiddleware создает middleware для CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")
		c.Header("X-Content-Type-Options", "nosniff")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// currentUser возвращает пользователя сессии или nil
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// currentToken возвращает токен бэкенда для текущей сессии
func currentToken(c *gin.Context) string {
	value, exists := c.Get("token")
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}

// currentSessionID возвращает идентификатор текущей сессии
func currentSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("session_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
