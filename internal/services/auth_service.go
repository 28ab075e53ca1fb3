package services

import (
	"context"
	"fmt"

	"github.com/GrinOnFace/Educat/internal/api"
	"github.com/GrinOnFace/Educat/internal/models"
	"github.com/GrinOnFace/Educat/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService представляет фасад авторизации: оборачивает хранилище сессий
// и вызовы входа и регистрации. Сессия создается при успешном ответе
// бэкенда и уничтожается на logout или любой 401.
type AuthService struct {
	client    *api.Client
	sessions  repository.SessionRepository
	jwtSecret string
}

// NewAuthService создает новый сервис авторизации
func NewAuthService(client *api.Client, sessions repository.SessionRepository, jwtSecret string) *AuthService {
	return &AuthService{
		client:    client,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// Login выполняет вход и создает сессию. Возвращает пользователя и
// подписанное значение сессионной cookie.
func (s *AuthService) Login(ctx context.Context, login, password string) (*models.User, string, error) {
	resp, err := s.client.Login(ctx, api.LoginRequest{Login: login, Password: password})
	if err != nil {
		return nil, "", err
	}
	return s.openSession(resp)
}

// RegisterStudent регистрирует ученика и создает сессию
func (s *AuthService) RegisterStudent(ctx context.Context, req api.RegisterStudentRequest) (*models.User, string, error) {
	resp, err := s.client.RegisterStudent(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return s.openSession(resp)
}

// RegisterTeacher регистрирует преподавателя и создает сессию
func (s *AuthService) RegisterTeacher(ctx context.Context, req api.RegisterTeacherRequest) (*models.User, string, error) {
	resp, err := s.client.RegisterTeacher(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return s.openSession(resp)
}

// Logout удаляет сессию безусловно; невалидная cookie не считается ошибкой
func (s *AuthService) Logout(cookie string) error {
	sessionID, err := s.parseCookie(cookie)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(sessionID)
}

// CurrentSession проверяет cookie и возвращает сессию с пользователем
func (s *AuthService) CurrentSession(cookie string) (*models.Session, *models.User, error) {
	sessionID, err := s.parseCookie(cookie)
	if err != nil {
		return nil, nil, err
	}
	return s.sessions.Get(sessionID)
}

// IsAuthenticated сообщает, есть ли живая сессия за этой cookie
func (s *AuthService) IsAuthenticated(cookie string) bool {
	_, _, err := s.CurrentSession(cookie)
	return err == nil
}

// Teardown уничтожает сессию. Вызывается на 401 от бэкенда — единственная
// ошибка с глобальным побочным эффектом.
func (s *AuthService) Teardown(sessionID uuid.UUID) {
	_ = s.sessions.Delete(sessionID)
}

// openSession сохраняет токен с пользователем и подписывает cookie
func (s *AuthService) openSession(resp *api.AuthResponse) (*models.User, string, error) {
	if resp.Token == "" {
		return nil, "", fmt.Errorf("backend returned no token: %s", resp.Message)
	}

	session, err := s.sessions.Create(resp.Token, &resp.User)
	if err != nil {
		return nil, "", err
	}

	cookie, err := s.signCookie(session.ID)
	if err != nil {
		return nil, "", err
	}

	user := resp.User
	return &user, cookie, nil
}

// signCookie подписывает идентификатор сессии, чтобы браузер не мог его
// подделать. Срока жизни нет: время жизни сессии определяет бэкенд.
func (s *AuthService) signCookie(sessionID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

// parseCookie валидирует подпись cookie и достает идентификатор сессии
func (s *AuthService) parseCookie(cookie string) (uuid.UUID, error) {
	token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session cookie: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid session cookie")
	}

	sessionIDStr, ok := claims["session_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid session cookie claims")
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session ID in cookie: %w", err)
	}
	return sessionID, nil
}
