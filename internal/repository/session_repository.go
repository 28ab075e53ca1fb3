package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GrinOnFace/Educat/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound возвращается, когда сессии нет в хранилище
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository интерфейс долговременного хранилища сессий.
// Токен и запись пользователя записываются вместе и удаляются вместе.
type SessionRepository interface {
	Create(token string, user *models.User) (*models.Session, error)
	Get(id uuid.UUID) (*models.Session, *models.User, error)
	Delete(id uuid.UUID) error
}

// sessionRepository реализация хранилища сессий поверх SQLite
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository создает новое хранилище сессий
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create сохраняет новую сессию
func (r *sessionRepository) Create(token string, user *models.User) (*models.Session, error) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize user: %w", err)
	}

	session := &models.Session{
		ID:       uuid.New(),
		Token:    token,
		UserJSON: string(userJSON),
	}

	if err := r.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Get получает сессию и восстанавливает запись пользователя
func (r *sessionRepository) Get(id uuid.UUID) (*models.Session, *models.User, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(session.UserJSON), &user); err != nil {
		return nil, nil, fmt.Errorf("failed to deserialize user: %w", err)
	}
	return &session, &user, nil
}

// Delete удаляет сессию безусловно: отсутствующая запись не считается ошибкой
func (r *sessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}
