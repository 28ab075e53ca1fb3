package models

import (
	"time"

	"github.com/google/uuid"
)

// Session представляет сессию браузера: токен бэкенда и сериализованная
// запись пользователя хранятся вместе и вместе же удаляются. Других
// долговременных данных на стороне клиента нет.
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primary_key"`
	Token     string    `json:"-" gorm:"not null"`
	UserJSON  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
