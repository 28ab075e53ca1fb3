package models

import "strings"

// Role определяет роль пользователя
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// ParseRole приводит строку из ответа бэкенда к известной роли
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(s)) {
	case RoleStudent:
		return RoleStudent, true
	case RoleTeacher:
		return RoleTeacher, true
	}
	return "", false
}

// User представляет пользователя маркетплейса.
// Запись принадлежит бэкенду: клиент хранит только копию из последнего
// ответа и заменяет её целиком при обновлении профиля.
type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName,omitempty"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender"`
	ContactInfo string `json:"contactInfo,omitempty"`
	IsTeacher   bool   `json:"isTeacher"`
	Roles       []Role `json:"roles"`
	PhotoBase64 string `json:"photoBase64,omitempty"`
}

// HasRole проверяет наличие роли у пользователя
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// FullName возвращает полное имя пользователя
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.LastName, u.FirstName, u.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
