package guard

import "github.com/GrinOnFace/Educat/internal/models"

// AccessKind определяет класс доступа маршрута
type AccessKind int

const (
	// Public — маршрут доступен только без сессии
	Public AccessKind = iota
	// Protected — маршрут требует сессию, роль не важна
	Protected
	// RoleRestricted — маршрут требует сессию с конкретной ролью
	RoleRestricted
)

// Access описывает требования маршрута
type Access struct {
	Kind AccessKind
	Role models.Role // заполняется только для RoleRestricted
}

// PublicAccess возвращает требования публичного маршрута
func PublicAccess() Access { return Access{Kind: Public} }

// ProtectedAccess возвращает требования защищенного маршрута
func ProtectedAccess() Access { return Access{Kind: Protected} }

// RoleAccess возвращает требования маршрута с ограничением по роли
func RoleAccess(role models.Role) Access {
	return Access{Kind: RoleRestricted, Role: role}
}

// Decision определяет результат проверки маршрута
type Decision int

const (
	// Render — отдать запрошенную страницу
	Render Decision = iota
	// RedirectLogin — перенаправить на страницу входа
	RedirectLogin
	// RedirectDashboard — перенаправить на дашборд
	RedirectDashboard
)

// Decide решает, отдавать ли страницу. Чистая функция, вычисляется заново
// на каждой навигации; редирект сам проходит ту же проверку по прибытии.
func Decide(authenticated bool, user *models.User, access Access) Decision {
	switch access.Kind {
	case Public:
		if authenticated {
			return RedirectDashboard
		}
		return Render
	case Protected:
		if !authenticated {
			return RedirectLogin
		}
		return Render
	case RoleRestricted:
		if !authenticated {
			return RedirectLogin
		}
		if user == nil || !user.HasRole(access.Role) {
			return RedirectDashboard
		}
		return Render
	default:
		return RedirectDashboard
	}
}
