package service

import "github.com/RW482/vora/entities"

type LoginResult struct {
	Token        string        `json:"token"`
	User         entities.User `json:"user"`
	Capabilities []string      `json:"capabilities"`
}

type AuthService interface {
	Login(username, password string) (*LoginResult, error)
}

// Capabilities maps a role to its ordered list of enabled views, computed
// once per session and sent with the login response so clients build their
// menus from it instead of hardcoding role checks.
func Capabilities(role string) []string {
	switch role {
	case entities.RoleAdmin:
		return []string{"dashboard", "trucks", "orders", "branches", "users", "settings"}
	case entities.RoleStaff:
		return []string{"dashboard", "trucks", "orders", "branches"}
	case entities.RoleDriver:
		return []string{"orders"}
	default:
		return []string{}
	}
}
