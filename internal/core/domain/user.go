package domain

import "time"

const (
	RoleSuperAdmin   = "SuperAdmin"
	RoleRegularAdmin = "RegularAdmin"
)

// User models the authenticated admin as reported by the profile endpoint.
// Role membership is advisory client state; the backend is authoritative.
type User struct {
	ID                    string   `json:"id"`
	Email                 string   `json:"email"`
	FullName              string   `json:"fullName"`
	TEID                  string   `json:"teid,omitempty"`
	PlantID               string   `json:"plantId,omitempty"`
	PlantName             string   `json:"plantName,omitempty"`
	IsSuperAdmin          bool     `json:"isSuperAdmin"`
	RequirePasswordChange bool     `json:"requirePasswordChange"`
	Roles                 []string `json:"roles"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserToken is one active session as listed by GET /auth/sessions.
type UserToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Device    string    `json:"device,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Current   bool      `json:"current"`
}
