package auth

import "github.com/BruksfildServices01/food-ordering/internal/models"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is who the request acts as, resolved from a bearer token or a session.
type Identity struct {
	SubjectID uint   `json:"user_id"`
	Role      string `json:"user_type"`
	Username  string `json:"username"`
	AdminRole string `json:"admin_role,omitempty"`
}

func (i Identity) IsUser() bool  { return i.Role == RoleUser }
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

func (i Identity) IsSuperAdmin() bool {
	return i.IsAdmin() && i.AdminRole == models.AdminRoleSuperAdmin
}
