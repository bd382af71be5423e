package user

import (
	"time"

	"github.com/google/uuid"

	"unit-service/internal/domain/role"
)

type User struct {
	ID          uuid.UUID
	PersonalKey uuid.UUID
	Name        string
	Email       string
	Accepted    bool
	RoleID      uuid.UUID
	UnitID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserWithRole is the directory view consumed by the access gate:
// the user record joined with its role and allowed actions.
type UserWithRole struct {
	User
	Role role.Role
}

// CanPerform reports whether the user's role grants the given action.
func (u *UserWithRole) CanPerform(action string) bool {
	for _, allowed := range u.Role.AllowedActions {
		if allowed == action {
			return true
		}
	}
	return false
}
