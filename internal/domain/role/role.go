package role

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID             uuid.UUID
	Name           string
	AllowedActions []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
