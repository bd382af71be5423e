package unit

import (
	"time"

	"github.com/google/uuid"
)

type Unit struct {
	ID        uuid.UUID
	Name      string
	Block     string
	Number    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
