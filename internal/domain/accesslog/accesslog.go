package accesslog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one persisted authorization decision. PersonalKey is nil when
// the request carried no readable credential.
type Entry struct {
	ID          uuid.UUID
	Endpoint    string
	Method      string
	PersonalKey *uuid.UUID
	Accepted    bool
	Message     *string
	Service     string
	CreatedAt   time.Time
}

type QueryFilter struct {
	PersonalKey *uuid.UUID
	Accepted    *bool
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	Offset      int
}
