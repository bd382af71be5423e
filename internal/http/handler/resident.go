package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unit-service/internal/domain/user"
)

// ResidentHandler lists the people a caller is allowed to see. The scope
// resolver narrows the query by the caller's role and unit; the guard has
// already authenticated the request by the time this runs.
type ResidentHandler struct {
	residents ResidentLister
	scope     ScopeResolver
}

func NewResidentHandler(residents ResidentLister, scope ScopeResolver) *ResidentHandler {
	return &ResidentHandler{residents: residents, scope: scope}
}

type residentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UnitID    uuid.UUID `json:"unit_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toResidentResponse(u *user.User) residentResponse {
	return residentResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		UnitID:    u.UnitID,
		CreatedAt: u.CreatedAt,
	}
}

func (h *ResidentHandler) ListResidents(c echo.Context) error {
	filter, err := h.scope.ResolveScope(c)
	if err != nil {
		return respondMappedError(c, err)
	}

	residents, err := h.residents.ListScoped(c.Request().Context(), filter)
	if err != nil {
		return respondMappedError(c, err)
	}

	out := make([]residentResponse, 0, len(residents))
	for _, r := range residents {
		out = append(out, toResidentResponse(r))
	}

	return c.JSON(http.StatusOK, out)
}
