package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unit-service/internal/domain/unit"
)

type UnitHandler struct {
	units UnitReader
}

func NewUnitHandler(units UnitReader) *UnitHandler {
	return &UnitHandler{units: units}
}

type unitResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Block     string    `json:"block"`
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

func toUnitResponse(u *unit.Unit) unitResponse {
	return unitResponse{
		ID:        u.ID,
		Name:      u.Name,
		Block:     u.Block,
		Number:    u.Number,
		CreatedAt: u.CreatedAt,
	}
}

func (h *UnitHandler) ListUnits(c echo.Context) error {
	units, err := h.units.List(c.Request().Context())
	if err != nil {
		return respondMappedError(c, err)
	}

	out := make([]unitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) GetUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidUnitID)
	}

	u, err := h.units.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondMappedError(c, err)
	}

	return c.JSON(http.StatusOK, toUnitResponse(u))
}
