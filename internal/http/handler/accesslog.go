package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unit-service/internal/domain/accesslog"
)

type AccessLogHandler struct {
	logs AccessLogLister
}

func NewAccessLogHandler(logs AccessLogLister) *AccessLogHandler {
	return &AccessLogHandler{logs: logs}
}

type accessLogResponse struct {
	ID          uuid.UUID  `json:"id"`
	Endpoint    string     `json:"endpoint"`
	Method      string     `json:"method"`
	PersonalKey *uuid.UUID `json:"personal_key,omitempty"`
	Accepted    bool       `json:"accepted"`
	Message     *string    `json:"message,omitempty"`
	Service     string     `json:"service"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (h *AccessLogHandler) ListAccessLogs(c echo.Context) error {
	filter := accesslog.QueryFilter{}

	if limit, err := strconv.Atoi(c.QueryParam(queryLimit)); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam(queryOffset)); err == nil && offset > 0 {
		filter.Offset = offset
	}

	entries, err := h.logs.List(c.Request().Context(), filter)
	if err != nil {
		return respondMappedError(c, err)
	}

	out := make([]accessLogResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, accessLogResponse{
			ID:          entry.ID,
			Endpoint:    entry.Endpoint,
			Method:      entry.Method,
			PersonalKey: entry.PersonalKey,
			Accepted:    entry.Accepted,
			Message:     entry.Message,
			Service:     entry.Service,
			CreatedAt:   entry.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, out)
}
