package handler

import (
	"net/http"

	"moosage/internal/delivery/api/response"
	"moosage/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	sessions repository.SessionRegistry
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(sessions repository.SessionRegistry) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"activeSessions"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{
		Status:         "ok",
		ActiveSessions: h.sessions.Count(),
	})
}
