package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"moosage/internal/delivery/api/middleware"
	"moosage/internal/delivery/api/response"
	"moosage/internal/domain/entity"
	"moosage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MoosageHandlerParams holds dependencies for MoosageHandler, injected by Fx.
type MoosageHandlerParams struct {
	fx.In

	MoosageUC usecase.MoosageUsecase
	Logger    *slog.Logger
}

// MoosageHandler serves the /posts endpoints. Every route requires a session.
type MoosageHandler struct {
	moosageUC usecase.MoosageUsecase
	logger    *slog.Logger
}

// NewMoosageHandler is the constructor for MoosageHandler.
func NewMoosageHandler(params MoosageHandlerParams) *MoosageHandler {
	return &MoosageHandler{
		moosageUC: params.MoosageUC,
		logger:    params.Logger,
	}
}

// ContentRequest is the body of POST /posts and PUT /posts/:id.
type ContentRequest struct {
	Content string `json:"content"`
}

// AuthorResponse identifies who wrote a moosage.
type AuthorResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// MoosageResponse is the API view of a moosage for the calling user.
type MoosageResponse struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
	LikedBy   []string       `json:"likedBy"`
	LikeCount int            `json:"likeCount"`
	LikedByMe bool           `json:"likedByMe"`
	Edited    bool           `json:"edited"`
}

func newMoosageResponse(m *entity.Moosage, viewerID string) MoosageResponse {
	likedBy := m.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}

	return MoosageResponse{
		ID:      m.ID,
		Content: m.Content,
		Author: AuthorResponse{
			UserID:   m.AuthorID,
			Username: m.AuthorUsername,
		},
		CreatedAt: m.CreatedAt,
		LikedBy:   likedBy,
		LikeCount: m.LikeCount(),
		LikedByMe: m.IsLikedBy(viewerID),
		Edited:    m.Edited,
	}
}

// List handles GET /posts.
func (h *MoosageHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	moosages, err := h.moosageUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]MoosageResponse, 0, len(moosages))
	for _, m := range moosages {
		views = append(views, newMoosageResponse(m, userID))
	}

	return response.Success(c, http.StatusOK, views)
}

// Get handles GET /posts/:id.
func (h *MoosageHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return response.BindingError(c, "Moosage id must be an integer")
	}

	moosage, err := h.moosageUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMoosageResponse(moosage, userID))
}

// Create handles POST /posts.
func (h *MoosageHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid moosage input")
	}

	moosage, err := h.moosageUC.Create(c.Request().Context(), userID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMoosageResponse(moosage, userID))
}

// Update handles PUT /posts/:id. Only the author may edit.
func (h *MoosageHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return response.BindingError(c, "Moosage id must be an integer")
	}

	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid moosage input")
	}

	moosage, err := h.moosageUC.Update(c.Request().Context(), id, userID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMoosageResponse(moosage, userID))
}

// Delete handles DELETE /posts/:id. Only the author may delete.
func (h *MoosageHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return response.BindingError(c, "Moosage id must be an integer")
	}

	if err := h.moosageUC.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleLike handles POST /posts/:id/like.
func (h *MoosageHandler) ToggleLike(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return response.BindingError(c, "Moosage id must be an integer")
	}

	moosage, err := h.moosageUC.ToggleLike(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMoosageResponse(moosage, userID))
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse moosage id")
	}

	return id, nil
}
