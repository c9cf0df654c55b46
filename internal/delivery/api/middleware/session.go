package middleware

import (
	"strings"

	"moosage/internal/delivery/api/response"
	deliverycontext "moosage/internal/delivery/context"
	"moosage/internal/domain/constants"
	"moosage/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session token on each request to the owning user ID.
type SessionMiddleware struct {
	auth usecase.AuthUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

// Authenticate rejects requests without an active session and stores the user ID for handlers.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.auth.Authenticate(c.Request().Context(), SessionToken(c))
		if err != nil {
			return response.Unauthorized(c)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// SessionToken reads X-Session-Token, falling back to an Authorization bearer token.
func SessionToken(c echo.Context) string {
	header := c.Request().Header
	if token := strings.TrimSpace(header.Get(constants.HeaderSessionToken)); token != "" {
		return token
	}

	auth := header.Get(constants.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, constants.BearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetUserID returns the user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
