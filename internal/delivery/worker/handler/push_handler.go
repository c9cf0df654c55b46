package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"moosage/config"
	deliverycontext "moosage/internal/delivery/context"
	"moosage/internal/domain/constants"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/service"
	"moosage/internal/infra/pubsub"
	"moosage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks a push request's OIDC token against audience.
type TokenVerifier func(ctx context.Context, token, audience string) error

// PushHandler records moosage events delivered by Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verifier       TokenVerifier
	activityUC     usecase.ActivityUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ActivityUC usecase.ActivityUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: params.Config.Worker.VerifyToken,
		audience:       params.Config.Worker.Audience,
		verifier:       verifyGoogleToken,
		activityUC:     params.ActivityUC,
		logger:         params.Logger,
	}
}

// HandlePush answers 2xx when the message is done with and 503 when Pub/Sub should redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyRequest(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode moosage event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.activityUC.Record(ctx, event); err != nil {
		// Redelivering a malformed event cannot succeed.
		if domainerrors.KindOf(err) == domainerrors.KindInvalidInput {
			reqLogger.Warn("[Worker] Dropping invalid moosage event",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to record moosage event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the HTTP request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.MoosageEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) verifyRequest(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(constants.HeaderAuthorization), constants.BearerPrefix)
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	return h.verifier(req.Context(), token, audience)
}

// verifyGoogleToken validates a Pub/Sub push OIDC token.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyGoogleToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
