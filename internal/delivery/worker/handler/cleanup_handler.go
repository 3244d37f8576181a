package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mytube/config"
	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/entity"
	"mytube/internal/domain/service"
	"mytube/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// CleanupHandler deletes orphaned media assets delivered by Pub/Sub push
type CleanupHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	storage        service.MediaStorage
	logger         *slog.Logger
}

// CleanupHandlerParams holds dependencies for the CleanupHandler
type CleanupHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Storage service.MediaStorage
}

// NewCleanupHandler creates a new Pub/Sub push handler
func NewCleanupHandler(params CleanupHandlerParams) *CleanupHandler {
	var audience string
	verifyPushAuth := false
	if cfg := params.Config.PubSub; cfg != nil {
		audience = cfg.PushAudience
		verifyPushAuth = audience != "" ||
			(cfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop)
	}

	return &CleanupHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		storage:        params.Storage,
		logger:         params.Logger,
	}
}

// HandlePush answers 503 when the deletion should be retried and 2xx once the asset is gone
// or the message can never succeed.
func (h *CleanupHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.CleanupEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to parse cleanup event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := requestIDOf(ctx, &envelope, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", envelope.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	kind := entity.MediaKind(event.Kind)
	if event.StorageID == "" || (kind != entity.MediaKindImage && kind != entity.MediaKindVideo) {
		// Redelivery cannot fix the payload, so the message is acknowledged.
		reqLogger.Warn("[Worker] Dropping unusable cleanup event",
			slog.String("storage_id", event.StorageID),
			slog.String("kind", event.Kind),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Deleting orphaned asset",
		slog.String("storage_id", event.StorageID),
		slog.String("kind", event.Kind),
		slog.String("reason", event.Reason),
	)

	if err := h.storage.Delete(ctx, event.StorageID, kind); err != nil {
		reqLogger.Error("[Worker] Failed to delete asset, requesting redelivery",
			slog.String("storage_id", event.StorageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Asset deleted", slog.String("storage_id", event.StorageID))

	return c.NoContent(http.StatusOK)
}

// requestIDOf falls back to the inbound request when the message carries no id.
func requestIDOf(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.AssetCleanupEvent) string {
	if requestID := envelope.RequestID(event); requestID != "" {
		return requestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Pub/Sub attaches to authenticated push requests.
// Without a configured audience the push endpoint URL is expected.
func (h *CleanupHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
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
