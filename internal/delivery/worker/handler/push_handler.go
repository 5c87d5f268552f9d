package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription    string `json:"subscription"`
	DeliveryAttempt int    `json:"deliveryAttempt,omitempty"`
}

// PushHandler executes expanding-radius matching rounds delivered over
// Pub/Sub push. An unsatisfied round is answered with 503 so the broker
// redelivers and the next round runs at a wider radius; an exhausted
// search is acknowledged to stop redelivery.
type PushHandler struct {
	verifyPushAuth bool
	maxAttempts    int
	logger         *slog.Logger
	matcherUC      usecase.MatcherUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	MatcherUC usecase.MatcherUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Verify push auth only for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	maxAttempts := 1
	if params.Config.Matcher != nil && params.Config.Matcher.MaxAttempts > 0 {
		maxAttempts = params.Config.Matcher.MaxAttempts
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		maxAttempts:    maxAttempts,
		logger:         params.Logger,
		matcherUC:      params.MatcherUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse match event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	// Redeliveries advance the search: attempt n+1 runs at a wider radius.
	attempt := event.Attempt
	if pushMsg.DeliveryAttempt > 1 {
		attempt += pushMsg.DeliveryAttempt - 1
	}

	if attempt >= h.maxAttempts {
		reqLogger.Warn("[Worker] Matching search exhausted",
			slog.String("food_item_id", event.FoodItemID),
			slog.Int("attempt", attempt),
		)

		return c.NoContent(http.StatusOK)
	}

	req, err := h.toMatchRequest(&event)
	if err != nil {
		reqLogger.Error("[Worker] Invalid match event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	reqLogger.Info("[Worker] Running matching round",
		slog.String("food_item_id", event.FoodItemID),
		slog.Int("attempt", attempt),
	)

	satisfied, err := h.matcherUC.RunRound(ctx, req, attempt)
	if err != nil {
		reqLogger.Error("[Worker] Matching round failed",
			slog.String("food_item_id", event.FoodItemID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		// 503 triggers a Pub/Sub retry
		return c.NoContent(http.StatusServiceUnavailable)
	}

	if !satisfied {
		if attempt+1 >= h.maxAttempts {
			reqLogger.Warn("[Worker] No NGO found within final radius",
				slog.String("food_item_id", event.FoodItemID),
				slog.Int("attempt", attempt),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Info("[Worker] Round unsatisfied, requesting redelivery",
			slog.String("food_item_id", event.FoodItemID),
			slog.Int("attempt", attempt),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Matching round satisfied",
		slog.String("food_item_id", event.FoodItemID),
		slog.Int("attempt", attempt),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MatchEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// toMatchRequest validates the event IDs and builds the round request.
func (h *PushHandler) toMatchRequest(event *service.MatchEvent) (*usecase.MatchRequest, error) {
	foodItemID, err := uuid.Parse(event.FoodItemID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid food item id")
	}

	donorID, err := uuid.Parse(event.DonorID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid donor id")
	}

	return &usecase.MatchRequest{
		FoodItemID:  foodItemID,
		DonorID:     donorID,
		Latitude:    event.Latitude,
		Longitude:   event.Longitude,
		FullAddress: event.FullAddress,
	}, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match this endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
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
