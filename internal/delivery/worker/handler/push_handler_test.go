package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipway/internal/domain/entity"
	"shipway/internal/domain/service"
	mockUC "shipway/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notifications := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewPushHandler(PushHandlerParams{
		Logger:        logger,
		Notifications: notifications,
	})

	return handler, notifications
}

func pushEnvelope(t *testing.T, event *service.ResourceIncludedEvent, attributes map[string]string) *bytes.Buffer {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/reinclusions"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, notifications := createTestPushHandler(t)

	event := &service.ResourceIncludedEvent{
		RequestID: "req-42",
		Shop:      "demo.myshopify.com",
		Country:   "Pakistan",
		Resources: []entity.ResourceRef{
			{Kind: entity.ResourceProduct, ID: "123"},
		},
		DeliveryTime: "2-3 days",
	}

	notifications.EXPECT().DispatchIncluded(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			got := args.Get(1).(*service.ResourceIncludedEvent)
			assert.Equal(t, "demo.myshopify.com", got.Shop)
			assert.Equal(t, "Pakistan", got.Country)
			assert.Len(t, got.Resources, 1)
		}).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", pushEnvelope(t, event, nil))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.HandlePush(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not base64!!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err = handler.HandlePush(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidEventJSON(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{broken"))
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err = handler.HandlePush(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_DispatchFailureTriggersRetry(t *testing.T) {
	handler, notifications := createTestPushHandler(t)

	event := &service.ResourceIncludedEvent{
		Shop:    "demo.myshopify.com",
		Country: "Pakistan",
		Resources: []entity.ResourceRef{
			{Kind: entity.ResourceProduct, ID: "123"},
		},
	}

	notifications.EXPECT().DispatchIncluded(mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", pushEnvelope(t, event, map[string]string{"request_id": "req-7"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.HandlePush(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
