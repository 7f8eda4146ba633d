package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventHandler struct {
	mock.Mock
}

func (m *MockEventHandler) HandleEvent(ctx context.Context, event models.InboundEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func deliver(t *testing.T, handler *WebhookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Handle(e.NewContext(req, rec)))
	return rec
}

func TestWebhookHandler_CommentEventReachesPipeline(t *testing.T) {
	// Arrange
	events := new(MockEventHandler)
	events.On("HandleEvent", mock.Anything, mock.MatchedBy(func(ev models.InboundEvent) bool {
		return ev.Kind == models.EventComment && ev.Number == 7
	})).Return(nil)
	handler := NewWebhookHandler(events)

	payload := `{
		"action": "created",
		"comment": {"body": "/summon summary"},
		"issue": {"number": 7},
		"repository": {"name": "demo", "owner": {"login": "tomas"}},
		"installation": {"id": 42}
	}`

	// Act
	rec := deliver(t, handler, payload)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	events.AssertExpectations(t)
}

func TestWebhookHandler_PipelineErrorStillAcks(t *testing.T) {
	// Arrange
	events := new(MockEventHandler)
	events.On("HandleEvent", mock.Anything, mock.Anything).
		Return(errors.New("falló la generación"))
	handler := NewWebhookHandler(events)

	payload := `{
		"action": "opened",
		"pull_request": {"number": 3},
		"repository": {"name": "demo", "owner": {"login": "tomas"}},
		"installation": {"id": 42}
	}`

	// Act
	rec := deliver(t, handler, payload)

	// Assert: el error queda en el log, la entrega se reconoce igual.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	events.AssertExpectations(t)
}

func TestWebhookHandler_UnhandledEventIsIgnoredWithoutPipeline(t *testing.T) {
	// Arrange
	events := new(MockEventHandler)
	handler := NewWebhookHandler(events)

	payload := `{
		"action": "closed",
		"pull_request": {"number": 3},
		"repository": {"name": "demo", "owner": {"login": "tomas"}},
		"installation": {"id": 42}
	}`

	// Act
	rec := deliver(t, handler, payload)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
	events.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestWebhookHandler_MalformedPayloadIsIgnored(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "JSON inválido",
			payload: `{"action": `,
		},
		{
			name: "sin repositorio",
			payload: `{
				"action": "created",
				"comment": {"body": "/summon summary"},
				"issue": {"number": 7},
				"installation": {"id": 42}
			}`,
		},
		{
			name: "comentario sin número",
			payload: `{
				"action": "created",
				"comment": {"body": "/summon summary"},
				"repository": {"name": "demo", "owner": {"login": "tomas"}},
				"installation": {"id": 42}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := new(MockEventHandler)
			handler := NewWebhookHandler(events)

			rec := deliver(t, handler, tt.payload)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
			events.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
		})
	}
}
