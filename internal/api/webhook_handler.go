package api

import (
	"context"
	"io"
	"net/http"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
	"github.com/Tomas-vilte/PRSummoner/internal/logger"
	"github.com/Tomas-vilte/PRSummoner/internal/webhook"
	"github.com/labstack/echo/v4"
)

// EventHandler procesa un evento ya clasificado.
type EventHandler interface {
	HandleEvent(ctx context.Context, event models.InboundEvent) error
}

// WebhookHandler recibe las entregas del webhook. Contrato de respuesta:
// toda entrega bien formada se reconoce con 200 y un body de estado, incluso
// cuando la clasificación falla o el pipeline devuelve error, para que el
// emisor no reintente. Solo un pánico no capturado escapa como 5xx.
type WebhookHandler struct {
	events EventHandler
}

func NewWebhookHandler(events EventHandler) *WebhookHandler {
	return &WebhookHandler{events: events}
}

func (h *WebhookHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Error(ctx, "no se pudo leer el body de la entrega", err)
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	event, err := webhook.Classify(body)
	if err != nil {
		logger.Error(ctx, "entrega descartada por clasificación", err)
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	if event.Kind == models.EventUnhandled {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	if err := h.events.HandleEvent(ctx, event); err != nil {
		// El fallo queda en el log; la entrega se reconoce igual.
		logger.Error(ctx, "el pipeline terminó con error", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
