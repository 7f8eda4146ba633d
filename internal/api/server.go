package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server es el boundary HTTP de entrada: un endpoint de webhook y un health
// check. Todo lo demás vive detrás del EventHandler.
type Server struct {
	echo *echo.Echo
	port int
}

func NewServer(port int, handler *WebhookHandler) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())

	server := &Server{
		echo: e,
		port: port,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})
	e.POST("/webhook", handler.Handle)

	return server
}

// Start levanta el servidor y bloquea hasta recibir SIGINT/SIGTERM; después
// apaga con gracia.
func (s *Server) Start() error {
	go func() {
		if err := s.echo.Start(fmt.Sprintf(":%d", s.port)); err != nil && err != http.ErrServerClosed {
			s.echo.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}
