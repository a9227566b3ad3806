package server

import (
	"shopify-nft-minter/internal/handler"
	"shopify-nft-minter/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo           *echo.Echo
	webhookHandler *handler.WebhookHandler
}

func NewServer(mintService service.OrderMintService, webhookSecret string) *Server {
	e := echo.New()

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	webhookHandler := handler.NewWebhookHandler(mintService, webhookSecret)

	s := &Server{
		echo:           e,
		webhookHandler: webhookHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// -------- shopify webhooks --------
	webhooks := s.echo.Group("/webhooks")
	webhooks.POST("/orders/create", s.webhookHandler.OrdersCreate)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
