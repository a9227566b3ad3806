package handler

import (
	"io"
	"net/http"
	"shopify-nft-minter/internal/metrics"
	"shopify-nft-minter/internal/service"
	"shopify-nft-minter/internal/webhook"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	mintService   service.OrderMintService
	webhookSecret string
}

func NewWebhookHandler(mintService service.OrderMintService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		mintService:   mintService,
		webhookSecret: webhookSecret,
	}
}

// OrdersCreate handles the orders/create webhook. The signature check runs
// over the raw body before anything else; a mismatch is answered with 403 and
// causes no outbound calls.
func (h *WebhookHandler) OrdersCreate(c echo.Context) error {
	ctx := c.Request().Context()
	metrics.WebhooksReceivedTotal.Inc()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read request body")
	}

	hmacHeader := c.Request().Header.Get("X-Shopify-Hmac-Sha256")
	if !webhook.VerifyShopifyHMAC(body, hmacHeader, h.webhookSecret) {
		metrics.WebhooksRejectedTotal.Inc()
		return c.NoContent(http.StatusForbidden)
	}

	orderID := c.Request().Header.Get("X-Shopify-Order-Id")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing X-Shopify-Order-Id header")
	}

	if err := h.mintService.HandleOrderCreated(ctx, orderID); err != nil {
		// Let the framework's error handler answer; Shopify will retry
		// the delivery and already-minted items are skipped on replay.
		return err
	}

	return c.NoContent(http.StatusOK)
}
