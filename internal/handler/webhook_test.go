package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "shpss_test_secret"

// MockMintService implements service.OrderMintService for testing
type MockMintService struct {
	err   error
	calls []string
}

func (m *MockMintService) HandleOrderCreated(_ context.Context, orderID string) error {
	m.calls = append(m.calls, orderID)
	return m.err
}

func sign(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func newWebhookContext(body, signature, orderID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/orders/create", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set("X-Shopify-Hmac-Sha256", signature)
	}
	if orderID != "" {
		req.Header.Set("X-Shopify-Order-Id", orderID)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOrdersCreate_ValidSignatureProcessesOrder(t *testing.T) {
	body := `{"order":{"id":1001}}`
	mintService := &MockMintService{}
	h := NewWebhookHandler(mintService, testSecret)

	c, rec := newWebhookContext(body, sign(body, testSecret), "1001")

	err := h.OrdersCreate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1001"}, mintService.calls)
}

func TestOrdersCreate_BadSignatureRejectedWithoutProcessing(t *testing.T) {
	body := `{"order":{"id":1001}}`
	mintService := &MockMintService{}
	h := NewWebhookHandler(mintService, testSecret)

	c, rec := newWebhookContext(body, "bm90LWEtcmVhbC1zaWduYXR1cmU=", "1001")

	err := h.OrdersCreate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, mintService.calls)
}

func TestOrdersCreate_MissingSignatureRejected(t *testing.T) {
	body := `{"order":{"id":1001}}`
	mintService := &MockMintService{}
	h := NewWebhookHandler(mintService, testSecret)

	c, rec := newWebhookContext(body, "", "1001")

	err := h.OrdersCreate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, mintService.calls)
}

func TestOrdersCreate_MissingOrderIDHeader(t *testing.T) {
	body := `{"order":{"id":1001}}`
	mintService := &MockMintService{}
	h := NewWebhookHandler(mintService, testSecret)

	c, _ := newWebhookContext(body, sign(body, testSecret), "")

	err := h.OrdersCreate(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, mintService.calls)
}

func TestOrdersCreate_ServiceErrorPropagates(t *testing.T) {
	body := `{"order":{"id":1001}}`
	mintService := &MockMintService{err: errors.New("fetch order: shopify error 500")}
	h := NewWebhookHandler(mintService, testSecret)

	c, _ := newWebhookContext(body, sign(body, testSecret), "1001")

	err := h.OrdersCreate(c)

	// The error reaches Echo's default handler, which answers 500 and
	// leaves Shopify to retry the delivery.
	require.Error(t, err)
	assert.Equal(t, []string{"1001"}, mintService.calls)
}
