package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyShopifyHMAC_ValidSignature(t *testing.T) {
	body := []byte(`{"order":{"id":1001}}`)
	secret := "shpss_test_secret"

	ok := VerifyShopifyHMAC(body, sign(body, secret), secret)

	assert.True(t, ok)
}

func TestVerifyShopifyHMAC_WrongSignature(t *testing.T) {
	body := []byte(`{"order":{"id":1001}}`)

	ok := VerifyShopifyHMAC(body, "bm90LWEtcmVhbC1zaWduYXR1cmU=", "shpss_test_secret")

	assert.False(t, ok)
}

func TestVerifyShopifyHMAC_SignatureOverDifferentBody(t *testing.T) {
	secret := "shpss_test_secret"
	signature := sign([]byte(`{"order":{"id":1001}}`), secret)

	// Even a whitespace difference in the raw bytes must fail.
	ok := VerifyShopifyHMAC([]byte(`{"order": {"id": 1001}}`), signature, secret)

	assert.False(t, ok)
}

func TestVerifyShopifyHMAC_EmptyHeaderOrSecret(t *testing.T) {
	body := []byte(`{}`)

	assert.False(t, VerifyShopifyHMAC(body, "", "secret"))
	assert.False(t, VerifyShopifyHMAC(body, sign(body, "secret"), ""))
}
