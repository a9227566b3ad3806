package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifyShopifyHMAC checks that the X-Shopify-Hmac-Sha256 header matches
// base64(HMAC_SHA256(secret, body)). The body must be the raw request bytes:
// re-serializing a parsed payload produces a different byte sequence and
// breaks verification. Comparison is constant-time.
func VerifyShopifyHMAC(body []byte, hmacHeader string, secret string) bool {
	if hmacHeader == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(hmacHeader))
}
