package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer verifies the gateway's HMAC-SHA256 signatures. The key secret covers
// synchronous payment verification (over "orderID|paymentID"); the webhook
// secret separately covers raw webhook bodies.
type Signer struct {
	keySecret     []byte
	webhookSecret []byte
}

func NewSigner(keySecret, webhookSecret string) *Signer {
	return &Signer{
		keySecret:     []byte(keySecret),
		webhookSecret: []byte(webhookSecret),
	}
}

// SignPayment computes the expected signature for an order/payment pair.
func (s *Signer) SignPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.keySecret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks the signature the gateway handed the client
// after a synchronous payment. Comparison is constant-time.
func (s *Signer) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	expected := s.SignPayment(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the signature header of an asynchronous
// webhook delivery against the raw request body.
func (s *Signer) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, s.webhookSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
