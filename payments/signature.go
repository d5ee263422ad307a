package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks the authenticity of a payment callback. Razorpay
// signs hex(HMAC-SHA256("<orderID>|<paymentID>")) with the key secret; the
// supplied signature must match that string exactly.
type SignatureVerifier struct {
	secret string
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: secret}
}

func (v *SignatureVerifier) Configured() bool {
	return v.secret != ""
}

func (v *SignatureVerifier) Verify(orderID, paymentID, signature string) bool {
	return ExpectedSignature(v.secret, orderID, paymentID) == signature
}

// ExpectedSignature computes the signature the gateway would have produced.
func ExpectedSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
