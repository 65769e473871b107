package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader is the header LINE puts the body signature in.
const SignatureHeader = "X-Line-Signature"

// ComputeSignature returns Base64(HMAC-SHA256(secret, body)).
func ComputeSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks signature against the exact body bytes received.
// It returns ErrMissingSignature or ErrInvalidSignature, never panics.
func VerifySignature(secret string, body []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	expected := ComputeSignature(secret, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
