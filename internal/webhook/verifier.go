// Package webhook receives Ashby webhook deliveries, verifies their
// HMAC-SHA256 signature and hands the decoded event to a Dispatcher.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const (
	// SignatureHeader carries "<method>=<hex digest>"
	SignatureHeader = "Ashby-Signature"

	// SignatureMethod is the only accepted digest method
	SignatureMethod = "sha256"
)

var (
	// ErrMissingSignature is returned when a secret is configured but the request is unsigned
	ErrMissingSignature = errors.New("missing Ashby-Signature header")

	// ErrMalformedSignature is returned when the header is not "sha256=<hex>"
	ErrMalformedSignature = errors.New("malformed Ashby-Signature header")

	// ErrInvalidSignature is returned when the digest does not match the body
	ErrInvalidSignature = errors.New("invalid signature")
)

// Verifier checks webhook signatures against a shared secret
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier. With an empty secret every request is
// accepted and a warning is logged once.
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		slog.Warn("Ashby webhook secret is not set; webhook signature verification is disabled")
		return &Verifier{}
	}
	return &Verifier{secret: []byte(secret)}
}

// Enabled reports whether signatures are checked
func (v *Verifier) Enabled() bool {
	return v != nil && len(v.secret) > 0
}

// Verify checks header against the HMAC-SHA256 of the exact raw body
func (v *Verifier) Verify(body []byte, header string) error {
	if !v.Enabled() {
		return nil
	}

	header = strings.TrimSpace(header)
	if header == "" {
		return ErrMissingSignature
	}

	method, digest, ok := strings.Cut(header, "=")
	if !ok || strings.Contains(digest, "=") {
		return fmt.Errorf("%w: expected %s=<hex>", ErrMalformedSignature, SignatureMethod)
	}
	if method != SignatureMethod {
		return fmt.Errorf("%w: unsupported method %q", ErrMalformedSignature, method)
	}

	provided, err := hex.DecodeString(digest)
	if err != nil {
		return ErrInvalidSignature
	}

	if !hmac.Equal(provided, computeMAC(v.secret, body)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign returns the header value for body signed with secret
func Sign(secret string, body []byte) string {
	return SignatureMethod + "=" + hex.EncodeToString(computeMAC([]byte(secret), body))
}

func computeMAC(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return mac.Sum(nil)
}

// StatusCode maps a verification error to its HTTP status
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMissingSignature):
		return http.StatusUnauthorized
	case errors.Is(err, ErrMalformedSignature):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidSignature):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
