// Package session implements the compact signed token carried by the admin
// session cookie. A token is base64url(payload) + "." + base64url(signature)
// where the signature is HMAC-SHA256 over the encoded payload segment, keyed
// by the server secret. The token is self-contained: nothing is stored
// server-side, the secret alone verifies it.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Payload is the signed token body. ExpiresAt is absolute epoch millis.
type Payload struct {
	Username  string `json:"u"`
	ExpiresAt int64  `json:"exp"`
}

// Encode serializes and signs a payload with the given secret.
func Encode(p Payload, secret string) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	payloadB64 := base64.RawURLEncoding.EncodeToString(raw)
	return payloadB64 + "." + sign(payloadB64, secret), nil
}

// sign computes the base64url HMAC-SHA256 of the encoded payload segment.
// The signature covers the encoded bytes, not the decoded JSON; signer and
// verifier must agree on this.
func sign(payloadB64, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payloadB64))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks a bearer token against the secret at the given instant.
// It returns the authenticated username and whether the token is valid.
// Every failure mode (malformed, expired, bad signature) is just a false
// result; callers never learn which step failed.
func Verify(token, secret string, now time.Time) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return "", false
	}

	raw, err := decodeSegment(parts[0])
	if err != nil {
		return "", false
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", false
	}
	if p.Username == "" || p.ExpiresAt == 0 {
		return "", false
	}

	if p.ExpiresAt <= now.UnixMilli() {
		return "", false
	}

	// hmac.Equal is constant-time over equal-length inputs; a length
	// mismatch short-circuits, which leaks nothing useful.
	expected := sign(parts[0], secret)
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", false
	}

	return p.Username, true
}

// decodeSegment tolerates both padded and unpadded base64url input.
func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
