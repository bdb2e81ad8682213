package session_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/mduval/wedding-rsvp/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func freshToken(t *testing.T, username string, exp time.Time) string {
	t.Helper()
	token, err := session.Encode(session.Payload{
		Username:  username,
		ExpiresAt: exp.UnixMilli(),
	}, testSecret)
	require.NoError(t, err)
	return token
}

func TestVerifyRoundTrip(t *testing.T) {
	now := time.Now()
	token := freshToken(t, "admin", now.Add(time.Hour))

	username, ok := session.Verify(token, testSecret, now)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestVerifyWrongSecret(t *testing.T) {
	now := time.Now()
	token := freshToken(t, "admin", now.Add(time.Hour))

	_, ok := session.Verify(token, "other-secret", now)
	assert.False(t, ok)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	now := time.Now()
	exp := now.Add(time.Hour)
	token := freshToken(t, "admin", exp)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "well before expiry", at: now, want: true},
		{name: "one millisecond before expiry", at: exp.Add(-time.Millisecond), want: true},
		{name: "exactly at expiry", at: exp, want: false},
		{name: "after expiry", at: exp.Add(time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := session.Verify(token, testSecret, tt.at)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestVerifyMalformed(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "no separator", token: "abcdef"},
		{name: "too many segments", token: "a.b.c"},
		{name: "payload not base64", token: "!!!.c2ln"},
		{name: "payload not json", token: base64.RawURLEncoding.EncodeToString([]byte("not-json")) + ".c2ln"},
		{name: "payload missing fields", token: base64.RawURLEncoding.EncodeToString([]byte(`{"x":1}`)) + ".c2ln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := session.Verify(tt.token, testSecret, now)
			assert.False(t, ok)
		})
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	now := time.Now()
	token := freshToken(t, "admin", now.Add(time.Hour))

	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)

	// Flip each character of the signature segment in turn. None may verify.
	sig := parts[1]
	for i := 0; i < len(sig); i++ {
		altered := []byte(sig)
		if altered[i] == 'A' {
			altered[i] = 'B'
		} else {
			altered[i] = 'A'
		}
		tampered := parts[0] + "." + string(altered)
		if tampered == token {
			continue
		}
		_, ok := session.Verify(tampered, testSecret, now)
		assert.False(t, ok, "flipped signature byte %d must not verify", i)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	now := time.Now()
	token := freshToken(t, "admin", now.Add(time.Hour))
	parts := strings.Split(token, ".")

	// Substitute a different username under the original signature.
	forged, err := session.Encode(session.Payload{
		Username:  "intruder",
		ExpiresAt: now.Add(time.Hour).UnixMilli(),
	}, testSecret)
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")

	_, ok := session.Verify(forgedParts[0]+"."+parts[1], testSecret, now)
	assert.False(t, ok)
}
