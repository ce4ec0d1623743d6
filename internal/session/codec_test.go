package session

import (
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-cookie-secret"

// ── NewCodec ──────────────────────────────────────────────────────────────────

func TestNewCodec_EmptySecret(t *testing.T) {
	codec, err := NewCodec("", time.Hour)

	assert.Nil(t, codec)
	assert.ErrorIs(t, err, ErrNoCookieSecret)
}

func TestNewCodec_ValidSecret(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)

	require.NoError(t, err)
	assert.NotNil(t, codec)
}

// ── Sign / Verify ─────────────────────────────────────────────────────────────

// TestCodec_SignVerifyRoundtrip verifies that a signed value verifies
// and decodes back to the original payload.
func TestCodec_SignVerifyRoundtrip(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	signed := codec.Sign("session", "payload-value")
	got, err := codec.Verify("session", signed)

	require.NoError(t, err)
	assert.Equal(t, "payload-value", got)
}

// TestCodec_SignWireFormat verifies the three-field shape of the signed
// value: encoded payload, unix timestamp, hex signature.
func TestCodec_SignWireFormat(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	signed := codec.Sign("session", "abc")

	parts := strings.Split(signed, "|")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Equal(t, "abc", string(payload))

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Unix(), ts, 5)

	assert.Len(t, parts[2], 64) // hex-encoded sha256
}

// TestCodec_VerifyTamperedPayload verifies that changing the payload
// invalidates the signature.
func TestCodec_VerifyTamperedPayload(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	signed := codec.Sign("session", "payload-value")
	parts := strings.Split(signed, "|")
	parts[0] = base64.RawURLEncoding.EncodeToString([]byte("forged-value"))

	_, err = codec.Verify("session", strings.Join(parts, "|"))
	assert.ErrorIs(t, err, ErrBadSignature)
}

// TestCodec_VerifyTamperedTimestamp verifies that shifting the timestamp
// invalidates the signature rather than reporting expiry.
func TestCodec_VerifyTamperedTimestamp(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	signed := codec.Sign("session", "payload-value")
	parts := strings.Split(signed, "|")
	parts[1] = strconv.FormatInt(time.Now().Add(48*time.Hour).Unix(), 10)

	_, err = codec.Verify("session", strings.Join(parts, "|"))
	assert.ErrorIs(t, err, ErrBadSignature)
}

// TestCodec_VerifyWrongCookieName verifies that a value signed for one
// cookie name does not verify under another.
func TestCodec_VerifyWrongCookieName(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	signed := codec.Sign("session", "payload-value")

	_, err = codec.Verify("other-cookie", signed)
	assert.ErrorIs(t, err, ErrBadSignature)
}

// TestCodec_VerifyWrongSecret verifies that codecs with different secrets
// reject each other's output.
func TestCodec_VerifyWrongSecret(t *testing.T) {
	signer, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)
	verifier, err := NewCodec("another-secret", time.Hour)
	require.NoError(t, err)

	signed := signer.Sign("session", "payload-value")

	_, err = verifier.Verify("session", signed)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestCodec_VerifyMalformed(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "one field", raw: "just-a-value"},
		{name: "two fields", raw: "value|123456"},
		{name: "four fields", raw: "value|123456|sig|extra"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := codec.Verify("session", test.raw)
			assert.ErrorIs(t, err, ErrMalformedCookie)
		})
	}
}

// TestCodec_VerifyExpired verifies that a correctly signed but stale value
// is rejected with ErrCookieExpired. The stale value is crafted by signing
// an old timestamp with the codec's own signature helper.
func TestCodec_VerifyExpired(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Minute)
	require.NoError(t, err)

	encoded := base64.RawURLEncoding.EncodeToString([]byte("payload-value"))
	ts := strconv.FormatInt(time.Now().Add(-2*time.Minute).Unix(), 10)
	raw := encoded + "|" + ts + "|" + codec.signature("session", encoded, ts)

	_, err = codec.Verify("session", raw)
	assert.ErrorIs(t, err, ErrCookieExpired)
}

// TestCodec_VerifyZeroTTLDisablesExpiry verifies that a zero-TTL codec
// accepts arbitrarily old values.
func TestCodec_VerifyZeroTTLDisablesExpiry(t *testing.T) {
	codec, err := NewCodec(testSecret, 0)
	require.NoError(t, err)

	encoded := base64.RawURLEncoding.EncodeToString([]byte("payload-value"))
	ts := strconv.FormatInt(time.Now().Add(-365*24*time.Hour).Unix(), 10)
	raw := encoded + "|" + ts + "|" + codec.signature("session", encoded, ts)

	got, err := codec.Verify("session", raw)
	require.NoError(t, err)
	assert.Equal(t, "payload-value", got)
}

// TestCodec_ConcurrentUse exercises the pooled hashers from multiple
// goroutines.
func TestCodec_ConcurrentUse(t *testing.T) {
	codec, err := NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			value := "payload-" + strconv.Itoa(n)
			for j := 0; j < 100; j++ {
				got, err := codec.Verify("session", codec.Sign("session", value))
				assert.NoError(t, err)
				assert.Equal(t, value, got)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
