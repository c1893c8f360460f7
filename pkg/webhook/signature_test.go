package webhook_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/webhook"
)

func TestSignPayload(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"type":"lead.created"}`)
	at := time.Now()

	sig, err := webhook.SignPayload("secret", payload, "evt_1", at)
	require.NoError(t, err)
	assert.Equal(t, at.Unix(), sig.Timestamp)
	assert.Equal(t, "evt_1", sig.ID)
	assert.Len(t, sig.Signature, 64)

	again, err := webhook.SignPayload("secret", payload, "evt_1", at)
	require.NoError(t, err)
	assert.Equal(t, sig.Signature, again.Signature)

	_, err = webhook.SignPayload("", payload, "evt_1", at)
	assert.ErrorIs(t, err, webhook.ErrInvalidConfiguration)
	_, err = webhook.SignPayload("secret", nil, "evt_1", at)
	assert.ErrorIs(t, err, webhook.ErrInvalidPayload)
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"type":"lead.created"}`)

	t.Run("accepts fresh signature", func(t *testing.T) {
		t.Parallel()
		sig, _ := webhook.SignPayload("secret", payload, "evt", time.Now())
		assert.NoError(t, webhook.VerifySignature("secret", payload, sig, 5*time.Minute))
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		t.Parallel()
		sig, _ := webhook.SignPayload("secret", payload, "evt", time.Now())
		err := webhook.VerifySignature("secret", []byte(`{"type":"lead.deleted"}`), sig, 0)
		assert.ErrorIs(t, err, webhook.ErrSignatureMismatch)
	})

	t.Run("rejects stale timestamp", func(t *testing.T) {
		t.Parallel()
		sig, _ := webhook.SignPayload("secret", payload, "evt", time.Now().Add(-time.Hour))
		assert.ErrorIs(t, webhook.VerifySignature("secret", payload, sig, 5*time.Minute), webhook.ErrSignatureMismatch)
		assert.NoError(t, webhook.VerifySignature("secret", payload, sig, 0), "maxAge 0 skips the age check")
	})

	t.Run("rejects future timestamp", func(t *testing.T) {
		t.Parallel()
		sig, _ := webhook.SignPayload("secret", payload, "evt", time.Now().Add(time.Hour))
		assert.ErrorIs(t, webhook.VerifySignature("secret", payload, sig, 5*time.Minute), webhook.ErrSignatureMismatch)
	})

	t.Run("missing signature", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, webhook.VerifySignature("secret", payload, webhook.SignatureHeaders{}, 0), webhook.ErrSignatureMismatch)
	})
}

func TestExtractSignatureHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("x-webhook-signature", "abc")
	h.Set("X-WEBHOOK-TIMESTAMP", "1700000000")
	h.Set(webhook.HeaderID, "evt_1")

	sig, err := webhook.ExtractSignatureHeaders(h)
	require.NoError(t, err)
	assert.Equal(t, webhook.SignatureHeaders{Signature: "abc", Timestamp: 1700000000, ID: "evt_1"}, sig)

	h.Set(webhook.HeaderTimestamp, "soon")
	_, err = webhook.ExtractSignatureHeaders(h)
	assert.ErrorIs(t, err, webhook.ErrSignatureMismatch)

	_, err = webhook.ExtractSignatureHeaders(http.Header{})
	assert.ErrorIs(t, err, webhook.ErrSignatureMismatch)
}
