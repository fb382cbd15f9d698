package intasend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookChallengeCompare(t *testing.T) {
	c := NewClient(Config{Challenge: "shared-secret"})

	assert.True(t, c.VerifyWebhook(WebhookEvent{Challenge: "shared-secret"}))
	assert.False(t, c.VerifyWebhook(WebhookEvent{Challenge: "wrong"}))
	assert.False(t, c.VerifyWebhook(WebhookEvent{}))
}

func TestVerifyWebhookFailsClosedWhenUnconfigured(t *testing.T) {
	c := NewClient(Config{})

	// Without a configured secret every payload is rejected, including one
	// carrying an empty challenge.
	assert.False(t, c.VerifyWebhook(WebhookEvent{Challenge: ""}))
	assert.False(t, c.VerifyWebhook(WebhookEvent{Challenge: "anything"}))
}
