package smtpmail

import (
	"strings"
	"testing"

	"webinarBooker/internal/mailer"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	raw := string(buildMessage("noreply@example.com", mailer.Message{
		To:      "organizer-1@example.com",
		Subject: "New participant for webinar: Test Webinar",
		Body:    "User user@example.com has booked a seat in your webinar.",
	}))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	assert.True(t, found, "message must separate headers from body with a blank line")

	assert.Contains(t, headers, "From: noreply@example.com\r\n")
	assert.Contains(t, headers, "To: organizer-1@example.com\r\n")
	assert.Contains(t, headers, "Subject: New participant for webinar: Test Webinar\r\n")
	assert.Contains(t, headers, "Content-Type: text/plain; charset=utf-8")
	assert.Equal(t, "User user@example.com has booked a seat in your webinar.", body)
}
