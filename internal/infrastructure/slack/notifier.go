package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"newsbriefing/internal/config"
	"newsbriefing/internal/ports"
)

const sendTimeout = 10 * time.Second

// payload is the incoming-webhook message body. Unfurling is disabled so a
// briefing with a dozen links does not expand into a wall of previews.
type payload struct {
	Text        string `json:"text"`
	UnfurlLinks bool   `json:"unfurl_links"`
	UnfurlMedia bool   `json:"unfurl_media"`
	Username    string `json:"username,omitempty"`
	IconEmoji   string `json:"icon_emoji,omitempty"`
}

// Notifier posts briefings to a Slack incoming webhook.
type Notifier struct {
	webhookURL string
	username   string
	iconEmoji  string
	client     *resty.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier builds a notifier from Slack configuration. Delivery is a
// single POST with a bounded timeout and no retries.
func NewNotifier(cfg config.SlackConfig) *Notifier {
	return &Notifier{
		webhookURL: cfg.WebhookURL,
		username:   cfg.Username,
		iconEmoji:  cfg.IconEmoji,
		client:     resty.New().SetTimeout(sendTimeout),
	}
}

// Send delivers the message as JSON; anything other than HTTP 200 is a
// failure.
func (n *Notifier) Send(ctx context.Context, message string) error {
	if n.webhookURL == "" {
		return fmt.Errorf("slack notifier misconfigured: empty webhook URL")
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload{
			Text:      message,
			Username:  n.username,
			IconEmoji: n.iconEmoji,
		}).
		Post(n.webhookURL)
	if err != nil {
		return fmt.Errorf("post briefing: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > 1024 {
			body = body[:1024]
		}
		return fmt.Errorf("slack error %s: %s", resp.Status(), body)
	}

	return nil
}
