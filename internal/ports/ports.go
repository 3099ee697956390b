package ports

import (
	"context"

	"newsbriefing/internal/domain"
)

// FeedFetcher pulls article listings from upstream feeds. Implementations
// return one FetchResult per URL, in the order given, capped at limit
// articles per feed; a failing URL is reported in its result and never
// aborts the remaining URLs.
type FeedFetcher interface {
	Fetch(ctx context.Context, urls []string, limit int) []domain.FetchResult
}

// Notifier delivers a finished briefing to a chat channel.
type Notifier interface {
	Send(ctx context.Context, message string) error
}
