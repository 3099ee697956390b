package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"newsbriefing/internal/domain"
	"newsbriefing/internal/ports"
)

const fetchTimeout = 20 * time.Second

// Fetcher retrieves RSS/Atom feeds over HTTP and normalizes their entries.
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
	logger  *slog.Logger
}

var _ ports.FeedFetcher = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; a nil client gets a bounded default so an
// unreachable feed cannot hang the whole run.
func NewFetcher(client *http.Client, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	parser := gofeed.NewParser()
	parser.Client = client

	return &Fetcher{parser: parser, timeout: fetchTimeout, logger: logger}
}

// Fetch processes URLs in the order given and returns one result per URL,
// capped at limit articles each. A URL that fails to load or parse gets an
// error result and never aborts the remaining URLs; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context, urls []string, limit int) []domain.FetchResult {
	results := make([]domain.FetchResult, 0, len(urls))

	for _, feedURL := range urls {
		f.debug("fetching feed", "url", feedURL)

		parsed, err := f.parse(ctx, feedURL)
		if err != nil {
			f.warn("skipping feed", "url", feedURL, "error", err)
			results = append(results, domain.FetchResult{URL: feedURL, Err: err})
			continue
		}

		source := CleanTitle(parsed.Title)
		if source == "" {
			source = domain.UnknownSource
		}

		// Entries are taken in feed-declared order, typically newest-first,
		// without re-sorting by publication date.
		items := parsed.Items
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}

		articles := lo.Map(items, func(item *gofeed.Item, _ int) domain.Article {
			return newArticle(item, source)
		})

		f.debug("feed produced articles", "url", feedURL, "source", source, "count", len(articles))
		results = append(results, domain.FetchResult{URL: feedURL, Articles: articles})
	}

	return results
}

func (f *Fetcher) parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return f.parser.ParseURLWithContext(feedURL, fetchCtx)
}

func newArticle(item *gofeed.Item, source string) domain.Article {
	title := CleanTitle(item.Title)
	if title == "" {
		title = domain.NoTitle
	}

	published := item.Published
	if published == "" {
		published = domain.UnknownDate
	}

	return domain.Article{
		Title:     title,
		Link:      item.Link,
		Source:    source,
		Published: published,
	}
}

func (f *Fetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

func (f *Fetcher) warn(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Warn(msg, args...)
	}
}
