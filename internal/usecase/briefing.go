package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsbriefing/internal/config"
	"newsbriefing/internal/domain"
	"newsbriefing/internal/ports"
)

const (
	headerDateFormat = "January 02, 2006"
	footerTimeFormat = "03:04 PM MST"
	footerRule       = "─────────────────────"

	defaultArticlesPerFeed = 3
)

// BriefingDeps wires the feed fetcher into the briefing builder.
type BriefingDeps struct {
	Fetcher    ports.FeedFetcher
	Categories []config.CategoryConfig
	PerFeed    int
	Logger     *slog.Logger
}

// Briefing assembles the daily message from configured feed categories.
type Briefing struct {
	fetcher    ports.FeedFetcher
	categories []config.CategoryConfig
	perFeed    int
	logger     *slog.Logger
}

// NewBriefing constructs the builder; a non-positive per-feed limit falls
// back to the default.
func NewBriefing(deps BriefingDeps) *Briefing {
	perFeed := deps.PerFeed
	if perFeed <= 0 {
		perFeed = defaultArticlesPerFeed
	}

	return &Briefing{
		fetcher:    deps.Fetcher,
		categories: deps.Categories,
		perFeed:    perFeed,
		logger:     deps.Logger,
	}
}

// Build fetches every category in declaration order and renders the full
// message: a dated header, one section per category that yielded articles,
// and a footer with the total count and the time of day. Categories whose
// feeds all failed are silently omitted. Returns the message and the number
// of articles it contains.
func (b *Briefing) Build(ctx context.Context, now time.Time) (string, int) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📰 *Morning Briefing - %s*\n\n", now.Format(headerDateFormat))

	total := 0
	for _, category := range b.categories {
		b.debug("processing category", "category", category.Name, "feeds", len(category.Feeds))

		articles := b.collect(ctx, category)
		if len(articles) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "*━━━ %s ━━━*\n", strings.ToUpper(category.Name))
		for _, article := range articles {
			fmt.Fprintf(&sb, "• *%s*\n", article.Title)
			fmt.Fprintf(&sb, "  <%s|Read more> · _%s_\n\n", article.Link, article.Source)
			total++
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%s\n", footerRule)
	fmt.Fprintf(&sb, "📊 Total articles: %d | ⏰ Generated at %s", total, now.Format(footerTimeFormat))

	b.debug("briefing assembled", "total_articles", total)
	return sb.String(), total
}

// collect flattens one category's fetch results, dropping failed feeds.
// Articles stay in feed order, then entry order within each feed.
func (b *Briefing) collect(ctx context.Context, category config.CategoryConfig) []domain.Article {
	var articles []domain.Article
	for _, result := range b.fetcher.Fetch(ctx, category.Feeds, b.perFeed) {
		if result.Err != nil {
			b.warn("feed skipped", "category", category.Name, "url", result.URL, "error", result.Err)
			continue
		}
		articles = append(articles, result.Articles...)
	}
	return articles
}

func (b *Briefing) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func (b *Briefing) warn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}
