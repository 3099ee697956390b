package domain

// Placeholder values substituted when a feed omits the corresponding field.
const (
	UnknownSource = "Unknown Source"
	NoTitle       = "No title"
	UnknownDate   = "Unknown date"
)

// Article is one normalized entry extracted from a feed. Published carries
// the feed-supplied date string verbatim; feeds disagree on formats and the
// briefing only displays it.
type Article struct {
	Title     string
	Link      string
	Source    string
	Published string
}

// FetchResult reports the outcome for a single feed URL: either the articles
// it yielded or the reason it was skipped. A batch fetch returns one result
// per URL so the caller decides what a failed feed means instead of the
// fetcher aborting the run.
type FetchResult struct {
	URL      string
	Articles []Article
	Err      error
}
