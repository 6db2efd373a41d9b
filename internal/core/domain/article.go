package domain

import "strings"

// FieldAbsent is the sentinel stored when an optional feed field is missing.
// Downstream counting of failed extractions relies on absence being an
// explicit marker, never an empty string.
const FieldAbsent = "N/A"

// Metadata length caps applied at ingestion time. These are a storage
// contract with the index service, not a display contract.
const (
	MaxTitleLen      = 500
	MaxCreatorLen    = 200
	MaxCategoriesLen = 300
	MaxPubDateLen    = 100
	MaxSourceURLLen  = 300

	// MaxCategories is the number of categories joined into metadata.
	MaxCategories = 5
)

// Article is a normalised feed item produced by one scrape cycle.
// It is ephemeral: articles exist between normalisation and ingestion
// and are never persisted as-is.
type Article struct {
	// Title is the article headline, FieldAbsent when missing.
	Title string

	// Creator is the author, FieldAbsent when missing.
	Creator string

	// Categories are the feed-assigned category labels, in feed order.
	Categories []string

	// Description is the short summary, FieldAbsent when missing.
	Description string

	// PubDate is the publication date in the source's native format.
	// It is carried verbatim and never reparsed.
	PubDate string

	// Content is the full body text with script/style elements stripped
	// and internal newlines collapsed. Falls back to the stripped
	// description when the feed carries no encoded body, and to
	// FieldAbsent when both are empty.
	Content string

	// SourceURL is the feed URL the article was scraped from.
	SourceURL string
}

// IndexText builds the full text submitted to the index service.
func (a Article) IndexText() string {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(a.Title)
	b.WriteString("\n\nDescription: ")
	b.WriteString(a.Description)
	b.WriteString("\n\nContent: ")
	b.WriteString(a.Content)
	return b.String()
}

// DocumentMetadata is the fixed-schema metadata record stored alongside a
// document. Fields are capped by Metadata(); ad-hoc maps are deliberately
// avoided so caps are enforced in one place.
type DocumentMetadata struct {
	Title      string `json:"title"`
	Creator    string `json:"creator"`
	Categories string `json:"categories"`
	PubDate    string `json:"pub_date"`
	SourceURL  string `json:"source_url"`
	Type       string `json:"type"`
}

// DocumentTypeArticle marks documents ingested from RSS feeds.
const DocumentTypeArticle = "rss_article"

// Metadata builds the capped metadata record for an article.
func (a Article) Metadata() DocumentMetadata {
	categories := a.Categories
	if len(categories) > MaxCategories {
		categories = categories[:MaxCategories]
	}

	return DocumentMetadata{
		Title:      truncate(a.Title, MaxTitleLen),
		Creator:    truncate(a.Creator, MaxCreatorLen),
		Categories: truncate(strings.Join(categories, ", "), MaxCategoriesLen),
		PubDate:    truncate(a.PubDate, MaxPubDateLen),
		SourceURL:  truncate(a.SourceURL, MaxSourceURLLen),
		Type:       DocumentTypeArticle,
	}
}

// truncate caps s at max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !isRuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
