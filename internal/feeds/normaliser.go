package feeds

import (
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// rssDocument models the parts of an RSS 2.0 feed the normaliser reads.
type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

// rssItem is one feed entry. Creator and Encoded live in the Dublin Core
// and RSS content-module namespaces respectively.
type rssItem struct {
	Title       string   `xml:"title"`
	Creator     string   `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Categories  []string `xml:"category"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Encoded     string   `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
}

// parseFeed decodes a feed document into its items.
func parseFeed(data []byte) ([]rssItem, error) {
	var doc rssDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	return doc.Channel.Items, nil
}

// normaliseItem turns a feed item into an Article. Missing optional
// fields degrade to the "N/A" sentinel; an item with no recognisable
// fields at all fails with domain.ErrExtraction.
func normaliseItem(item rssItem, sourceURL string) (domain.Article, error) {
	if isEmptyItem(item) {
		return domain.Article{}, fmt.Errorf("%w: empty item envelope", domain.ErrExtraction)
	}

	article := domain.Article{
		Title:       orAbsent(item.Title),
		Creator:     orAbsent(item.Creator),
		Categories:  trimAll(item.Categories),
		Description: orAbsent(item.Description),
		PubDate:     orAbsent(item.PubDate),
		SourceURL:   sourceURL,
	}

	// Body policy: prefer the encoded body, fall back to the
	// description, and mark total absence explicitly so failed
	// extractions stay countable downstream.
	body := strings.TrimSpace(item.Encoded)
	if body == "" {
		body = strings.TrimSpace(item.Description)
	}
	article.Content = orAbsent(stripHTML(body))

	return article, nil
}

func isEmptyItem(item rssItem) bool {
	return strings.TrimSpace(item.Title) == "" &&
		strings.TrimSpace(item.Creator) == "" &&
		strings.TrimSpace(item.Description) == "" &&
		strings.TrimSpace(item.PubDate) == "" &&
		strings.TrimSpace(item.Encoded) == "" &&
		len(item.Categories) == 0
}

func orAbsent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.FieldAbsent
	}
	return s
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Pre-compiled regular expressions for HTML stripping.
var (
	scriptTag   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	cdataMarker = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	allTags     = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// stripHTML removes script/style elements and markup, then collapses all
// whitespace, newlines included, to single spaces.
func stripHTML(content string) string {
	content = cdataMarker.ReplaceAllString(content, "$1")
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = allTags.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	content = whitespace.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}
