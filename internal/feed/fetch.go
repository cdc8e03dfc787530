// Package feed fetches the configured sources and produces the ranked
// top-10 item list for one digest run.
package feed

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jaytaylor/html2text"
	"github.com/mmcdole/gofeed"

	"github.com/cafeconia/digest/internal/models"
)

// Fetcher retrieves and normalizes a single syndication feed.
type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 20 * time.Second}
	parser.UserAgent = "cafe-digest/1.0"
	return &Fetcher{parser: parser}
}

// Fetch returns the normalized entries of one feed. Errors are returned to
// the caller, which treats them as an empty contribution.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]models.Item, error) {
	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}
	items := make([]models.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item, ok := normalize(entry)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// normalize applies the field fallback rules. Entries without a usable
// link are dropped; the link doubles as the dedup key downstream.
func normalize(entry *gofeed.Item) (models.Item, bool) {
	link := strings.TrimSpace(entry.Link)
	if link == "" {
		link = strings.TrimSpace(entry.GUID)
	}
	if link == "" {
		return models.Item{}, false
	}
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = models.PlaceholderTitle
	}
	return models.Item{
		Title:       title,
		Link:        link,
		Published:   publishedTime(entry),
		Description: snippet(firstNonEmpty(entry.Description, entry.Content)),
	}, true
}

func publishedTime(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed
	}
	raw := strings.TrimSpace(firstNonEmpty(entry.Published, entry.Updated))
	if raw == "" {
		return time.Time{}
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// snippet reduces an HTML description to plain text for classification and
// the text digest.
func snippet(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	text, err := html2text.FromString(value, html2text.Options{TextOnly: true})
	if err != nil {
		return value
	}
	return strings.TrimSpace(text)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
