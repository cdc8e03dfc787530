package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cafeconia/digest/internal/classify"
	"github.com/cafeconia/digest/internal/models"
)

// TopN is the fixed digest size.
const TopN = 10

// FetchFunc retrieves the normalized entries of one feed URL.
type FetchFunc func(ctx context.Context, feedURL string) ([]models.Item, error)

// Aggregator fans out over the configured feeds and merges the results
// into a ranked list.
type Aggregator struct {
	fetch  FetchFunc
	logger logrus.FieldLogger
}

func NewAggregator(fetch FetchFunc, logger logrus.FieldLogger) *Aggregator {
	return &Aggregator{fetch: fetch, logger: logger}
}

// Aggregate fetches all feeds concurrently, normalizes and deduplicates
// their entries, classifies each survivor and returns at most TopN items
// sorted by descending score. A failing feed contributes nothing; Aggregate
// itself never fails.
func (a *Aggregator) Aggregate(ctx context.Context, feedURLs []string, loc *time.Location) []models.RankedItem {
	results := make([][]models.Item, len(feedURLs))

	var wg sync.WaitGroup
	for i, feedURL := range feedURLs {
		wg.Add(1)
		go func(i int, feedURL string) {
			defer wg.Done()
			items, err := a.fetch(ctx, feedURL)
			if err != nil {
				a.logger.WithField("feed", feedURL).WithError(err).Warn("feed fetch failed, skipping")
				return
			}
			results[i] = items
		}(i, feedURL)
	}
	wg.Wait()

	// Flatten in configured feed order so equal scores rank the same way
	// on every run.
	var raw []models.Item
	for _, items := range results {
		raw = append(raw, items...)
	}

	deduped := dedupByLink(raw)

	ranked := make([]models.RankedItem, 0, len(deduped))
	for _, item := range deduped {
		text := item.Title + " " + item.Description
		ranked = append(ranked, models.RankedItem{
			Item:      item,
			Category:  classify.Tag(text),
			Rationale: classify.Rationale(text),
			Date:      itemDate(item.Published, loc),
			Score:     classify.Score(text, item.Link),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}

// dedupByLink keeps one item per link. The slot keeps its first-seen
// position but the value is the last one seen, so a correction published
// under the same link replaces the original entry.
func dedupByLink(items []models.Item) []models.Item {
	index := make(map[string]int, len(items))
	deduped := make([]models.Item, 0, len(items))
	for _, item := range items {
		if at, ok := index[item.Link]; ok {
			deduped[at] = item
			continue
		}
		index[item.Link] = len(deduped)
		deduped = append(deduped, item)
	}
	return deduped
}

func itemDate(published time.Time, loc *time.Location) string {
	if published.IsZero() {
		return models.NoDate
	}
	return published.In(loc).Format("2006-01-02")
}
