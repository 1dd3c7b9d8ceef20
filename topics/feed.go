package topics

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// Topic is a candidate queue entry sourced from a feed.
type Topic struct {
	Title       string
	URL         string
	Summary     string
	Context     string
	PublishedAt time.Time
}

// FetchFeed retrieves and parses an RSS/Atom feed, returning up to maxCount
// topic candidates in feed order.
func FetchFeed(feedURL string, maxCount int) ([]*Topic, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), maxCount)
	topics := make([]*Topic, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		topics = append(topics, &Topic{
			Title:       item.Title,
			URL:         item.Link,
			Summary:     summary,
			PublishedAt: publishedAt,
		})
	}

	return topics, nil
}
