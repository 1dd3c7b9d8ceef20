package topics

import (
	"context"
	"log"

	"github.com/google/uuid"

	"shortforge/sheets"
)

// FeedPresets maps friendly names to finance feed URLs.
var FeedPresets = map[string]string{
	"boc": "https://www.bankofcanada.ca/feed/",
	"fp":  "https://financialpost.com/feed",
	"gm":  "https://www.theglobeandmail.com/investing/personal-finance/?service=rss",
}

// ResolveFeedURL resolves a preset name to its URL, or returns the input
// unchanged when it is already a URL.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// Seed appends each topic as a pending row in the queue. Returns the number
// of rows appended.
func Seed(ctx context.Context, queue *sheets.Queue, topics []*Topic, format string) (int, error) {
	appended := 0
	for _, topic := range topics {
		if topic.Title == "" {
			continue
		}
		if err := queue.Append(ctx, uuid.NewString(), topic.Title, format); err != nil {
			return appended, err
		}
		appended++
		log.Printf("Queued topic: %s", topic.Title)
	}
	return appended, nil
}
