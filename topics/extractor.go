package topics

import (
	"fmt"
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	workerCount      = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAll fetches article text for every topic using a worker pool, so
// the generator can be prompted with real article context rather than a
// one-line feed summary. Extraction failures are logged and the topic keeps
// its summary as context.
func ExtractAll(topics []*Topic) {
	var wg sync.WaitGroup
	topicChan := make(chan *Topic, len(topics))

	for i := 0; i < workerCount; i++ {
		go func(workerID int) {
			for topic := range topicChan {
				if err := extract(topic); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, topic.URL, err)
					topic.Context = topic.Summary
				}
				wg.Done()
			}
		}(i)
	}

	for _, topic := range topics {
		wg.Add(1)
		topicChan <- topic
	}

	wg.Wait()
	close(topicChan)
}

func extract(topic *Topic) error {
	if topic.URL == "" {
		return fmt.Errorf("topic URL is empty")
	}

	article, err := readability.FromURL(topic.URL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	topic.Context = article.TextContent
	if topic.Summary == "" {
		topic.Summary = article.Excerpt
	}
	return nil
}
