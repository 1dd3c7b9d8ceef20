package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"shortforge/config"
	"shortforge/sheets"
	"shortforge/topics"
)

func main() {
	feed := flag.String("feed", "boc", "Feed preset name or URL to pull topics from")
	count := flag.Int("count", 10, "Maximum number of topics to queue")
	format := flag.String("format", "short", "Video format to record on queued rows")
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	feedURL := topics.ResolveFeedURL(*feed)
	log.Printf("Fetching feed: %s", feedURL)

	candidates, err := topics.FetchFeed(feedURL, *count)
	if err != nil {
		log.Fatalf("❌ Failed to fetch feed: %v", err)
	}
	log.Printf("Fetched %d topics from feed", len(candidates))

	log.Println("Extracting article content...")
	topics.ExtractAll(candidates)

	serviceAccount, err := os.ReadFile(config.ServiceAccountFile())
	if err != nil {
		log.Fatalf("❌ Failed to read service account: %v", err)
	}

	ctx := context.Background()
	queue, err := sheets.NewQueue(ctx, serviceAccount, config.SheetID(), config.SheetTab())
	if err != nil {
		log.Fatalf("❌ Failed to open queue: %v", err)
	}

	appended, err := topics.Seed(ctx, queue, candidates, *format)
	if err != nil {
		log.Fatalf("❌ Seeding failed after %d rows: %v", appended, err)
	}
	log.Printf("✅ Queued %d topics", appended)
}
