package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"shortforge/config"
	"shortforge/drive"
	"shortforge/generate"
	"shortforge/orchestrator"
	"shortforge/sheets"
	"shortforge/storage"
	"shortforge/tts"
	"shortforge/video"
)

func main() {
	once := flag.Bool("once", false, "Process a single queue row and exit")
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	log.Println("🤖 Shortforge Orchestrator - Starting...")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	worker, err := buildWorker(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to initialize worker: %v", err)
	}

	if *once {
		if _, err := worker.RunOnce(ctx); err != nil {
			log.Fatalf("❌ Run failed: %v", err)
		}
		return
	}

	if err := worker.Start(ctx); err != nil {
		log.Fatalf("❌ Worker failed: %v", err)
	}
}

func buildWorker(ctx context.Context) (*orchestrator.Worker, error) {
	serviceAccount, err := os.ReadFile(config.ServiceAccountFile())
	if err != nil {
		return nil, err
	}

	queue, err := sheets.NewQueue(ctx, serviceAccount, config.SheetID(), config.SheetTab())
	if err != nil {
		return nil, err
	}

	uploader, err := drive.NewUploader(ctx, serviceAccount)
	if err != nil {
		return nil, err
	}

	// S3 is an optional second publish target.
	var store *storage.Store
	if bucket := config.S3Bucket(); bucket != "" {
		store, err = storage.NewStore(ctx, storage.Config{Bucket: bucket})
		if err != nil {
			log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
			store = nil
		}
	}

	claims := redis.NewClient(&redis.Options{Addr: config.RedisAddr()})

	return orchestrator.NewWorker(orchestrator.Config{
		Queue:     queue,
		Generator: generate.NewGenerator(config.CohereAPIKey()),
		Speech:    tts.NewClient(config.OpenAIAPIKey()),
		Pipeline:  video.NewPipeline(video.DefaultProfile()),
		Uploader:  uploader,
		Store:     store,
		Claims:    claims,
		FolderID:  config.DriveFolderID(),
		OutputDir: config.OutputDir,
	})
}
