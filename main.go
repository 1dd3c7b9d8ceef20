package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"shortforge/api"
	"shortforge/config"
	"shortforge/kafka"
	"shortforge/video"
)

const defaultAPIPort = ":8081"

func main() {
	batchMode := flag.Bool("batch", false, "Run in batch mode (render job files from the input directory)")
	kafkaMode := flag.Bool("kafka", false, "Run in Kafka consumer mode (consume render jobs from a topic)")
	apiPort := flag.String("port", defaultAPIPort, "API server port (e.g., :8081)")
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	log.Println("🎬 Shortforge Render Service - Starting...")

	processor, err := video.NewProcessor(video.DefaultProfile(), config.OutputDir)
	if err != nil {
		log.Fatalf("❌ Failed to initialize processor: %v", err)
	}

	if *batchMode {
		log.Println("📁 Running in BATCH mode")
		if err := processor.ProcessDirectory(config.InputDir); err != nil {
			log.Fatalf("❌ Batch rendering failed: %v", err)
		}
		os.Exit(0)
	}

	if *kafkaMode {
		log.Println("📨 Running in KAFKA consumer mode")

		kafkaConfig := kafka.JobConsumerConfig{
			Brokers:   config.KafkaBrokers(),
			Topic:     config.KafkaTopic(),
			GroupID:   config.KafkaGroupID(),
			Processor: processor,
		}

		log.Printf("🔗 Kafka Brokers: %v", kafkaConfig.Brokers)
		log.Printf("📋 Topic: %s", kafkaConfig.Topic)
		log.Printf("👥 Consumer Group: %s", kafkaConfig.GroupID)

		if err := kafka.StartJobConsumer(kafkaConfig); err != nil {
			log.Fatalf("❌ Kafka consumer failed: %v", err)
		}
		os.Exit(0)
	}

	log.Println("🌐 Running in API mode")

	router := api.NewServer(processor).NewRouter()

	log.Printf("🚀 API Server listening on %s", *apiPort)
	log.Println("📌 Endpoints:")
	log.Println("   POST /api/render  - Render a clip from a JSON job")
	log.Println("   GET  /health      - Health check")

	if err := http.ListenAndServe(*apiPort, router); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
