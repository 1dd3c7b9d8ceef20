package kafka

import (
	"context"
	"log"

	"shortforge/video"
)

// JobConsumerConfig wires the render processor to a topic.
type JobConsumerConfig struct {
	Brokers   []string
	Topic     string
	GroupID   string
	Processor *video.Processor
}

// NewJobHandler builds the handler for render job messages. Jobs without an
// audio source are skipped and marked; render failures are left unmarked so
// the group redelivers them.
func NewJobHandler(processor *video.Processor) MessageHandler {
	return &TypedMessageHandler[video.Job]{
		Validate: func(job *video.Job) bool {
			if job.Audio == "" {
				log.Println("⚠️  Skipping job with no audio source")
				return false
			}
			return true
		},
		Process: func(ctx context.Context, job *video.Job) error {
			log.Printf("🎬 Rendering job: %s", job.Title)

			if err := processor.Process(*job); err != nil {
				log.Printf("❌ Failed to render job %q: %v", job.Title, err)
				return err
			}

			log.Printf("✅ Rendered job: %s", job.Title)
			return nil
		},
		AlwaysMark: true,
	}
}

// StartJobConsumer consumes render jobs until interrupted.
func StartJobConsumer(config JobConsumerConfig) error {
	return StartConsumerWithGracefulShutdown(ConsumerConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
		GroupID: config.GroupID,
		Handler: NewJobHandler(config.Processor),
	})
}
