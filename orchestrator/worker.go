package orchestrator

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"shortforge/config"
	"shortforge/drive"
	"shortforge/generate"
	"shortforge/sheets"
	"shortforge/storage"
	"shortforge/tts"
	"shortforge/video"
)

// Worker drains the topics queue one row at a time: generate a script,
// synthesize the voiceover, render the clip, publish it, and stamp the row.
// Rows are claimed through Redis so several workers can share a queue
// without double-rendering.
type Worker struct {
	queue     *sheets.Queue
	generator *generate.Generator
	speech    *tts.Client
	pipeline  *video.Pipeline
	uploader  *drive.Uploader
	store     *storage.Store
	claims    *redis.Client

	folderID  string
	outputDir string

	cron   *cron.Cron
	cronID cron.EntryID
	mu     sync.Mutex
}

// Config wires the worker's collaborators. Store is optional; when nil the
// clip is published to Drive only.
type Config struct {
	Queue     *sheets.Queue
	Generator *generate.Generator
	Speech    *tts.Client
	Pipeline  *video.Pipeline
	Uploader  *drive.Uploader
	Store     *storage.Store
	Claims    *redis.Client
	FolderID  string
	OutputDir string
}

func NewWorker(cfg Config) (*Worker, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Worker{
		queue:     cfg.Queue,
		generator: cfg.Generator,
		speech:    cfg.Speech,
		pipeline:  cfg.Pipeline,
		uploader:  cfg.Uploader,
		store:     cfg.Store,
		claims:    cfg.Claims,
		folderID:  cfg.FolderID,
		outputDir: cfg.OutputDir,
		cron:      cron.New(),
	}, nil
}

// RunOnce processes the next pending row, if any. Returns false when the
// queue is drained or every pending row is claimed elsewhere.
func (w *Worker) RunOnce(ctx context.Context) (bool, error) {
	row, err := w.queue.NextPending(ctx)
	if err != nil {
		return false, fmt.Errorf("poll queue: %w", err)
	}
	if row == nil {
		log.Println("Queue drained, nothing to do")
		return false, nil
	}

	claimed, err := w.claim(ctx, row)
	if err != nil {
		return false, fmt.Errorf("claim row %s: %w", row.ID, err)
	}
	if !claimed {
		log.Printf("Row %s already claimed, skipping", row.ID)
		return false, nil
	}

	log.Printf("🎬 Processing topic: %s", row.Topic)
	if err := w.queue.MarkProcessing(ctx, row); err != nil {
		return false, fmt.Errorf("mark processing: %w", err)
	}

	content, url, err := w.produce(ctx, row)
	if err != nil {
		log.Printf("❌ Topic %q failed: %v", row.Topic, err)
		if markErr := w.queue.MarkError(ctx, row, err.Error()); markErr != nil {
			log.Printf("Failed to mark row %s as errored: %v", row.ID, markErr)
		}
		return true, nil
	}

	cells := sheets.ContentCells(content.Title, content.Description, content.Script)
	if err := w.queue.MarkDone(ctx, row, cells, url); err != nil {
		return true, fmt.Errorf("mark done: %w", err)
	}

	log.Printf("✅ Published %q: %s", row.Topic, url)
	return true, nil
}

// produce runs the generate, synthesize, render, upload sequence for one
// claimed row and returns the generated package and the published link.
func (w *Worker) produce(ctx context.Context, row *sheets.Row) (video.Content, string, error) {
	content, err := w.generator.Script(ctx, row.Topic)
	if err != nil {
		return video.Content{}, "", fmt.Errorf("generate script: %w", err)
	}

	jobID := row.ID
	if jobID == "" {
		jobID = uuid.NewString()
	}

	audioPath := filepath.Join(os.TempDir(), jobID+".mp3")
	defer os.Remove(audioPath)

	if err := w.speech.Synthesize(ctx, content.Script, audioPath); err != nil {
		return video.Content{}, "", fmt.Errorf("synthesize voiceover: %w", err)
	}

	outPath := filepath.Join(w.outputDir, jobID+".mp4")
	if err := w.pipeline.Render(content, audioPath, outPath); err != nil {
		return video.Content{}, "", fmt.Errorf("render clip: %w", err)
	}

	url, err := w.uploader.Upload(ctx, outPath, w.folderID)
	if err != nil {
		return video.Content{}, "", fmt.Errorf("upload clip: %w", err)
	}

	if w.store != nil {
		if _, err := w.store.UploadFile(ctx, outPath); err != nil {
			// Drive is the system of record; the bucket copy is best effort.
			log.Printf("S3 upload failed for %s: %v", outPath, err)
		}
	}

	return content, url, nil
}

// claim takes the distributed lock for a row. Without a Redis client the
// worker assumes it is the only consumer.
func (w *Worker) claim(ctx context.Context, row *sheets.Row) (bool, error) {
	if w.claims == nil {
		return true, nil
	}

	owner, _ := os.Hostname()
	if owner == "" {
		owner = uuid.NewString()
	}
	return w.claims.SetNX(ctx, claimKey(row), owner, config.ClaimTTL).Result()
}

func claimKey(row *sheets.Row) string {
	id := row.ID
	if id == "" {
		id = fmt.Sprintf("row-%d", row.Index)
	}
	return "shortforge:claim:" + id
}

// Start polls the queue on a fixed schedule until ctx is canceled. Each tick
// drains at most one row; overlapping ticks are prevented by the claim lock
// and the mutex.
func (w *Worker) Start(ctx context.Context) error {
	schedule := "@every " + config.QueuePollInterval.String()

	id, err := w.cron.AddFunc(schedule, func() {
		if !w.mu.TryLock() {
			log.Println("Previous run still in progress, skipping tick")
			return
		}
		defer w.mu.Unlock()

		if _, err := w.RunOnce(ctx); err != nil {
			log.Printf("Worker run error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	w.cronID = id
	w.cron.Start()
	log.Printf("Worker started with schedule: %s", schedule)

	<-ctx.Done()
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	return nil
}

// ReleaseClaim drops a row's lock early, for operators re-queueing a row.
func (w *Worker) ReleaseClaim(ctx context.Context, row *sheets.Row) error {
	if w.claims == nil {
		return nil
	}
	return w.claims.Del(ctx, claimKey(row)).Err()
}
