package video

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"shortforge/config"
)

// Processor renders job files in bulk with bounded concurrency. Each job is
// independent; a failed job is logged and does not stop the batch.
type Processor struct {
	pipeline  *Pipeline
	outputDir string
}

func NewProcessor(profile Profile, outputDir string) (*Processor, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Processor{
		pipeline:  NewPipeline(profile),
		outputDir: outputDir,
	}, nil
}

// ProcessDirectory renders every *.json job file in dir.
func (p *Processor) ProcessDirectory(dir string) error {
	jobFiles, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("scan job files: %w", err)
	}
	if len(jobFiles) == 0 {
		log.Printf("No job files found in %s", dir)
		return nil
	}

	log.Printf("Found %d jobs to render", len(jobFiles))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, config.MaxConcurrentRenders)

	for i, jobFile := range jobFiles {
		wg.Add(1)
		go func(idx int, file string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			log.Printf("[%d/%d] Rendering %s", idx+1, len(jobFiles), filepath.Base(file))
			if err := p.ProcessFile(file); err != nil {
				log.Printf("Failed to render %s: %v", file, err)
			}
		}(i, jobFile)
	}

	wg.Wait()
	log.Println("All jobs processed")
	return nil
}

// ProcessFile reads one job file and renders it. A job file that does not
// parse is a caller-data problem and fails immediately.
func (p *Processor) ProcessFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read job: %w", err)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("malformed job input: %w", err)
	}

	// Audio and output paths are relative to the job file.
	if job.Audio != "" && !isURL(job.Audio) && !filepath.IsAbs(job.Audio) {
		job.Audio = filepath.Join(filepath.Dir(path), job.Audio)
	}
	if job.Output == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		job.Output = filepath.Join(p.outputDir, stem+".mp4")
	}

	return p.Process(job)
}

// Process renders a single job, fetching remote audio first if needed.
// Jobs arriving without an output path (API or queue submissions) get a
// generated name under the processor's output directory.
func (p *Processor) Process(job Job) error {
	if job.Audio == "" {
		return fmt.Errorf("job has no audio source")
	}
	if job.Output == "" {
		job.Output = filepath.Join(p.outputDir, uuid.NewString()+".mp4")
	}

	audioPath := job.Audio
	if isURL(job.Audio) {
		local := filepath.Join(os.TempDir(), filepath.Base(job.Output)+".audio.mp3")
		if err := downloadFile(job.Audio, local); err != nil {
			return fmt.Errorf("download audio: %w", err)
		}
		defer os.Remove(local)
		audioPath = local
	}

	if err := p.pipeline.Render(job.Content, audioPath, job.Output); err != nil {
		return err
	}
	log.Printf("Rendered %s", job.Output)
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func downloadFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download: status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
