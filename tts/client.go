package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"shortforge/config"
)

const defaultEndpoint = "https://api.openai.com/v1/audio/speech"

// Client wraps the OpenAI speech endpoint, streaming synthesized MP3 audio
// to disk. Retryable failures (429 and 5xx) back off exponentially; this is
// the only layer in the system that retries, the rendering core never does.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	maxRetries int
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 3 * time.Minute},
		maxRetries: config.TTSMaxRetries,
	}
}

// Synthesize speaks text into an MP3 file at outPath.
func (c *Client) Synthesize(ctx context.Context, text, outPath string) error {
	payload, err := json.Marshal(map[string]string{
		"model":  config.TTSModel,
		"voice":  config.TTSVoice,
		"format": "mp3",
		"input":  text,
	})
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			if backoff > 30*time.Second {
				backoff = 30 * time.Second
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.request(ctx, payload, outPath)
		if err == nil {
			return nil
		}
		lastErr = err

		var retryable *retryableError
		if !errors.As(err, &retryable) {
			return err
		}
		log.Printf("TTS attempt %d/%d failed: %v", attempt, c.maxRetries, err)
	}

	return fmt.Errorf("speech synthesis failed after %d attempts: %w", c.maxRetries, lastErr)
}

func (c *Client) request(ctx context.Context, payload []byte, outPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &retryableError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case isRetryableStatus(resp.StatusCode):
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return &retryableError{err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return fmt.Errorf("speech synthesis rejected: status %d: %s", resp.StatusCode, body)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		// A truncated stream is worth retrying.
		return &retryableError{err: fmt.Errorf("stream audio: %w", err)}
	}
	return nil
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }
