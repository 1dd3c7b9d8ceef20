package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"shortforge/config"
	"shortforge/video"
)

const systemPreamble = `You write short-form YouTube Shorts scripts for Canadian personal finance and tax topics.
Style: clear, confident, neutral, non-clickbaity, no personal advice, include a brief disclaimer.
Target length: 60-75 seconds spoken (~140-180 words).`

// Generator produces a content package for a topic via the Cohere chat API.
type Generator struct {
	client *cohereclient.Client
	model  string
}

func NewGenerator(apiKey string) *Generator {
	httpClient := &http.Client{Timeout: 60 * time.Second}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &Generator{client: client, model: config.GenerationModel}
}

// Script asks the model for a strict-JSON shorts package and decodes it.
func (g *Generator) Script(ctx context.Context, topic string) (video.Content, error) {
	prompt := fmt.Sprintf(`Create a YouTube Short package for this topic:

TOPIC: %s

Return STRICT JSON with keys:
youtube_title (max 80 chars),
youtube_description (max 500 chars),
script (140-180 words, spoken voiceover, include a 1-sentence disclaimer at end).`, topic)

	model := g.model
	preamble := systemPreamble
	temperature := float64(config.GenerationTemperature)

	resp, err := g.client.Chat(ctx, &cohere.ChatRequest{
		Message:     prompt,
		Model:       &model,
		Preamble:    &preamble,
		Temperature: &temperature,
	})
	if err != nil {
		return video.Content{}, fmt.Errorf("generation request: %w", err)
	}

	var content video.Content
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Text)), &content); err != nil {
		return video.Content{}, fmt.Errorf("decode generated package: %w", err)
	}
	if strings.TrimSpace(content.Script) == "" {
		return video.Content{}, fmt.Errorf("generated package has no script")
	}
	return content, nil
}

// stripCodeFence removes a markdown code fence the model sometimes wraps
// its JSON in.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.Trim(s, "`")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
