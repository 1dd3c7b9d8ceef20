package config

import "time"

// Processing constants
const (
	// MaxConcurrentRenders limits the number of clips rendered simultaneously
	MaxConcurrentRenders = 2

	// QueuePollInterval is how often the orchestrator polls the topics sheet
	QueuePollInterval = 5 * time.Minute

	// ClaimTTL is how long a queue-row claim lock is held before it expires
	ClaimTTL = 30 * time.Minute
)

// Directory constants
const (
	// InputDir is the directory containing render job files
	InputDir = "input"

	// OutputDir is the directory for rendered clips
	OutputDir = "output"
)

// Generation constants
const (
	// GenerationModel is the chat model used to write scripts
	GenerationModel = "command-r-plus-08-2024"

	// GenerationTemperature keeps scripts varied but on-message
	GenerationTemperature = 0.7

	// TTSModel is the speech synthesis model
	TTSModel = "gpt-4o-mini-tts"

	// TTSVoice is the speech synthesis voice
	TTSVoice = "alloy"

	// TTSMaxRetries bounds retry attempts on retryable TTS failures
	TTSMaxRetries = 6
)

// Upload constants
const (
	// VideoMIMEType is the content type for rendered clips
	VideoMIMEType = "video/mp4"
)
