package config

import (
	"os"
	"strings"
)

// KafkaBrokers parses the Kafka broker list from the environment.
func KafkaBrokers() []string {
	brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if brokers == "" {
		brokers = "localhost:9093"
	}
	return strings.Split(brokers, ",")
}

// KafkaTopic returns the render-job topic name.
func KafkaTopic() string {
	topic := os.Getenv("KAFKA_TOPIC_RENDER_JOBS")
	if topic == "" {
		topic = "render-jobs"
	}
	return topic
}

// KafkaGroupID returns the consumer group for the render service.
func KafkaGroupID() string {
	groupID := os.Getenv("KAFKA_CONSUMER_GROUP_ID")
	if groupID == "" {
		groupID = "shortforge-render"
	}
	return groupID
}

// RedisAddr returns the Redis address used for queue-row claim locks.
func RedisAddr() string {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

// SheetID returns the spreadsheet holding the topics queue.
func SheetID() string {
	return os.Getenv("SHEET_ID")
}

// SheetTab returns the queue tab name.
func SheetTab() string {
	tab := os.Getenv("SHEET_TAB")
	if tab == "" {
		tab = "Topics"
	}
	return tab
}

// DriveFolderID returns the Drive folder receiving rendered clips.
func DriveFolderID() string {
	return os.Getenv("GDRIVE_FOLDER_ID")
}

// S3Bucket returns the bucket receiving rendered clips; empty disables S3.
func S3Bucket() string {
	return os.Getenv("S3_BUCKET")
}

// ServiceAccountFile returns the path to the Google service-account key
// used for Sheets and Drive access.
func ServiceAccountFile() string {
	path := os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")
	if path == "" {
		path = "service-account.json"
	}
	return path
}

// CohereAPIKey returns the key for the script generation API.
func CohereAPIKey() string {
	return os.Getenv("COHERE_API_KEY")
}

// OpenAIAPIKey returns the key for the speech synthesis API.
func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
