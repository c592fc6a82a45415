package kafka

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Config describes where mutation events go.
type Config struct {
	Brokers []string `hcl:"brokers,optional"`
	Topic   string   `hcl:"topic,optional"`
}

// DefaultTopic is the topic mutation events are published to when none is
// configured.
const DefaultTopic = "taskcloud.document-mutations"

// GetBrokers returns the Kafka/Redpanda broker addresses.
// It checks environment variables first, then falls back to config, then default.
func GetBrokers(cfg *Config) []string {
	// Try environment variable first
	if brokers := os.Getenv("REDPANDA_BROKERS"); brokers != "" {
		return strings.Split(brokers, ",")
	}

	// Fall back to config
	if cfg != nil && len(cfg.Brokers) > 0 {
		return cfg.Brokers
	}

	// Default
	return []string{"localhost:19092"}
}

// GetTopic returns the mutation event topic name.
// It checks environment variables first, then falls back to config, then default.
func GetTopic(cfg *Config) string {
	if topic := os.Getenv("TASKCLOUD_EVENTS_TOPIC"); topic != "" {
		return topic
	}

	if cfg != nil && cfg.Topic != "" {
		return cfg.Topic
	}

	return DefaultTopic
}

// NewProducer creates a Kafka client tuned for synchronous, durable produces.
func NewProducer(brokers []string, opts ...kgo.Opt) (*kgo.Client, error) {
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),

		// Producer durability settings
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.GzipCompression()),

		// Short retries; a CLI invocation should not hang on a dead broker.
		kgo.RequestRetries(3),
		kgo.RetryTimeout(10 * time.Second),
		kgo.ProducerLinger(0),
	}

	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return client, nil
}
