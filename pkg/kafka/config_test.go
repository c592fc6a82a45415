package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBrokers(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("REDPANDA_BROKERS", "")
		assert.Equal(t, []string{"localhost:19092"}, GetBrokers(nil))
		assert.Equal(t, []string{"localhost:19092"}, GetBrokers(&Config{}))
	})

	t.Run("config", func(t *testing.T) {
		t.Setenv("REDPANDA_BROKERS", "")
		assert.Equal(t, []string{"b1:9092", "b2:9092"}, GetBrokers(&Config{Brokers: []string{"b1:9092", "b2:9092"}}))
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("REDPANDA_BROKERS", "e1:9092,e2:9092")
		assert.Equal(t, []string{"e1:9092", "e2:9092"}, GetBrokers(&Config{Brokers: []string{"b1:9092"}}))
	})
}

func TestGetTopic(t *testing.T) {
	t.Setenv("TASKCLOUD_EVENTS_TOPIC", "")
	assert.Equal(t, DefaultTopic, GetTopic(nil))
	assert.Equal(t, "custom", GetTopic(&Config{Topic: "custom"}))

	t.Setenv("TASKCLOUD_EVENTS_TOPIC", "from-env")
	assert.Equal(t, "from-env", GetTopic(&Config{Topic: "custom"}))
}

func TestNewProducer(t *testing.T) {
	// kgo does not dial until the first request.
	client, err := NewProducer([]string{"127.0.0.1:1"})
	require.NoError(t, err)
	client.Close()
}
