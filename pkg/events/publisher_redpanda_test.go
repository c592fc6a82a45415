//go:build integration

package events

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/kmsg"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/kafka"
)

// createKafkaTopic creates a Kafka topic for testing.
func createKafkaTopic(t *testing.T, ctx context.Context, brokers string, topicName string) {
	adminClient, err := kgo.NewClient(
		kgo.SeedBrokers(brokers),
	)
	require.NoError(t, err)
	defer adminClient.Close()

	createTopicsReq := kmsg.NewCreateTopicsRequest()
	createTopicsReq.Topics = []kmsg.CreateTopicsRequestTopic{
		{
			Topic:             topicName,
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}
	_, err = adminClient.Request(ctx, &createTopicsReq)
	require.NoError(t, err)

	// Wait for topic to be ready
	time.Sleep(1 * time.Second)
}

func TestPublisher_Redpanda(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "test",
		Level: hclog.Debug,
	})

	redpandaContainer, err := redpanda.Run(ctx,
		"docker.redpanda.com/redpandadata/redpanda:latest",
	)
	require.NoError(t, err)
	defer func() {
		_ = redpandaContainer.Terminate(ctx)
	}()

	brokers, err := redpandaContainer.KafkaSeedBroker(ctx)
	require.NoError(t, err)

	topic := "test.document-mutations"
	createKafkaTopic(t, ctx, brokers, topic)

	producer, err := kafka.NewProducer([]string{brokers})
	require.NoError(t, err)
	defer producer.Close()

	p := NewPublisher(producer, topic, logger)
	req := &cloud.Request{
		Method:    http.MethodPost,
		URI:       "https://api.example.com/tasks/a.mpp/tasks?taskName=x&beforeTaskId=1",
		Document:  "a.mpp",
		RequestID: "req-1",
	}
	p.AfterCommand(ctx, req, &cloud.Response{StatusCode: http.StatusOK}, nil)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(brokers),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup("test-consumer"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var received *DocumentMutated
	for received == nil {
		fetches := consumer.PollFetches(fetchCtx)
		if fetches.IsClientClosed() || fetchCtx.Err() != nil {
			break
		}
		if err := fetches.Err(); err != nil {
			t.Fatalf("fetch error: %v", err)
		}

		fetches.EachRecord(func(record *kgo.Record) {
			var event DocumentMutated
			require.NoError(t, json.Unmarshal(record.Value, &event))
			assert.Equal(t, "a.mpp", string(record.Key))
			received = &event
		})
	}

	require.NotNil(t, received, "no message received from Redpanda")
	assert.Equal(t, "a.mpp", received.Document)
	assert.Equal(t, http.MethodPost, received.Method)
	assert.Equal(t, "req-1", received.RequestID)
}
