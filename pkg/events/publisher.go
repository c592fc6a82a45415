package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// Producer is the part of *kgo.Client the publisher uses.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Publisher emits a DocumentMutated event for every write the server
// accepted. It is a cloud.CommandHook; publish failures are logged and
// never reach the caller of the command.
type Publisher struct {
	producer Producer
	topic    string
	logger   hclog.Logger
	now      func() time.Time
}

var _ cloud.CommandHook = (*Publisher)(nil)

// NewPublisher creates a publisher writing to topic.
func NewPublisher(producer Producer, topic string, logger hclog.Logger) *Publisher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.Named("events"),
		now:      time.Now,
	}
}

// BeforeCommand does nothing.
func (p *Publisher) BeforeCommand(ctx context.Context, req *cloud.Request) {}

// AfterCommand publishes the event if the command mutated a document.
func (p *Publisher) AfterCommand(ctx context.Context, req *cloud.Request, resp *cloud.Response, err error) {
	if err != nil || !cloud.Mutated(req, resp) {
		return
	}

	event := DocumentMutated{
		ID:         uuid.New(),
		RequestID:  req.RequestID,
		Document:   req.Target(),
		Method:     req.Method,
		URI:        req.URI,
		StatusCode: resp.StatusCode,
		OccurredAt: p.now().UTC(),
	}

	if err := p.publish(ctx, event); err != nil {
		p.logger.Error("failed to publish mutation event",
			"document", event.Document,
			"request_id", event.RequestID,
			"error", err,
		)
	}
}

func (p *Publisher) publish(ctx context.Context, event DocumentMutated) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Keyed by document so events for one document stay ordered.
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Document),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(EventTypeDocumentMutated)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	if err := p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return err
	}

	p.logger.Debug("published mutation event",
		"document", event.Document,
		"method", event.Method,
		"topic", p.topic,
	)
	return nil
}
