package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
}

func (f *fakeProducer) ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		f.records = append(f.records, r)
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

func TestPublisher_PublishesMutations(t *testing.T) {
	producer := &fakeProducer{}
	p := NewPublisher(producer, "mutations", nil)
	p.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

	req := &cloud.Request{
		Method:    http.MethodDelete,
		URI:       "https://api.example.com/tasks/a.mpp/tasks/3",
		SignedURI: "https://api.example.com/tasks/a.mpp/tasks/3?appSID=sid&signature=s",
		Document:  "a.mpp",
		RequestID: "req-1",
	}
	p.BeforeCommand(context.Background(), req)
	p.AfterCommand(context.Background(), req, &cloud.Response{StatusCode: http.StatusOK}, nil)

	require.Len(t, producer.records, 1)
	record := producer.records[0]
	assert.Equal(t, "mutations", record.Topic)
	assert.Equal(t, "a.mpp", string(record.Key))
	require.Len(t, record.Headers, 2)
	assert.Equal(t, EventTypeDocumentMutated, string(record.Headers[0].Value))

	var event DocumentMutated
	require.NoError(t, json.Unmarshal(record.Value, &event))
	assert.Equal(t, "a.mpp", event.Document)
	assert.Equal(t, http.MethodDelete, event.Method)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, req.URI, event.URI)
	assert.Equal(t, http.StatusOK, event.StatusCode)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), event.OccurredAt)
	assert.NotContains(t, string(record.Value), "signature")
}

func TestPublisher_SkipsNonMutations(t *testing.T) {
	tests := []struct {
		name   string
		method string
		resp   *cloud.Response
		err    error
	}{
		{"read", http.MethodGet, &cloud.Response{StatusCode: http.StatusOK}, nil},
		{"envelope failure", http.MethodPost, &cloud.Response{StatusCode: http.StatusBadRequest}, nil},
		{"transport failure", http.MethodDelete, nil, errors.New("connection refused")},
		{"rejected with plain text", http.MethodDelete, &cloud.Response{StatusCode: http.StatusOK, Body: []byte("Link index out of range")}, nil},
		{"rejected with envelope", http.MethodPost, &cloud.Response{StatusCode: http.StatusOK, Body: []byte(`{"Code":400,"Message":"Task with id 5 not found"}`)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			producer := &fakeProducer{}
			p := NewPublisher(producer, "mutations", nil)

			req := &cloud.Request{Method: tt.method, URI: "u", Document: "a.mpp"}
			p.AfterCommand(context.Background(), req, tt.resp, tt.err)
			assert.Empty(t, producer.records)
		})
	}
}

func TestPublisher_KeysRenamedWritesByNewName(t *testing.T) {
	producer := &fakeProducer{}
	p := NewPublisher(producer, "mutations", nil)

	req := &cloud.Request{
		Method:    http.MethodPost,
		URI:       "https://api.example.com/tasks/a.mpp/tasks?taskName=T&fileName=b.mpp",
		Document:  "a.mpp",
		RequestID: "req-3",
	}
	p.AfterCommand(context.Background(), req, &cloud.Response{StatusCode: http.StatusOK, Body: []byte(`{"Code":200}`)}, nil)

	require.Len(t, producer.records, 1)
	assert.Equal(t, "b.mpp", string(producer.records[0].Key))

	var event DocumentMutated
	require.NoError(t, json.Unmarshal(producer.records[0].Value, &event))
	assert.Equal(t, "b.mpp", event.Document)
}

func TestPublisher_LogsProduceFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Debug})

	producer := &fakeProducer{err: errors.New("broker down")}
	p := NewPublisher(producer, "mutations", logger)

	req := &cloud.Request{Method: http.MethodPost, URI: "u", Document: "a.mpp", RequestID: "req-2"}
	p.AfterCommand(context.Background(), req, &cloud.Response{StatusCode: http.StatusOK}, nil)

	assert.Len(t, producer.records, 1)
	assert.Contains(t, buf.String(), "failed to publish mutation event")
	assert.Contains(t, buf.String(), "broker down")
}
