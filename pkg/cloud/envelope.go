package cloud

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// EnvelopeHeader is the part every JSON envelope shares.
type EnvelopeHeader struct {
	Code   int    `json:"Code"`
	Status string `json:"Status,omitempty"`
}

// Header returns h. Response schemas embed EnvelopeHeader to satisfy
// Enveloped.
func (h EnvelopeHeader) Header() EnvelopeHeader {
	return h
}

// Enveloped is implemented by every read-mode response schema.
type Enveloped interface {
	Header() EnvelopeHeader
}

// DecodeEnvelope unmarshals a read-mode response body into env.
func DecodeEnvelope(raw []byte, env Enveloped) error {
	if err := json.Unmarshal(raw, env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	return nil
}

// PayloadField returns the key member of a JSON envelope exactly as the
// server sent it, or nil when body is not an object or has no such member.
func PayloadField(body []byte, key string) json.RawMessage {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil
	}
	return members[key]
}

// Result is the outcome of a read operation: either the payload (Code 200)
// or the code and status the server answered with instead.
//
// The server reports "not found" and other failures with the same envelope,
// so a Result that is not OK does not say which one happened.
type Result[T any] struct {
	Value  T
	Code   int
	Status string

	// Raw is the payload as the server sent it, including fields Value
	// does not model.
	Raw json.RawMessage
}

// NewResult builds a Result. The payload is dropped unless the code is 200.
func NewResult[T any](value T, h EnvelopeHeader) Result[T] {
	if h.Code != http.StatusOK {
		var zero T
		value = zero
	}
	return Result[T]{Value: value, Code: h.Code, Status: h.Status}
}

// WithRaw attaches the unparsed payload. It is dropped unless the result is
// OK, like Value.
func (r Result[T]) WithRaw(raw json.RawMessage) Result[T] {
	if r.OK() {
		r.Raw = raw
	}
	return r
}

// OK reports whether the envelope code was 200.
func (r Result[T]) OK() bool {
	return r.Code == http.StatusOK
}

// Get returns the payload, or an *EnvelopeError wrapping ErrNotFoundOrError.
func (r Result[T]) Get() (T, error) {
	if !r.OK() {
		var zero T
		return zero, &EnvelopeError{Code: r.Code, Status: r.Status}
	}
	return r.Value, nil
}
