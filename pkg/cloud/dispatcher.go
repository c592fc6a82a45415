package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// RequestIDHeader carries the per-command request ID.
const RequestIDHeader = "X-Request-ID"

// Request is a single signed command.
type Request struct {
	Method string

	// URI is the unsigned URI. It is safe to log and persist.
	URI string

	// SignedURI is what goes on the wire.
	SignedURI string

	Body        []byte
	ContentType string

	// Document is the stored document name the command targets, if any.
	Document string

	RequestID string
}

// Target is the document a write leaves behind: the fileName query
// parameter when the command saves under a new name, Document otherwise.
func (r *Request) Target() string {
	if u, err := url.Parse(r.URI); err == nil {
		if name := u.Query().Get("fileName"); name != "" {
			return name
		}
	}
	return r.Document
}

// Response is the raw outcome of a command.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
	Elapsed    time.Duration
}

// Dispatcher sends signed commands.
type Dispatcher interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// HTTPDispatcher sends commands over HTTP. It never retries.
type HTTPDispatcher struct {
	client    *http.Client
	userAgent string
	logger    hclog.Logger
}

// NewHTTPDispatcher creates a dispatcher on top of client.
func NewHTTPDispatcher(client *http.Client, userAgent string, logger hclog.Logger) *HTTPDispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &HTTPDispatcher{
		client:    client,
		userAgent: userAgent,
		logger:    logger.Named("dispatcher"),
	}
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Send issues one HTTP request for req.
func (d *HTTPDispatcher) Send(ctx context.Context, req *Request) (*Response, error) {
	if !allowedMethods[req.Method] {
		return nil, &ArgumentError{Field: "method"}
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.SignedURI, bodyReader)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URI: req.URI, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, req.RequestID)
	if d.userAgent != "" {
		httpReq.Header.Set("User-Agent", d.userAgent)
	}
	if req.Body != nil {
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := d.client.Do(httpReq)
	if err != nil {
		// *url.Error repeats the signed URI; keep only the cause.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		d.logger.Error("command failed",
			"method", req.Method,
			"uri", req.URI,
			"request_id", req.RequestID,
			"error", err,
		)
		return nil, &TransportError{Method: req.Method, URI: req.URI, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Method:     req.Method,
			URI:        req.URI,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response: %w", err),
		}
	}
	elapsed := time.Since(start)

	d.logger.Debug("command completed",
		"method", req.Method,
		"uri", req.URI,
		"request_id", req.RequestID,
		"status", resp.StatusCode,
		"elapsed", elapsed,
	)

	// A structured envelope is the interpreter's business even when the
	// status code is an error.
	if (resp.StatusCode < 200 || resp.StatusCode >= 300) && !isEnvelope(body) {
		return nil, &TransportError{
			Method:     req.Method,
			URI:        req.URI,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		RequestID:  req.RequestID,
		Elapsed:    elapsed,
	}, nil
}

func isEnvelope(body []byte) bool {
	var head struct {
		Code   *int    `json:"Code"`
		Status *string `json:"Status"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return false
	}
	return head.Code != nil || head.Status != nil
}
