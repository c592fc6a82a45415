package cloud

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

// WriteResult is the outcome of a write operation. Exactly one of Path and
// Message is set: Path when the mutated document was saved locally, Message
// when the server answered with something other than success.
type WriteResult struct {
	Path    string
	Message string
}

// Saved reports whether the document was fetched and saved.
func (r WriteResult) Saved() bool {
	return r.Path != ""
}

func (r WriteResult) String() string {
	if r.Saved() {
		return r.Path
	}
	return r.Message
}

// ValidateOutput inspects a write-mode response body. It returns "" when the
// command succeeded and the stored document should be fetched, and the
// server's message otherwise.
//
// Empty bodies and JSON envelopes with code 200 (or no code) are success.
// Other envelopes yield their Message, then Status, then the bare code.
// Anything that is not a JSON object is returned verbatim.
func ValidateOutput(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	if trimmed[0] != '{' {
		return string(raw)
	}

	var env struct {
		Code    *int   `json:"Code"`
		Status  string `json:"Status"`
		Message string `json:"Message"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return string(raw)
	}

	switch {
	case env.Code == nil || *env.Code == http.StatusOK:
		return ""
	case env.Message != "":
		return env.Message
	case env.Status != "":
		return env.Status
	default:
		return strconv.Itoa(*env.Code)
	}
}

// Mutated reports whether a write command changed the stored document: the
// server answered 2xx and the body passes ValidateOutput.
func Mutated(req *Request, resp *Response) bool {
	if req == nil || resp == nil || req.Method == http.MethodGet {
		return false
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false
	}
	return ValidateOutput(resp.Body) == ""
}
