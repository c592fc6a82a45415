package tasks

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a timestamp as the server writes it. Project dates usually carry
// no zone ("2024-03-01T08:00:00"); those are read as UTC.
//
// A value that is not a date leaves Time zero and is kept verbatim, so it
// is written back out unchanged.
type Date struct {
	time.Time

	raw json.RawMessage
}

// UnmarshalJSON accepts any layout dateparse understands. null and "" leave
// the date zero.
func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	d.raw = nil

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d.raw = append(json.RawMessage(nil), data...)
		return nil
	}
	if s == "" {
		return nil
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		d.raw = append(json.RawMessage(nil), data...)
		return nil
	}
	d.Time = t
	return nil
}

// Unparsed returns the value the server sent when it was not a date.
func (d Date) Unparsed() string {
	var s string
	if err := json.Unmarshal(d.raw, &s); err == nil {
		return s
	}
	return string(d.raw)
}

// MarshalJSON writes RFC 3339, the unparsed value, or null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	switch {
	case !d.IsZero():
		return json.Marshal(d.Format(time.RFC3339))
	case d.raw != nil:
		return d.raw, nil
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML writes RFC 3339, the unparsed value, or null for the zero date.
func (d Date) MarshalYAML() (interface{}, error) {
	switch {
	case !d.IsZero():
		return d.Format(time.RFC3339), nil
	case d.raw != nil:
		return d.Unparsed(), nil
	default:
		return nil, nil
	}
}
