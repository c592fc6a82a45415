package cloud

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_Sign(t *testing.T) {
	s := NewSigner("sid-123", "secret")
	uri := "https://api.example.com/v1.1/tasks/p.mpp/outlineCodes/7"

	signed, err := s.Sign(uri)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(signed, uri+"?appSID=sid-123&signature="))

	// The signature is an HMAC-SHA1 of the URI including appSID.
	mac := hmac.New(sha1.New, []byte("secret"))
	mac.Write([]byte(uri + "?appSID=sid-123"))
	want := strings.TrimRight(base64.StdEncoding.EncodeToString(mac.Sum(nil)), "=")

	parsed, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, want, parsed.Query().Get("signature"))
}

func TestSigner_Deterministic(t *testing.T) {
	s := NewSigner("sid", "key")
	uri := "https://api.example.com/tasks/p.mpp/tasks?taskName=A&beforeTaskId=2"

	first, err := s.Sign(uri)
	require.NoError(t, err)
	second, err := s.Sign(uri)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "beforeTaskId=2&appSID=sid&signature=")
	assert.Equal(t, "https://api.example.com/tasks/p.mpp/tasks?taskName=A&beforeTaskId=2", uri)
}

func TestSigner_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		sid    string
		appKey string
	}{
		{name: "missing sid", appKey: "key"},
		{name: "missing key", sid: "sid"},
		{name: "missing both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSigner(tt.sid, tt.appKey).Sign("https://api.example.com/tasks/a.mpp/tasks")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAuthConfiguration))
		})
	}
}
