package cloud

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// Signer appends the application SID and an HMAC-SHA1 signature to URIs.
type Signer struct {
	appSID string
	appKey string
}

// NewSigner creates a signer for the given credentials.
func NewSigner(appSID, appKey string) *Signer {
	return &Signer{appSID: appSID, appKey: appKey}
}

// Sign returns uri with appSID and signature query parameters appended.
// The result depends only on uri and the signer's credentials.
func (s *Signer) Sign(uri string) (string, error) {
	if s.appSID == "" || s.appKey == "" {
		return "", fmt.Errorf("%w: app SID and app key are required", ErrAuthConfiguration)
	}

	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	unsigned := uri + sep + "appSID=" + url.QueryEscape(s.appSID)

	mac := hmac.New(sha1.New, []byte(s.appKey))
	mac.Write([]byte(unsigned))
	signature := strings.TrimRight(base64.StdEncoding.EncodeToString(mac.Sum(nil)), "=")

	return unsigned + "&signature=" + url.QueryEscape(signature), nil
}
