package cloud

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultBaseURL is the product base URI of the document-processing API.
const DefaultBaseURL = "https://api.aspose.cloud/v1.1"

// Config contains configuration for the API client.
//
// A Config is copied by NewClient; changing it afterwards has no effect on
// clients already built from it.
type Config struct {
	// BaseURL is the product base URI every resource path is appended to.
	// Example: "https://api.aspose.cloud/v1.1"
	BaseURL string `json:"baseUrl"`

	// AppSID identifies the application. It is sent as the appSID query
	// parameter of every signed URI.
	AppSID string `json:"appSid"`

	// AppKey is the secret used to sign request URIs.
	AppKey string `json:"-"` // Don't marshal the signing key to JSON

	// TLSVerify controls TLS certificate verification
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests. Zero leaves the transport default in place.
	Timeout time.Duration `json:"timeout,omitempty"`

	// UserAgent is sent with every request.
	UserAgent string `json:"userAgent,omitempty"`

	// HTTPClient overrides the client built by NewHTTPClient, e.g. to wrap
	// it with tracing.
	HTTPClient *http.Client `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		TLSVerify: &tlsVerify,
		UserAgent: "taskcloud-go",
	}
}

// Validate checks if the configuration is valid. Missing credentials are not
// a validation failure; signing reports them as ErrAuthConfiguration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL,
			validation.Required,
			is.URL,
			validation.By(httpScheme),
		),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func httpScheme(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	return nil
}

// NewHTTPClient creates a configured HTTP client, or returns HTTPClient when
// one was supplied.
func (c *Config) NewHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
