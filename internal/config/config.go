package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/database"
	"github.com/hashicorp-forge/taskcloud/pkg/kafka"
	"github.com/hashicorp-forge/taskcloud/pkg/storage"
)

// Environment variables that override the configuration file.
const (
	EnvBaseURL   = "TASKCLOUD_BASE_URL"
	EnvAppSID    = "TASKCLOUD_APP_SID"
	EnvAppKey    = "TASKCLOUD_APP_KEY"
	EnvOutputDir = "TASKCLOUD_OUTPUT_DIR"
)

// DefaultOutputDir is where mutated documents are saved when nothing else
// is configured.
const DefaultOutputDir = "output"

// Config is the taskcloud configuration file.
type Config struct {
	// BaseURL is the product base URI.
	BaseURL string `hcl:"base_url,optional"`

	// AppSID and AppKey sign every request.
	AppSID string `hcl:"app_sid,optional"`
	AppKey string `hcl:"app_key,optional"`

	// Timeout for API requests, as a Go duration ("30s").
	Timeout string `hcl:"timeout,optional"`

	// TLSVerify can be set to false for self-signed test endpoints.
	TLSVerify *bool `hcl:"tls_verify,optional"`

	// Output configures where mutated documents are saved. S3, when set,
	// takes precedence over the local directory.
	Output *Output           `hcl:"output,block"`
	S3     *storage.S3Config `hcl:"s3,block"`

	// Journal records every command in a database.
	Journal *database.Config `hcl:"journal,block"`

	// Events publishes a record for every mutation.
	Events *kafka.Config `hcl:"events,block"`

	// Tracing enables Datadog tracing of API requests.
	Tracing *Tracing `hcl:"tracing,block"`
}

// Output configures the local output directory.
type Output struct {
	Dir string `hcl:"dir,optional"`
}

// Tracing configures Datadog tracing.
type Tracing struct {
	Enabled bool   `hcl:"enabled,optional"`
	Service string `hcl:"service,optional"`
}

// Default returns a Config with defaults applied and no file loaded.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile decodes the HCL file at path, applies environment overrides and
// defaults, and validates the result. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAppSID); v != "" {
		c.AppSID = v
	}
	if v := os.Getenv(EnvAppKey); v != "" {
		c.AppKey = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		if c.Output == nil {
			c.Output = &Output{}
		}
		c.Output.Dir = v
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = cloud.DefaultBaseURL
	}
	if c.Output == nil {
		c.Output = &Output{}
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.S3 != nil {
		c.S3.SetDefaults()
	}
	if c.Journal != nil && c.Journal.Driver == "" {
		c.Journal.Driver = database.DriverSQLite
	}
	if c.Tracing != nil && c.Tracing.Service == "" {
		c.Tracing.Service = "taskcloud"
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := c.timeout(); err != nil {
		result = multierror.Append(result, err)
	}
	cc := c.Cloud()
	if err := cc.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("api: %w", err))
	}
	if c.S3 != nil {
		if err := c.S3.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("s3: %w", err))
		}
	}
	if c.Journal != nil {
		if err := validation.ValidateStruct(c.Journal,
			validation.Field(&c.Journal.Driver, validation.In(database.DriverSQLite, database.DriverPostgres)),
			validation.Field(&c.Journal.DSN, validation.Required),
		); err != nil {
			result = multierror.Append(result, fmt.Errorf("journal: %w", err))
		}
	}

	return result.ErrorOrNil()
}

func (c *Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, errors.New("timeout must not be negative")
	}
	return d, nil
}

// Cloud returns the API client configuration.
func (c *Config) Cloud() cloud.Config {
	cc := *cloud.DefaultConfig()
	cc.BaseURL = c.BaseURL
	cc.AppSID = c.AppSID
	cc.AppKey = c.AppKey
	if c.TLSVerify != nil {
		cc.TLSVerify = c.TLSVerify
	}
	if d, err := c.timeout(); err == nil {
		cc.Timeout = d
	}
	return cc
}

// TracingEnabled reports whether Datadog tracing is on.
func (c *Config) TracingEnabled() bool {
	return c.Tracing != nil && c.Tracing.Enabled
}
