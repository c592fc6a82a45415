package storage

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/go-hclog"
)

// S3Config configures an S3-compatible output sink.
type S3Config struct {
	Endpoint  string `hcl:"endpoint,optional"`   // Custom endpoint (e.g. MinIO); empty means AWS
	Region    string `hcl:"region"`              // AWS region (e.g., "us-west-2")
	Bucket    string `hcl:"bucket"`              // Bucket name
	Prefix    string `hcl:"prefix,optional"`     // Optional key prefix (e.g., "projects/")
	AccessKey string `hcl:"access_key,optional"` // Access key ID
	SecretKey string `hcl:"secret_key,optional"` // Secret access key

	ContentType           string `hcl:"content_type,optional"`            // Default: application/vnd.ms-project
	RequestTimeoutSeconds int    `hcl:"request_timeout_seconds,optional"` // Default: 30
	InsecureSkipVerify    bool   `hcl:"insecure_skip_verify,optional"`    // Testing only
}

// Validate validates the S3 configuration
func (c *S3Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must be non-negative, got: %d", c.RequestTimeoutSeconds)
	}
	return nil
}

// SetDefaults sets default values for optional configuration fields
func (c *S3Config) SetDefaults() {
	if c.ContentType == "" {
		c.ContentType = "application/vnd.ms-project"
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 30
	}
}

// PutObjectAPI is the subset of the S3 client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads documents to an S3 bucket.
type S3Sink struct {
	client PutObjectAPI
	cfg    *S3Config
	logger hclog.Logger
}

// NewS3Sink creates an S3 sink, building the S3 client from cfg.
func NewS3Sink(ctx context.Context, cfg *S3Config, logger hclog.Logger) (*S3Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid S3 configuration: %w", err)
	}
	cfg.SetDefaults()

	awsCfg, err := createAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Force path-style addressing for MinIO
			o.UsePathStyle = true
		}
	})

	return NewS3SinkWithClient(client, cfg, logger), nil
}

// NewS3SinkWithClient creates an S3 sink on top of an existing client.
func NewS3SinkWithClient(client PutObjectAPI, cfg *S3Config, logger hclog.Logger) *S3Sink {
	cfg.SetDefaults()
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &S3Sink{
		client: client,
		cfg:    cfg,
		logger: logger.Named("s3-sink"),
	}
}

func createAWSConfig(ctx context.Context, cfg *S3Config) (aws.Config, error) {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.InsecureSkipVerify,
			},
		},
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithHTTPClient(httpClient),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

// objectKey returns the key name is stored under.
func (s *S3Sink) objectKey(name string) string {
	if s.cfg.Prefix == "" {
		return name
	}
	return path.Join(s.cfg.Prefix, name)
}

// Save uploads r as <prefix>/<name> and returns its s3:// location.
func (s *S3Sink) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	// Buffer so the SDK gets a seekable body for checksums.
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	key := s.objectKey(name)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(s.cfg.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object to S3: %w", err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key)
	s.logger.Debug("uploaded document", "location", location, "size", len(data))
	return location, nil
}
