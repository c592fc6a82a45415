package base

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/hashicorp-forge/taskcloud/internal/config"
	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/events"
	"github.com/hashicorp-forge/taskcloud/pkg/journal"
	"github.com/hashicorp-forge/taskcloud/pkg/kafka"
	"github.com/hashicorp-forge/taskcloud/pkg/storage"
	"github.com/hashicorp-forge/taskcloud/pkg/tasks"
)

// CommonFlags are accepted by every command that talks to the API.
type CommonFlags struct {
	Config    string
	OutputDir string
	Document  string
	Format    string
	LogLevel  string
}

// Register adds the common flags to f.
func (c *CommonFlags) Register(f *FlagSet) {
	f.StringVar(&c.Config, "config", "",
		"Path to a taskcloud HCL config file. Optional when the\n"+
			"TASKCLOUD_* environment variables are set.")
	f.StringVar(&c.OutputDir, "output-dir", "",
		"[TASKCLOUD_OUTPUT_DIR] Directory mutated documents are saved to.")
	f.StringVar(&c.Document, "document", "",
		"(Required) Name of the stored project document, e.g. plan.mpp.")
	f.StringVar(&c.Format, "format", FormatJSON,
		"Output format: json or yaml.")
	f.StringVar(&c.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn or error.")
}

// Validate checks flag values that do not depend on the config file.
func (c *CommonFlags) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadConfig loads the config file and applies flag overrides.
func (c *CommonFlags) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(c.Config)
	if err != nil {
		return nil, err
	}
	if c.OutputDir != "" {
		cfg.Output.Dir = c.OutputDir
	}
	return cfg, nil
}

// Session is everything a command needs to work on one document.
type Session struct {
	Config   *config.Config
	Client   *cloud.Client
	Document *tasks.Document

	log     hclog.Logger
	closers []func() error
}

// NewSession loads configuration and wires the client, its hooks and the
// output sink for the document named by flags.
func NewSession(ctx context.Context, flags *CommonFlags, log hclog.Logger) (*Session, error) {
	if flags.LogLevel != "" {
		log.SetLevel(hclog.LevelFromString(flags.LogLevel))
	}

	cfg, err := flags.LoadConfig()
	if err != nil {
		return nil, err
	}

	s := &Session{Config: cfg, log: log}
	if err := s.init(ctx, flags.Document); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) init(ctx context.Context, document string) error {
	cfg := s.Config

	var hooks []cloud.CommandHook

	if cfg.Journal != nil {
		j, err := journal.Open(*cfg.Journal, s.log)
		if err != nil {
			return fmt.Errorf("error opening command journal: %w", err)
		}
		s.closers = append(s.closers, j.Close)
		hooks = append(hooks, j)
	}

	if cfg.Events != nil {
		producer, err := kafka.NewProducer(kafka.GetBrokers(cfg.Events))
		if err != nil {
			return fmt.Errorf("error creating event producer: %w", err)
		}
		s.closers = append(s.closers, func() error {
			producer.Close()
			return nil
		})
		hooks = append(hooks, events.NewPublisher(producer, kafka.GetTopic(cfg.Events), s.log))
	}

	cc := cfg.Cloud()
	if cfg.TracingEnabled() {
		tracer.Start(tracer.WithService(cfg.Tracing.Service))
		s.closers = append(s.closers, func() error {
			tracer.Stop()
			return nil
		})
		cc.HTTPClient = traceClient(cc.NewHTTPClient(), cfg.Tracing.Service)
	}

	client, err := cloud.NewClient(cc, cloud.WithLogger(s.log), cloud.WithHooks(hooks...))
	if err != nil {
		return err
	}
	s.Client = client

	var sink storage.Sink
	if cfg.S3 != nil {
		sink, err = storage.NewS3Sink(ctx, cfg.S3, s.log)
		if err != nil {
			return fmt.Errorf("error creating S3 sink: %w", err)
		}
	} else {
		sink = storage.NewLocalSink(nil, cfg.Output.Dir, s.log)
	}

	saver := storage.NewMaterializer(storage.NewFolder(client), sink, s.log)
	s.Document = tasks.NewDocument(client, saver, document, s.log)
	return nil
}

// Close releases everything the session opened.
func (s *Session) Close() error {
	var result *multierror.Error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	s.closers = nil
	return result.ErrorOrNil()
}

// traceClient wraps client so every request is a span. Span tags carry the
// URI without its query so signatures are never recorded.
func traceClient(client *http.Client, service string) *http.Client {
	return httptrace.WrapClient(client,
		httptrace.RTWithServiceName(service),
		httptrace.RTWithResourceNamer(func(req *http.Request) string {
			return req.Method + " " + req.URL.Path
		}),
		httptrace.WithBefore(func(req *http.Request, span ddtrace.Span) {
			span.SetTag("http.url", redactQuery(req.URL.String()))
		}),
	)
}

func redactQuery(uri string) string {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		return uri[:i]
	}
	return uri
}
