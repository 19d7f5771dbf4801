package hitship

import (
	"net/http"

	"github.com/bft-labs/hitship/internal/dispatch"
	"github.com/bft-labs/hitship/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = dispatch.HTTPClient

// Logger is the interface for structured logging.
type Logger = log.Logger

// Option configures optional behavior of a Visitor.
type Option func(*options)

// options holds the optional configuration for a Visitor.
type options struct {
	httpClient HTTPClient
	logger     log.Logger
	debug      bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions(client *http.Client) options {
	return options{
		httpClient: client,
		logger:     log.NewNoopLogger(),
	}
}

// WithHTTPClient sets a custom HTTP client for collector communication.
// If not provided, a default client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebug enables diagnostic output: parameter validation warnings and
// enqueue/send traces. Diagnostics never alter hits and never block
// enqueue.
func WithDebug() Option {
	return func(o *options) {
		o.debug = true
	}
}
