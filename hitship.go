// Package hitship is a client library for Measurement-Protocol-style
// analytics collectors. It records hits (pageviews, events, timings and
// so on) on an in-memory queue and ships them to the collector over HTTP,
// optionally batching several hits into one request.
//
// Example usage:
//
//	cfg := hitship.DefaultConfig()
//	cfg.TrackingID = "UA-000000-1"
//	v, err := hitship.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = v.Pageview(hitship.Pageview{Path: "/home", Title: "Home"})
//	res, err := v.Send(context.Background())
//	if err != nil {
//	    log.Printf("sent %d units, first failure: %v", res.Attempted, err)
//	}
package hitship

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/bft-labs/hitship/internal/batch"
	"github.com/bft-labs/hitship/internal/dispatch"
	"github.com/bft-labs/hitship/internal/hit"
	"github.com/bft-labs/hitship/internal/params"
	"github.com/bft-labs/hitship/internal/queue"
	"github.com/bft-labs/hitship/pkg/log"
)

// Result aggregates the outcome of one Send across all dispatch units.
type Result = dispatch.Result

// UnitError records the failure of a single dispatch unit.
type UnitError = dispatch.UnitError

// Visitor records hits for one tracked client and ships them to the
// collector. A Visitor and all views derived from it share one queue and
// one persistent-parameter store; identity and batching policy are fixed
// at construction.
type Visitor struct {
	cfg    Config
	policy batch.Policy

	queue      *queue.Queue
	persistent *paramStore

	// context holds defaults applied to hits recorded through this view
	// only. Each derived view owns its own context.
	context map[string]string

	dispatcher *dispatch.Dispatcher
	logger     log.Logger
	debug      bool
}

// New creates a root Visitor. cfg.TrackingID is required; a ClientID is
// generated when not supplied and is stable for the Visitor's lifetime.
func New(cfg Config, opts ...Option) (*Visitor, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ClientID == "" {
		cfg.ClientID = uuid.NewString()
	}

	o := defaultOptions(&http.Client{Timeout: cfg.HTTPTimeout})
	for _, opt := range opts {
		opt(&o)
	}

	return &Visitor{
		cfg:        cfg,
		policy:     batch.Policy{Enabled: cfg.EnableBatching, Size: cfg.BatchSize},
		queue:      queue.New(),
		persistent: newParamStore(),
		dispatcher: dispatch.New(o.httpClient, cfg.collectorURL(), cfg.Headers, o.logger),
		logger:     o.logger,
		debug:      o.debug,
	}, nil
}

// TrackingID returns the collector property id.
func (v *Visitor) TrackingID() string { return v.cfg.TrackingID }

// ClientID returns the client id, generated or supplied.
func (v *Visitor) ClientID() string { return v.cfg.ClientID }

// Pending returns the number of queued, not-yet-sent hits.
func (v *Visitor) Pending() int { return v.queue.Len() }

// Set stores a persistent parameter applied to every future hit recorded
// anywhere in this Visitor tree. Per-call parameters override persistent
// ones on collision.
func (v *Visitor) Set(key, value string) {
	v.persistent.set(key, value)
}

// Reset clears this view's context. The queue, identity and persistent
// parameters are untouched.
func (v *Visitor) Reset() {
	v.context = nil
}

// withContext derives a transient view sharing the queue and persistent
// parameters, with a fresh context merged from this view's context and
// the per-call parameters. The view applies defaults to the hit being
// built; it holds no state worth keeping afterwards.
func (v *Visitor) withContext(extra map[string]string) *Visitor {
	view := *v
	view.context = hit.Merge(v.context, extra)
	return &view
}

// track runs the enqueue pipeline: merge identity, persistent params,
// context and named fields in increasing priority; sanitize; translate;
// validate (diagnostic only); append to the shared queue.
func (v *Visitor) track(hitType string, fields map[string]string, extra map[string]string) {
	view := v.withContext(extra)

	base := map[string]string{
		"v":   protocolVersion,
		"tid": v.cfg.TrackingID,
		"cid": v.cfg.ClientID,
		"uid": v.cfg.UserID,
		"t":   hitType,
	}

	// Unset named fields mean "not supplied"; they must not shadow
	// caller-supplied parameters of the same name.
	named := params.Sanitize(hit.Merge(fields))

	h := hit.Merge(base, view.persistent.snapshot(), view.context, named)
	h = params.Sanitize(h)
	h = params.Translate(h)

	if v.debug {
		params.Check(h, v.logger)
		v.logger.Debug("hit queued",
			log.String("type", hitType),
			log.Int("pending", v.queue.Len()+1))
	}

	v.queue.Append(h)
}

// Send drains every queued hit, partitions them per the batching policy
// and posts all units concurrently. It reports how many units were
// attempted and any per-unit failures; the error is the first failure, or
// nil when every unit succeeded. An empty queue yields (empty Result,
// nil) without touching the network.
func (v *Visitor) Send(ctx context.Context) (Result, error) {
	hits := v.queue.DrainAll()
	units := batch.Plan(hits, v.policy)

	if v.debug {
		v.logger.Debug("sending",
			log.Int("hits", len(hits)),
			log.Int("units", len(units)))
	}

	res := v.dispatcher.Send(ctx, units)
	return res, res.Err()
}

// paramStore is the persistent-parameter map shared by every view of one
// Visitor tree.
type paramStore struct {
	mu sync.Mutex
	m  map[string]string
}

func newParamStore() *paramStore {
	return &paramStore{m: make(map[string]string)}
}

func (s *paramStore) set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *paramStore) snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}
