// Package dispatch turns planned units into concurrent HTTP POSTs against
// the collector and aggregates their outcomes.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/bft-labs/hitship/internal/batch"
	"github.com/bft-labs/hitship/pkg/log"
)

// HTTPClient abstracts HTTP request execution for testing and custom
// transports. The standard *http.Client satisfies this interface.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher issues one POST per dispatch unit against a fixed collector
// URL. The URL is resolved once at construction from the batching policy,
// since the policy is fixed for the visitor's lifetime.
type Dispatcher struct {
	client  HTTPClient
	url     string
	headers map[string]string
	logger  log.Logger
}

// New creates a dispatcher posting to url with the given extra headers
// attached to every request.
func New(client HTTPClient, url string, headers map[string]string, logger log.Logger) *Dispatcher {
	return &Dispatcher{
		client:  client,
		url:     url,
		headers: headers,
		logger:  logger,
	}
}

// Send posts every unit concurrently and waits for all of them. A failed
// unit never cancels the others: each unit runs to completion and counts
// toward Result.Attempted regardless of outcome. Zero units yields an
// immediate empty Result with no network activity.
func (d *Dispatcher) Send(ctx context.Context, units []batch.Unit) Result {
	if len(units) == 0 {
		return Result{}
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		res Result
	)

	for i, u := range units {
		wg.Add(1)
		go func(idx int, unit batch.Unit) {
			defer wg.Done()
			err := d.post(ctx, unit)

			mu.Lock()
			res.Attempted++
			if err != nil {
				res.Failures = append(res.Failures, UnitError{Unit: idx, Err: err})
			}
			mu.Unlock()
		}(i, u)
	}
	wg.Wait()

	// Completion order is network-dependent; report failures by unit index.
	sort.Slice(res.Failures, func(i, j int) bool {
		return res.Failures[i].Unit < res.Failures[j].Unit
	})

	d.logger.Debug("send complete",
		log.Int("units", res.Attempted),
		log.Int("failed", len(res.Failures)))

	return res
}

func (d *Dispatcher) post(ctx context.Context, unit batch.Unit) error {
	body := EncodeUnit(unit)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range d.headers {
		req.Header.Set(k, v)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("collector returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
