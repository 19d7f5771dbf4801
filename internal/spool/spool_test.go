package spool

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/hitship"
	"github.com/bft-labs/hitship/pkg/log"
)

const spoolFile = `
[[hit]]
type = "pageview"
[hit.params]
documentPath = "/home"

[[hit]]
type = "event"
[hit.params]
eventCategory = "video"
eventAction = "play"
`

// collector is a fake endpoint counting the bodies it received.
type collector struct {
	mu     sync.Mutex
	bodies []string
	status int
}

func (c *collector) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.bodies = append(c.bodies, string(b))
		c.mu.Unlock()
		if c.status != 0 {
			w.WriteHeader(c.status)
		}
	}
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bodies)
}

func newTestShipper(t *testing.T, c *collector) (*Shipper, string) {
	t.Helper()

	srv := httptest.NewServer(c.handler())
	t.Cleanup(srv.Close)

	cfg := hitship.DefaultConfig()
	cfg.TrackingID = "UA-000000-1"
	cfg.Hostname = strings.TrimPrefix(srv.URL, "http://")
	cfg.Insecure = true

	v, err := hitship.New(cfg)
	if err != nil {
		t.Fatalf("new visitor: %v", err)
	}

	dir := t.TempDir()
	return New(dir, v, log.NewNoopLogger()), dir
}

func writeSpoolFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write spool file: %v", err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSpoolFile(t, dir, "hits.toml", spoolFile)

	hits, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Type != "pageview" || hits[0].Params["documentPath"] != "/home" {
		t.Fatalf("unexpected first hit: %+v", hits[0])
	}
	if hits[1].Type != "event" || hits[1].Params["eventAction"] != "play" {
		t.Fatalf("unexpected second hit: %+v", hits[1])
	}
}

func TestParseFileRejectsMissingType(t *testing.T) {
	dir := t.TempDir()
	path := writeSpoolFile(t, dir, "hits.toml", "[[hit]]\n[hit.params]\nx = \"1\"\n")

	if _, err := ParseFile(path); err == nil {
		t.Fatal("expected error for hit without type")
	}
}

func TestSweepShipsAndRemovesFiles(t *testing.T) {
	c := &collector{}
	s, dir := newTestShipper(t, c)

	path := writeSpoolFile(t, dir, "hits.toml", spoolFile)
	writeSpoolFile(t, dir, "notes.txt", "not a spool file")

	s.Sweep(context.Background())

	// Two hits, batching off: one POST per hit.
	if c.count() != 2 {
		t.Fatalf("expected 2 collector requests, got %d", c.count())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("shipped spool file must be removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatal("non-toml files must be left alone")
	}
}

func TestSweepKeepsFileOnFailure(t *testing.T) {
	c := &collector{status: http.StatusInternalServerError}
	s, dir := newTestShipper(t, c)

	path := writeSpoolFile(t, dir, "hits.toml", spoolFile)
	s.Sweep(context.Background())

	if _, err := os.Stat(path); err != nil {
		t.Fatal("failed spool file must stay for the next sweep")
	}
}

func TestRunShipsDroppedFile(t *testing.T) {
	c := &collector{}
	s, dir := newTestShipper(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Give the watcher a moment to attach, then drop a file.
	time.Sleep(50 * time.Millisecond)
	path := writeSpoolFile(t, dir, "hits.toml", spoolFile)

	deadline := time.After(5 * time.Second)
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		select {
		case <-deadline:
			t.Fatal("spool file was not shipped in time")
		case <-time.After(20 * time.Millisecond):
		}
	}

	if c.count() == 0 {
		t.Fatal("collector received no requests")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run returned error: %v", err)
	}
}
