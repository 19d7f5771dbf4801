// Package spool ships hits dropped into a spool directory. A producer
// writes a TOML hit file into the directory; the shipper notices it,
// enqueues its hits on the visitor, sends them and removes the file on
// success. Files whose send fails stay in place for the next sweep.
package spool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/hitship"
	"github.com/bft-labs/hitship/pkg/log"
)

// DefaultDebounceDelay is how long the shipper waits after a file event
// before sweeping, so a writer can finish the file first.
const DefaultDebounceDelay = 100 * time.Millisecond

// File is the on-disk shape of a spool file: one or more [[hit]] tables.
type File struct {
	Hits []Entry `toml:"hit"`
}

// Entry is one hit in a spool file.
type Entry struct {
	// Type is the hit type ("pageview", "event", ...).
	Type string `toml:"type"`

	// Params are the hit parameters, user-facing or wire names.
	Params map[string]string `toml:"params"`
}

// Shipper watches a spool directory and ships hit files as they appear.
type Shipper struct {
	dir      string
	visitor  *hitship.Visitor
	logger   log.Logger
	debounce time.Duration
}

// New creates a shipper for the given directory and visitor.
func New(dir string, visitor *hitship.Visitor, logger log.Logger) *Shipper {
	return &Shipper{
		dir:      dir,
		visitor:  visitor,
		logger:   logger,
		debounce: DefaultDebounceDelay,
	}
}

// Run watches the spool directory until the context is cancelled. Files
// already present at startup are shipped immediately.
func (s *Shipper) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}

	s.logger.Info("spool shipper started", log.String("dir", s.dir))

	// Ship whatever is already spooled.
	s.Sweep(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".toml") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
				fire = timer.C
			} else {
				timer.Reset(s.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			s.Sweep(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("spool watcher error", log.Err(err))
		}
	}
}

// Sweep ships every spool file currently in the directory. Each file is
// enqueued and sent on its own; a file is removed only when every unit of
// its send succeeded.
func (s *Shipper) Sweep(ctx context.Context) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Error("read spool dir", log.Err(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := s.shipFile(ctx, path); err != nil {
			s.logger.Warn("spool file not shipped",
				log.String("file", entry.Name()),
				log.Err(err))
		}
	}
}

func (s *Shipper) shipFile(ctx context.Context, path string) error {
	hits, err := ParseFile(path)
	if err != nil {
		return err
	}

	for _, h := range hits {
		if err := s.visitor.Track(h.Type, h.Params); err != nil {
			return err
		}
	}

	res, err := s.visitor.Send(ctx)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}

	s.logger.Debug("spool file shipped",
		log.String("file", filepath.Base(path)),
		log.Int("hits", len(hits)),
		log.Int("units", res.Attempted))

	return os.Remove(path)
}

// ParseFile reads a spool file and returns its hit entries.
func ParseFile(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, h := range f.Hits {
		if h.Type == "" {
			return nil, fmt.Errorf("%s: hit %d has no type", path, i)
		}
	}

	return f.Hits, nil
}
