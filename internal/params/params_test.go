package params

import (
	"testing"

	"github.com/bft-labs/hitship/internal/hit"
	"github.com/bft-labs/hitship/pkg/log"
)

// captureLogger records warning messages and fields for assertions.
type captureLogger struct {
	warns  []string
	fields [][]log.Field
}

func (c *captureLogger) Debug(msg string, fields ...log.Field) {}
func (c *captureLogger) Info(msg string, fields ...log.Field)  {}
func (c *captureLogger) Error(msg string, fields ...log.Field) {}
func (c *captureLogger) Warn(msg string, fields ...log.Field) {
	c.warns = append(c.warns, msg)
	c.fields = append(c.fields, fields)
}

func TestTranslateRenamesKnownKeys(t *testing.T) {
	in := hit.Hit{
		"documentPath":  "/home",
		"documentTitle": "Home",
		"eventCategory": "video",
	}
	out := Translate(in)

	expected := hit.Hit{"dp": "/home", "dt": "Home", "ec": "video"}
	if len(out) != len(expected) {
		t.Fatalf("expected %d keys, got %v", len(expected), out)
	}
	for k, v := range expected {
		if out[k] != v {
			t.Fatalf("expected %s=%q, got %q", k, v, out[k])
		}
	}
}

func TestTranslatePassesUnknownKeysThrough(t *testing.T) {
	in := hit.Hit{"dp": "/home", "first": "123", "cd3": "red"}
	out := Translate(in)

	for k, v := range in {
		if out[k] != v {
			t.Fatalf("key %s not passed through: got %q", k, out[k])
		}
	}
	if len(out) != len(in) {
		t.Fatalf("translate dropped or added keys: %v", out)
	}
}

func TestTranslateDoesNotMutateInput(t *testing.T) {
	in := hit.Hit{"documentPath": "/home"}
	_ = Translate(in)

	if _, ok := in["dp"]; ok {
		t.Fatal("translate mutated its input")
	}
	if in["documentPath"] != "/home" {
		t.Fatal("translate removed the original key")
	}
}

func TestTranslationTableIsInjective(t *testing.T) {
	seen := map[string]string{}
	for from, to := range translations {
		if prev, ok := seen[to]; ok {
			t.Fatalf("wire key %q produced by both %q and %q", to, prev, from)
		}
		seen[to] = from
	}
}

func TestSanitizeDropsEmptyValues(t *testing.T) {
	in := hit.Hit{"x": "", "y": "", "z": "v"}
	out := Sanitize(in)

	if len(out) != 1 || out["z"] != "v" {
		t.Fatalf("expected only z to survive, got %v", out)
	}
}

func TestCheckWarnsOnUnsupportedKeys(t *testing.T) {
	logger := &captureLogger{}
	Check(hit.Hit{
		"dp":        "/home",
		"cd12":      "red",
		"cm7":       "3",
		"bogusness": "x",
	}, logger)

	if len(logger.warns) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(logger.warns), logger.warns)
	}
	if logger.fields[0][0].Value != "bogusness" {
		t.Fatalf("warning names the wrong key: %v", logger.fields[0])
	}
}

func TestCheckNeverMutates(t *testing.T) {
	h := hit.Hit{"nonsense": "1", "dp": "/x"}
	Check(h, &captureLogger{})

	if len(h) != 2 || h["nonsense"] != "1" {
		t.Fatalf("check altered the hit: %v", h)
	}
}
