package queue

import (
	"sync"
	"testing"

	"github.com/bft-labs/hitship/internal/hit"
)

func mkHit(id string) hit.Hit {
	return hit.Hit{"z": id}
}

func TestAppendPreservesOrder(t *testing.T) {
	q := New()
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		q.Append(mkHit(id))
	}

	if q.Len() != len(ids) {
		t.Fatalf("expected %d queued hits, got %d", len(ids), q.Len())
	}

	out := q.DrainAll()
	for i, id := range ids {
		if out[i]["z"] != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, out[i]["z"])
		}
	}
}

func TestDrainPartial(t *testing.T) {
	q := New()
	for _, id := range []string{"a", "b", "c"} {
		q.Append(mkHit(id))
	}

	out := q.Drain(2)
	if len(out) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(out))
	}
	if out[0]["z"] != "a" || out[1]["z"] != "b" {
		t.Fatalf("drain did not take from the head: %v", out)
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 hit left, got %d", q.Len())
	}

	rest := q.Drain(10)
	if len(rest) != 1 || rest[0]["z"] != "c" {
		t.Fatalf("expected remaining hit c, got %v", rest)
	}
}

func TestDrainEmpty(t *testing.T) {
	q := New()
	if out := q.Drain(5); out != nil {
		t.Fatalf("expected nil from empty drain, got %v", out)
	}
	if out := q.DrainAll(); len(out) != 0 {
		t.Fatalf("expected empty DrainAll, got %v", out)
	}
}

func TestDrainAllDetachesFromLaterAppends(t *testing.T) {
	q := New()
	q.Append(mkHit("a"))

	out := q.DrainAll()
	q.Append(mkHit("b"))

	if len(out) != 1 {
		t.Fatalf("drained set grew after a later append: %v", out)
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 queued hit after drain, got %d", q.Len())
	}
}

func TestConcurrentAppend(t *testing.T) {
	q := New()

	var wg sync.WaitGroup
	const n = 50
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Append(mkHit("x"))
		}()
	}
	wg.Wait()

	if q.Len() != n {
		t.Fatalf("expected %d hits, got %d", n, q.Len())
	}
}
