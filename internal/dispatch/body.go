package dispatch

import (
	"net/url"
	"strings"

	"github.com/bft-labs/hitship/internal/batch"
	"github.com/bft-labs/hitship/internal/hit"
)

// EncodeHit serializes one hit as a percent-encoded query string with
// keys in sorted order.
func EncodeHit(h hit.Hit) string {
	values := make(url.Values, len(h))
	for k, v := range h {
		values.Set(k, v)
	}
	return values.Encode()
}

// EncodeUnit serializes a unit as one request body: each hit encoded as a
// query string, hits joined by newline.
func EncodeUnit(u batch.Unit) string {
	lines := make([]string, len(u))
	for i, h := range u {
		lines[i] = EncodeHit(h)
	}
	return strings.Join(lines, "\n")
}
