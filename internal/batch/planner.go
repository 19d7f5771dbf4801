// Package batch partitions drained hits into dispatch units according to
// the batching policy.
package batch

import "github.com/bft-labs/hitship/internal/hit"

// Unit is a non-empty ordered group of hits sent in a single HTTP POST.
type Unit []hit.Hit

// Policy controls how queued hits are grouped before sending.
type Policy struct {
	// Enabled turns batching on. When off, every hit travels alone.
	Enabled bool

	// Size is the maximum number of hits per unit when batching is
	// enabled. Must be positive.
	Size int
}

// Plan partitions hits into units, preserving order within and across
// units. Every hit appears in exactly one unit; an empty input yields
// zero units, never an empty unit.
//
// With batching disabled each unit holds exactly one hit. With batching
// enabled units hold Size hits in FIFO order, except the final unit which
// holds the remainder.
func Plan(hits []hit.Hit, p Policy) []Unit {
	if len(hits) == 0 {
		return nil
	}

	size := 1
	if p.Enabled && p.Size > 0 {
		size = p.Size
	}

	units := make([]Unit, 0, (len(hits)+size-1)/size)
	for start := 0; start < len(hits); start += size {
		end := start + size
		if end > len(hits) {
			end = len(hits)
		}
		units = append(units, Unit(hits[start:end:end]))
	}
	return units
}
