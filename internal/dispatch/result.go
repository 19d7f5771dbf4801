package dispatch

import "fmt"

// UnitError records the failure of a single dispatch unit.
type UnitError struct {
	// Unit is the zero-based index of the unit in the planned sequence.
	Unit int

	// Err is the transport or collector error for that unit.
	Err error
}

// Error implements the error interface.
func (e UnitError) Error() string {
	return fmt.Sprintf("unit %d: %v", e.Unit, e.Err)
}

// Unwrap returns the underlying error.
func (e UnitError) Unwrap() error {
	return e.Err
}

// Result aggregates the outcome of one send. Every planned unit runs to
// completion and counts toward Attempted whether or not other units fail;
// callers distinguish partial from total failure by inspecting Failures.
type Result struct {
	// Attempted is the number of units processed, success or failure.
	Attempted int

	// Failures holds one entry per failed unit, ordered by unit index.
	Failures []UnitError
}

// Err returns the first failure, or nil if every unit succeeded. It
// preserves the single-error view for callers that do not need per-unit
// detail.
func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return r.Failures[0]
}

// OK reports whether every unit succeeded.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}
