// Package errs defines the error taxonomy shared across this module's
// packages, matching the three categories the protocol design calls for:
// a programmer-error class, a recoverable per-sender rejection, and a
// fatal internal-consistency failure.
package errs

import "errors"

var (
	// ErrCallerInvariant marks a violated precondition: an out-of-range
	// id, a threshold exceeding the party count, a duplicate sender, or
	// an operation invoked out of order. These are programmer bugs, not
	// protocol failures, and are never retried internally.
	ErrCallerInvariant = errors.New("pvss: caller invariant violated")

	// ErrShareRejected marks a share that failed Pedersen verification.
	// Recoverable at the protocol layer: the caller excludes the sender
	// and restarts, per the paper's fault model.
	ErrShareRejected = errors.New("pvss: share rejected")

	// ErrAggregationSelfCheck marks a post-aggregation verification
	// failure despite every individual input having verified. This
	// should never happen under honest participation; it is fatal.
	ErrAggregationSelfCheck = errors.New("pvss: aggregation self-check failed")
)
