package verifier

import (
	"github.com/go-kit/kit/metrics"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "verifier"
)

// Result label values.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of signature verifications, labeled by chain and result
	// (valid, invalid or error).
	Verifications metrics.Counter `metrics_labels:"chain, result"`
	// Number of address derivations, labeled by chain and result
	// (valid or error).
	AddressDerivations metrics.Counter `metrics_labels:"chain, result"`
}
