package verifier

import (
	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/libs/log"
)

// Instrumented wraps a crypto.Verifier, logging and counting every call.
// It adds no state of its own and is safe for concurrent use when the
// wrapped verifier, logger and metrics are.
type Instrumented struct {
	chain   string
	next    crypto.Verifier
	logger  log.Logger
	metrics *Metrics
}

var _ crypto.Verifier = (*Instrumented)(nil)

// NewInstrumented wraps next. chain labels the metrics and log lines.
// A nil logger or metrics disables that side.
func NewInstrumented(chain string, next crypto.Verifier, logger log.Logger, metrics *Metrics) *Instrumented {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &Instrumented{
		chain:   chain,
		next:    next,
		logger:  logger.With("module", "verifier", "chain", chain),
		metrics: metrics,
	}
}

// VerifySignature implements crypto.Verifier.
func (v *Instrumented) VerifySignature(pubKey string, msg []byte, sig string) (bool, error) {
	ok, err := v.next.VerifySignature(pubKey, msg, sig)
	switch {
	case err != nil:
		v.metrics.Verifications.With("chain", v.chain, "result", ResultError).Add(1)
		v.logger.Error("signature verification failed", "err", err)
	case ok:
		v.metrics.Verifications.With("chain", v.chain, "result", ResultValid).Add(1)
		v.logger.Debug("signature verified", "msg_len", len(msg))
	default:
		v.metrics.Verifications.With("chain", v.chain, "result", ResultInvalid).Add(1)
		v.logger.Debug("signature rejected", "msg_len", len(msg))
	}
	return ok, err
}

// GenerateAddress implements crypto.Verifier.
func (v *Instrumented) GenerateAddress(pubKey string) (crypto.Address, error) {
	addr, err := v.next.GenerateAddress(pubKey)
	if err != nil {
		v.metrics.AddressDerivations.With("chain", v.chain, "result", ResultError).Add(1)
		v.logger.Error("address derivation failed", "err", err)
		return "", err
	}
	v.metrics.AddressDerivations.With("chain", v.chain, "result", ResultValid).Add(1)
	v.logger.Debug("address derived", "address", addr)
	return addr, nil
}
