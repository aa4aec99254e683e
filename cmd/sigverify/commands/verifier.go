package commands

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/verifier"
)

var (
	promMetricsOnce sync.Once
	promMetrics     *verifier.Metrics
)

// loadVerifier builds the instrumented verifier of the named chain.
func loadVerifier(chain string) (crypto.Verifier, error) {
	cc, err := config.Chain(chain)
	if err != nil {
		return nil, err
	}
	v, err := verifier.New(cc.VerifierConfig())
	if err != nil {
		return nil, errors.Wrapf(err, "can't build verifier for chain %s", chain)
	}
	return verifier.NewInstrumented(cc.Name, v, logger, verifierMetrics()), nil
}

func verifierMetrics() *verifier.Metrics {
	if !config.Instrumentation.Prometheus {
		return verifier.NopMetrics()
	}
	// The counters register with the default registry, which allows a
	// single registration per process.
	promMetricsOnce.Do(func() {
		promMetrics = verifier.PrometheusMetrics(config.Instrumentation.Namespace)
	})
	return promMetrics
}
