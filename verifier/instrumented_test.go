package verifier_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometbft/sigverify/internal/test"
	"github.com/cometbft/sigverify/libs/log"
	"github.com/cometbft/sigverify/verifier"
)

// countingCounter records the total per label set.
type countingCounter struct {
	mtx    *sync.Mutex
	totals map[string]float64
	lvs    []string
}

func newCountingCounter() *countingCounter {
	return &countingCounter{mtx: &sync.Mutex{}, totals: map[string]float64{}}
}

func (c *countingCounter) With(labelValues ...string) metrics.Counter {
	return &countingCounter{mtx: c.mtx, totals: c.totals, lvs: append(append([]string(nil), c.lvs...), labelValues...)}
}

func (c *countingCounter) Add(delta float64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.totals[strings.Join(c.lvs, ",")] += delta
}

func (c *countingCounter) get(lvs ...string) float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.totals[strings.Join(lvs, ",")]
}

func TestInstrumented(t *testing.T) {
	verifications, derivations := newCountingCounter(), newCountingCounter()
	m := &verifier.Metrics{Verifications: verifications, AddressDerivations: derivations}

	var buf bytes.Buffer
	logger := log.NewFilter(log.NewJSONLoggerNoTS(&buf), log.AllowError())
	v := verifier.NewInstrumented("mainnet", newEthereum(t), logger, m)

	priv := test.PrivKeyFromSecret("instrumented")
	pub := hex.EncodeToString(test.EthereumPubKey(priv))
	sig := hex.EncodeToString(test.EthereumSign(priv, test.CanonicalMessage))

	ok, err := v.VerifySignature(pub, test.CanonicalMessage, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifySignature(pub, test.OtherMessage, sig)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = v.VerifySignature("nothex", test.CanonicalMessage, sig)
	require.Error(t, err)

	addr, err := v.GenerateAddress(hex.EncodeToString(test.EthereumPubKey(test.MustHex(test.EthereumPrivKeyHex))))
	require.NoError(t, err)
	assert.Equal(t, test.EthereumAddress, addr.String())

	_, err = v.GenerateAddress("")
	require.Error(t, err)

	assert.Equal(t, 1.0, verifications.get("chain", "mainnet", "result", verifier.ResultValid))
	assert.Equal(t, 1.0, verifications.get("chain", "mainnet", "result", verifier.ResultInvalid))
	assert.Equal(t, 1.0, verifications.get("chain", "mainnet", "result", verifier.ResultError))
	assert.Equal(t, 1.0, derivations.get("chain", "mainnet", "result", verifier.ResultValid))
	assert.Equal(t, 1.0, derivations.get("chain", "mainnet", "result", verifier.ResultError))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"level":"ERROR"`), out)
	assert.Contains(t, out, `"chain":"mainnet"`)
	assert.NotContains(t, out, "signature verified")
}

func TestInstrumentedDefaults(t *testing.T) {
	v := verifier.NewInstrumented("cosmoshub-4", newCosmos(t, "cosmos"), nil, nil)
	addr, err := v.GenerateAddress(test.CosmosPubKeyBase64)
	require.NoError(t, err)
	assert.Equal(t, test.CosmosAddress, addr.String())
}
