package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometbft/sigverify/config"
	"github.com/cometbft/sigverify/verifier"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	cfg := config.DefaultConfig()
	assert.NotNil(cfg.Instrumentation)
	assert.Len(cfg.Chains, 2)

	// check the root dir stuff...
	cfg.SetRoot("/foo")
	assert.Equal("/foo/config/chains.toml", cfg.ChainsFilePath())

	cfg.ChainsFile = "/opt/chains.toml"
	assert.Equal("/opt/chains.toml", cfg.ChainsFilePath())
}

func TestConfigValidateBasic(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.ValidateBasic())

	cfg.Instrumentation.Prometheus = true
	cfg.Instrumentation.Namespace = ""
	err := cfg.ValidateBasic()
	require.Error(t, err)
	var inSection config.ErrInSection
	require.ErrorAs(t, err, &inSection)
	assert.Equal(t, "instrumentation", inSection.Section)
}

func TestBaseConfigValidateBasic(t *testing.T) {
	cfg := config.TestBaseConfig()
	require.NoError(t, cfg.ValidateBasic())

	// tamper with log format
	cfg.LogFormat = "invalid"
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrUnknownLogFormat)

	cfg = config.TestBaseConfig()
	cfg.LogLevel = ""
	require.ErrorIs(t, cfg.ValidateBasic(), config.ErrEmptyLogLevel)
}

func TestChainsValidateBasic(t *testing.T) {
	testcases := map[string]struct {
		chain   config.ChainConfig
		section string
		err     error
	}{
		"empty name": {
			chain:   config.ChainConfig{CoinType: verifier.CoinTypeEthereum},
			section: "chain.2",
			err:     config.ErrEmptyChainName,
		},
		"duplicate": {
			chain:   config.ChainConfig{Name: "ethereum", CoinType: verifier.CoinTypeEthereum},
			section: "chain.ethereum",
			err:     config.ErrDuplicateChain,
		},
		"unsupported coin type": {
			chain:   config.ChainConfig{Name: "bitcoin", CoinType: 0},
			section: "chain.bitcoin",
			err:     verifier.ErrUnsupportedCoinType{CoinType: 0},
		},
		"cosmos without prefix": {
			chain:   config.ChainConfig{Name: "osmosis-1", CoinType: verifier.CoinTypeCosmos},
			section: "chain.osmosis-1",
		},
		"bad encoding": {
			chain:   config.ChainConfig{Name: "sepolia", CoinType: verifier.CoinTypeEthereum, PubKeyEncoding: "base58"},
			section: "chain.sepolia",
		},
		"bad framing": {
			chain:   config.ChainConfig{Name: "sepolia", CoinType: verifier.CoinTypeEthereum, Framing: "typed_data"},
			section: "chain.sepolia",
			err:     verifier.ErrUnknownFraming,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Chains = append(cfg.Chains, tc.chain)

			err := cfg.ValidateBasic()
			require.Error(t, err)
			var inSection config.ErrInSection
			require.ErrorAs(t, err, &inSection)
			assert.Equal(t, tc.section, inSection.Section)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestChainLookup(t *testing.T) {
	cfg := config.DefaultConfig()

	cc, err := cfg.Chain("cosmoshub-4")
	require.NoError(t, err)
	assert.Equal(t, "cosmos", cc.Prefix)

	_, err = cfg.Chain("juno-1")
	assert.Equal(t, config.ErrUnknownChain{Name: "juno-1"}, err)
}

func TestChainVerifierConfig(t *testing.T) {
	for _, cc := range config.DefaultChains() {
		v, err := verifier.New(cc.VerifierConfig())
		require.NoError(t, err, cc.Name)
		assert.NotNil(t, v)
	}
}
