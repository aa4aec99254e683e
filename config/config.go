package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cometbft/sigverify/crypto/encoding"
	"github.com/cometbft/sigverify/verifier"
)

const (
	// LogFormatPlain is a format for colored text.
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output.
	LogFormatJSON = "json"

	// DefaultLogLevel defines a default log level as INFO.
	DefaultLogLevel = "info"

	DefaultSigverifyDir = ".sigverify"
	DefaultConfigDir    = "config"

	DefaultConfigFileName = "config.toml"
	DefaultChainsFileName = "chains.toml"
)

var (
	defaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
	defaultChainsFilePath = filepath.Join(DefaultConfigDir, DefaultChainsFileName)
)

// Config defines the top level configuration for sigverify.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`

	// Chains is loaded from ChainsFile, not from config.toml.
	Chains []ChainConfig `mapstructure:"-"`
}

// DefaultConfig returns a default configuration with the Cosmos Hub and
// Ethereum mainnet chains.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
		Chains:          DefaultChains(),
	}
}

// TestConfig returns a configuration that can be used for testing.
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		Instrumentation: TestInstrumentationConfig(),
		Chains:          DefaultChains(),
	}
}

// SetRoot sets the RootDir for all Config structs.
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.Instrumentation.ValidateBasic(); err != nil {
		return ErrInSection{Section: "instrumentation", Err: err}
	}
	seen := make(map[string]struct{}, len(cfg.Chains))
	for i, cc := range cfg.Chains {
		section := fmt.Sprintf("chain.%d", i)
		if cc.Name != "" {
			section = "chain." + cc.Name
		}
		if err := cc.ValidateBasic(); err != nil {
			return ErrInSection{Section: section, Err: err}
		}
		if _, ok := seen[cc.Name]; ok {
			return ErrInSection{Section: section, Err: ErrDuplicateChain}
		}
		seen[cc.Name] = struct{}{}
	}
	return nil
}

// Chain returns the chain named name.
func (cfg *Config) Chain(name string) (ChainConfig, error) {
	for _, cc := range cfg.Chains {
		if cc.Name == name {
			return cc, nil
		}
	}
	return ChainConfig{}, ErrUnknownChain{Name: name}
}

// -----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration for sigverify.
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// LogColors defines whether plain logs are colored.
	LogColors bool `mapstructure:"log_colors"`

	// Path to the TOML file listing the chains
	ChainsFile string `mapstructure:"chains_file"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel:   DefaultLogLevel,
		LogFormat:  LogFormatPlain,
		LogColors:  true,
		ChainsFile: defaultChainsFilePath,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.LogColors = false
	return cfg
}

// ChainsFilePath returns the full path to the chains file.
func (cfg BaseConfig) ChainsFilePath() string {
	return rootify(cfg.ChainsFile, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}
	if cfg.LogLevel == "" {
		return ErrEmptyLogLevel
	}
	return nil
}

// -----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, verification and address derivation counters are
	// registered with the Prometheus default registry.
	Prometheus bool `mapstructure:"prometheus"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace"`
}

// DefaultInstrumentationConfig returns a default configuration for metrics
// reporting.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus: false,
		Namespace:  "sigverify",
	}
}

// TestInstrumentationConfig returns a default configuration for metrics
// reporting.
func TestInstrumentationConfig() *InstrumentationConfig {
	return DefaultInstrumentationConfig()
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.Prometheus && cfg.Namespace == "" {
		return errors.New("namespace can't be empty when prometheus is enabled")
	}
	return nil
}

// -----------------------------------------------------------------------------
// ChainConfig

// ChainConfig is one [[chain]] table of the chains file.
type ChainConfig struct {
	Name              string `toml:"name"`
	CoinType          uint32 `toml:"coin_type"`
	Prefix            string `toml:"prefix,omitempty"`
	PubKeyEncoding    string `toml:"pub_key_encoding,omitempty"`
	SignatureEncoding string `toml:"signature_encoding,omitempty"`
	Framing           string `toml:"framing,omitempty"`
}

// DefaultChains returns the chains written by init.
func DefaultChains() []ChainConfig {
	return []ChainConfig{
		{
			Name:              "cosmoshub-4",
			CoinType:          verifier.CoinTypeCosmos,
			Prefix:            "cosmos",
			PubKeyEncoding:    string(encoding.Base64),
			SignatureEncoding: string(encoding.Hex),
		},
		{
			Name:              "ethereum",
			CoinType:          verifier.CoinTypeEthereum,
			PubKeyEncoding:    string(encoding.Hex),
			SignatureEncoding: string(encoding.Hex),
			Framing:           string(verifier.FramingRaw),
		},
	}
}

// VerifierConfig converts cc to the form verifier.New takes.
func (cc ChainConfig) VerifierConfig() verifier.ChainConfig {
	return verifier.ChainConfig{
		Name:              cc.Name,
		CoinType:          cc.CoinType,
		Prefix:            cc.Prefix,
		PubKeyEncoding:    encoding.Encoding(cc.PubKeyEncoding),
		SignatureEncoding: encoding.Encoding(cc.SignatureEncoding),
		Framing:           verifier.Framing(cc.Framing),
	}
}

// ValidateBasic checks that a verifier can be built for the chain.
func (cc ChainConfig) ValidateBasic() error {
	if cc.Name == "" {
		return ErrEmptyChainName
	}
	_, err := verifier.New(cc.VerifierConfig())
	return err
}

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
