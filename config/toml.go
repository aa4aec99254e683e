package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	_ "embed"

	"github.com/BurntSushi/toml"

	cmtos "github.com/cometbft/sigverify/internal/os"
)

// DefaultDirPerm is the default permissions used when creating directories.
const DefaultDirPerm = 0o700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root and config directories if they don't exist,
// writes the default config and chains files if missing, and panics if it
// fails.
func EnsureRoot(rootDir string) {
	if err := cmtos.EnsureDir(rootDir, DefaultDirPerm); err != nil {
		panic(err.Error())
	}
	if err := cmtos.EnsureDir(filepath.Join(rootDir, DefaultConfigDir), DefaultDirPerm); err != nil {
		panic(err.Error())
	}

	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)
	if !cmtos.FileExists(configFilePath) {
		WriteConfigFile(configFilePath, DefaultConfig())
	}

	chainsFilePath := filepath.Join(rootDir, defaultChainsFilePath)
	if !cmtos.FileExists(chainsFilePath) {
		if err := WriteChainsFile(chainsFilePath, DefaultChains()); err != nil {
			panic(err.Error())
		}
	}
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *Config) {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		panic(err)
	}

	cmtos.MustWriteFile(configFilePath, buffer.Bytes(), 0o644)
}

// chainsFile is the document layout of the chains file.
type chainsFile struct {
	Chains []ChainConfig `toml:"chain"`
}

// WriteChainsFile encodes chains as [[chain]] tables into path.
func WriteChainsFile(path string, chains []ChainConfig) error {
	var buffer bytes.Buffer
	buffer.WriteString(chainsFileHeader)
	if err := toml.NewEncoder(&buffer).Encode(chainsFile{Chains: chains}); err != nil {
		return fmt.Errorf("encoding chains: %w", err)
	}
	return cmtos.WriteFile(path, buffer.Bytes(), 0o644)
}

// LoadChainsFile decodes the [[chain]] tables of path. Unknown keys are an
// error so that typos don't silently fall back to defaults.
func LoadChainsFile(path string) ([]ChainConfig, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chains file: %w", err)
	}
	var doc chainsFile
	md, err := toml.Decode(string(bz), &doc)
	if err != nil {
		return nil, fmt.Errorf("decoding chains file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("chains file %s: unknown key %q", path, undecoded[0].String())
	}
	if len(doc.Chains) == 0 {
		return nil, ErrNoChains
	}
	return doc.Chains, nil
}

const chainsFileHeader = `# Chains known to sigverify.
#
# coin_type selects the signature scheme: 118 (Cosmos SDK, secp256k1 over
# SHA-256 with bech32 addresses) or 60 (Ethereum, recoverable secp256k1 over
# Keccak-256 with 0x hex addresses).
#
# pub_key_encoding and signature_encoding are "hex" or "base64".
# framing is "raw" or "personal_message" and only applies to coin type 60.

`

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go.
//
//go:embed config.toml.tpl
var defaultConfigTemplate string
