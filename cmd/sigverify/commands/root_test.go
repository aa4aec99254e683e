package commands

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/cometbft/sigverify/config"
	"github.com/cometbft/sigverify/internal/test"
	"github.com/cometbft/sigverify/libs/cli"
	"github.com/cometbft/sigverify/version"
)

type result struct {
	out      string
	exitCode int
	err      error
}

// clearConfig resets viper and the package level state between runs.
func clearConfig() {
	viper.Reset()
	config = cfg.DefaultConfig()
	resetChains = false
	verbose = false
}

// prepare new rootCmd
func testRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               RootCmd.Use,
		PersistentPreRunE: RootCmd.PersistentPreRunE,
	}
	registerFlagsRootCmd(rootCmd)
	rootCmd.AddCommand(
		NewInitFilesCmd(),
		NewVerifyCmd(),
		NewBatchCmd(),
		NewAddressCmd(),
		NewChainsCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}

func run(t *testing.T, home string, env map[string]string, args ...string) result {
	t.Helper()
	clearConfig()

	rootCmd := testRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	var res result
	cmd := cli.PrepareBaseCmd(rootCmd, "SIGVERIFY", home)
	cmd.Exit = func(code int) { res.exitCode = code }

	args = append([]string{rootCmd.Use}, args...)
	res.err = cli.RunWithArgs(cmd, args, env)
	res.out = out.String()
	return res
}

func TestInit(t *testing.T) {
	home := t.TempDir()

	res := run(t, home, nil, "init")
	require.NoError(t, res.err)

	for _, f := range []string{cfg.DefaultConfigFileName, cfg.DefaultChainsFileName} {
		_, err := os.Stat(filepath.Join(home, cfg.DefaultConfigDir, f))
		assert.NoError(t, err, f)
	}
}

func TestInitResetChains(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, run(t, home, nil, "init").err)

	chainsPath := filepath.Join(home, cfg.DefaultConfigDir, cfg.DefaultChainsFileName)
	custom := []cfg.ChainConfig{{Name: "osmosis-1", CoinType: 118, Prefix: "osmo"}}
	require.NoError(t, cfg.WriteChainsFile(chainsPath, custom))

	require.NoError(t, run(t, home, nil, "init").err)
	chains, err := cfg.LoadChainsFile(chainsPath)
	require.NoError(t, err)
	assert.Equal(t, custom, chains)

	require.NoError(t, run(t, home, nil, "init", "--reset-chains").err)
	chains, err = cfg.LoadChainsFile(chainsPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultChains(), chains)
}

func TestHomeFromEnv(t *testing.T) {
	home := t.TempDir()
	envHome := filepath.Join(t.TempDir(), "env")

	res := run(t, home, map[string]string{"SIGVERIFY_HOME": envHome}, "init")
	require.NoError(t, res.err)

	_, err := os.Stat(filepath.Join(envHome, cfg.DefaultConfigDir, cfg.DefaultChainsFileName))
	assert.NoError(t, err)
}

func TestChains(t *testing.T) {
	res := run(t, t.TempDir(), nil, "chains")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "cosmoshub-4")
	assert.Contains(t, res.out, "ethereum")
	assert.Contains(t, res.out, "supported coin types: 60, 118")
}

func TestAddress(t *testing.T) {
	ethPub := test.EthereumPubKey(test.MustHex(test.EthereumPrivKeyHex))

	testcases := map[string]struct {
		chain  string
		pubKey string
		want   string
	}{
		"cosmos":   {"cosmoshub-4", test.CosmosPubKeyBase64, test.CosmosAddress},
		"ethereum": {"ethereum", "0x" + hex.EncodeToString(ethPub), test.EthereumAddress},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			res := run(t, t.TempDir(), nil, "address", "--chain", tc.chain, "--pubkey", tc.pubKey)
			require.NoError(t, res.err)
			assert.Equal(t, tc.want+"\n", res.out)
		})
	}
}

func TestAddressErrors(t *testing.T) {
	home := t.TempDir()

	res := run(t, home, nil, "address", "--chain", "juno-1", "--pubkey", test.CosmosPubKeyBase64)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, cfg.ErrUnknownChain{Name: "juno-1"})
	assert.Equal(t, 1, res.exitCode)

	res = run(t, home, nil, "address", "--chain", "cosmoshub-4", "--pubkey", "AAAA")
	require.Error(t, res.err)
	assert.Equal(t, 1, res.exitCode)

	res = run(t, home, nil, "address", "--chain", "cosmoshub-4")
	require.Error(t, res.err)
}

func TestVerify(t *testing.T) {
	home := t.TempDir()

	cosmosPriv := test.PrivKeyFromSecret("cli-cosmos")
	cosmosPub := base64.StdEncoding.EncodeToString(test.CosmosPubKey(cosmosPriv))
	cosmosSig := hex.EncodeToString(test.CosmosSign(cosmosPriv, test.CanonicalMessage))

	ethPriv := test.PrivKeyFromSecret("cli-ethereum")
	ethPub := hex.EncodeToString(test.EthereumPubKey(ethPriv))
	ethSig := "0x" + hex.EncodeToString(test.EthereumSign(ethPriv, test.CanonicalMessage))

	msgFile := filepath.Join(t.TempDir(), "msg.json")
	require.NoError(t, os.WriteFile(msgFile, test.CanonicalMessage, 0o600))

	testcases := map[string]struct {
		args     []string
		wantOut  string
		exitCode int
	}{
		"cosmos valid": {
			args:    []string{"--chain", "cosmoshub-4", "--pubkey", cosmosPub, "--signature", cosmosSig, "--message", string(test.CanonicalMessage)},
			wantOut: "valid\n",
		},
		"cosmos other message": {
			args:     []string{"--chain", "cosmoshub-4", "--pubkey", cosmosPub, "--signature", cosmosSig, "--message", string(test.OtherMessage)},
			wantOut:  "invalid\n",
			exitCode: 2,
		},
		"ethereum valid from file": {
			args:    []string{"--chain", "ethereum", "--pubkey", ethPub, "--signature", ethSig, "--message-file", msgFile},
			wantOut: "valid\n",
		},
		"ethereum garbage signature": {
			args:     []string{"--chain", "ethereum", "--pubkey", ethPub, "--signature", "zz", "--message-file", msgFile},
			wantOut:  "invalid\n",
			exitCode: 2,
		},
		"wrong family": {
			args:     []string{"--chain", "cosmoshub-4", "--pubkey", cosmosPub, "--signature", ethSig, "--message-file", msgFile},
			wantOut:  "invalid\n",
			exitCode: 2,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			res := run(t, home, nil, append([]string{"verify"}, tc.args...)...)
			assert.Equal(t, tc.wantOut, res.out)
			assert.Equal(t, tc.exitCode, res.exitCode)
			if tc.exitCode == 0 {
				require.NoError(t, res.err)
			} else {
				require.ErrorIs(t, res.err, ErrInvalidSignature)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	home := t.TempDir()
	dir := t.TempDir()

	var entries []batchEntry
	for i := 0; i < 3; i++ {
		priv := test.PrivKeyFromSecret(fmt.Sprintf("cli-batch-%d", i))
		msg := fmt.Sprintf(`{"i":%d}`, i)
		entries = append(entries, batchEntry{
			PubKey:    hex.EncodeToString(test.EthereumPubKey(priv)),
			Message:   msg,
			Signature: hex.EncodeToString(test.EthereumSign(priv, []byte(msg))),
		})
	}
	writeBatch := func(name string, entries []batchEntry) string {
		bz, err := json.Marshal(entries)
		require.NoError(t, err)
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, bz, 0o600))
		return path
	}

	res := run(t, home, nil, "batch", "--chain", "ethereum", writeBatch("good.json", entries))
	require.NoError(t, res.err)
	assert.Equal(t, "0\tvalid\n1\tvalid\n2\tvalid\n", res.out)

	entries[1].Message = "tampered"
	res = run(t, home, nil, "batch", "--chain", "ethereum", "--concurrency", "1", writeBatch("bad.json", entries))
	require.ErrorIs(t, res.err, ErrInvalidSignature)
	assert.Equal(t, 2, res.exitCode)
	assert.Equal(t, "0\tvalid\n1\tinvalid\n2\tvalid\n", res.out)

	res = run(t, home, nil, "batch", "--chain", "ethereum", writeBatch("empty.json", nil))
	require.Error(t, res.err)
}

func TestVerifyFlags(t *testing.T) {
	home := t.TempDir()
	base := []string{"verify", "--chain", "cosmoshub-4", "--pubkey", test.CosmosPubKeyBase64, "--signature", "00"}

	// neither message flag
	res := run(t, home, nil, base...)
	require.Error(t, res.err)

	// both message flags
	res = run(t, home, nil, append(base, "--message", "a", "--message-file", "b")...)
	require.Error(t, res.err)

	// missing message file
	res = run(t, home, nil, append(base, "--message-file", filepath.Join(home, "nope"))...)
	require.Error(t, res.err)
	assert.Equal(t, 1, res.exitCode)
}

func TestInvalidConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, run(t, home, nil, "init").err)

	chainsPath := filepath.Join(home, cfg.DefaultConfigDir, cfg.DefaultChainsFileName)
	bad := []cfg.ChainConfig{{Name: "bitcoin", CoinType: 0}}
	require.NoError(t, cfg.WriteChainsFile(chainsPath, bad))

	res := run(t, home, nil, "chains")
	require.Error(t, res.err)
	var inSection cfg.ErrInSection
	assert.ErrorAs(t, res.err, &inSection)
}

func TestLogLevelFlag(t *testing.T) {
	res := run(t, t.TempDir(), nil, "chains", "--log_level", "verbose")
	require.Error(t, res.err)
}

func TestVersion(t *testing.T) {
	res := run(t, t.TempDir(), nil, "version")
	require.NoError(t, res.err)
	assert.Equal(t, version.String()+"\n", res.out)

	res = run(t, t.TempDir(), nil, "version", "-v")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"sigverify"`)
	assert.Contains(t, res.out, "118")
}
