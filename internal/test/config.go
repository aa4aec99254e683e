package test

import (
	"fmt"
	"os"

	"github.com/cometbft/sigverify/config"
)

// ResetTestRoot creates a fresh home directory holding the default config
// and chains files and returns the test config rooted there.
func ResetTestRoot(testName string) *config.Config {
	// create a unique, concurrency-safe test directory under os.TempDir()
	rootDir, err := os.MkdirTemp("", fmt.Sprintf("%s_", testName))
	if err != nil {
		panic(err)
	}

	config.EnsureRoot(rootDir)

	cfg := config.TestConfig().SetRoot(rootDir)
	chains, err := config.LoadChainsFile(cfg.ChainsFilePath())
	if err != nil {
		panic(err)
	}
	cfg.Chains = chains
	return cfg
}
