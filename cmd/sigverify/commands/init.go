package commands

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cfg "github.com/cometbft/sigverify/config"
	cmtos "github.com/cometbft/sigverify/internal/os"
)

var resetChains bool

// InitFilesCmd initializes a fresh sigverify home directory.
var InitFilesCmd = NewInitFilesCmd()

// NewInitFilesCmd returns the init command.
func NewInitFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize sigverify",
		RunE:  initFiles,
	}
	cmd.Flags().BoolVar(&resetChains, "reset-chains", false, "overwrite the chains file with the default chains")
	return cmd
}

func initFiles(*cobra.Command, []string) error {
	return initFilesWithConfig(config)
}

func initFilesWithConfig(config *cfg.Config) error {
	cfg.EnsureRoot(config.RootDir)

	configFile := filepath.Join(config.RootDir, cfg.DefaultConfigDir, cfg.DefaultConfigFileName)
	logger.Info("Found config file", "path", configFile)

	chainsFile := config.ChainsFilePath()
	if resetChains || !cmtos.FileExists(chainsFile) {
		if err := cfg.WriteChainsFile(chainsFile, cfg.DefaultChains()); err != nil {
			return errors.Wrap(err, "can't write chains file")
		}
		logger.Info("Generated chains file", "path", chainsFile)
		return nil
	}
	logger.Info("Found chains file", "path", chainsFile)
	return nil
}
