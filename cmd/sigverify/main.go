package main

import (
	"os"
	"path/filepath"

	cmd "github.com/cometbft/sigverify/cmd/sigverify/commands"
	cfg "github.com/cometbft/sigverify/config"
	"github.com/cometbft/sigverify/libs/cli"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.InitFilesCmd,
		cmd.VerifyCmd,
		cmd.BatchCmd,
		cmd.AddressCmd,
		cmd.ChainsCmd,
		cmd.VersionCmd,
	)

	cmd := cli.PrepareBaseCmd(rootCmd, "SIGVERIFY", os.ExpandEnv(filepath.Join("$HOME", cfg.DefaultSigverifyDir)))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
