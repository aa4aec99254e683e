package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cometbft/sigverify/verifier"
	"github.com/cometbft/sigverify/version"
)

var verbose bool

// VersionCmd ...
var VersionCmd = NewVersionCmd()

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run:   printVersion,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show supported coin types")
	return cmd
}

func printVersion(cmd *cobra.Command, _ []string) {
	if verbose {
		values, err := json.MarshalIndent(struct {
			Sigverify string   `json:"sigverify"`
			CoinTypes []uint32 `json:"coin_types"`
		}{
			Sigverify: version.String(),
			CoinTypes: verifier.ListSupportedCoinTypes(),
		}, "", "  ")
		if err != nil {
			panic(fmt.Sprintf("failed to marshal version info: %v", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(values))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	}
}
