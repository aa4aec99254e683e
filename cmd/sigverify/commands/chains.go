package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cometbft/sigverify/verifier"
)

// ChainsCmd lists the configured chains.
var ChainsCmd = NewChainsCmd()

// NewChainsCmd returns the chains command.
func NewChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the configured chains",
		Args:  cobra.NoArgs,
		RunE:  listChains,
	}
}

func listChains(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOIN TYPE\tPREFIX\tPUBKEY\tSIGNATURE\tFRAMING")
	for _, cc := range config.Chains {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			cc.Name, cc.CoinType, orDash(cc.Prefix), orDash(cc.PubKeyEncoding),
			orDash(cc.SignatureEncoding), orDash(cc.Framing))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nsupported coin types: %s\n", verifier.SupportedCoinTypesStr())
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
