package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// AddressCmd derives the address of a public key on a chain.
var AddressCmd = NewAddressCmd()

// NewAddressCmd returns the address command.
func NewAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the address of a public key",
		Args:  cobra.NoArgs,
		RunE:  deriveAddress,
	}
	cmd.Flags().String(flagChain, "", "name of the chain in the chains file")
	cmd.Flags().String(flagPubKey, "", "public key to derive the address of")
	markFlagsRequired(cmd, flagChain, flagPubKey)
	return cmd
}

func deriveAddress(cmd *cobra.Command, _ []string) error {
	chain, _ := cmd.Flags().GetString(flagChain)
	pubKey, _ := cmd.Flags().GetString(flagPubKey)

	v, err := loadVerifier(chain)
	if err != nil {
		return err
	}
	addr, err := v.GenerateAddress(pubKey)
	if err != nil {
		return errors.Wrap(err, "can't derive address")
	}
	fmt.Fprintln(cmd.OutOrStdout(), addr)
	return nil
}
