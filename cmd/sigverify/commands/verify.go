package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	flagChain       = "chain"
	flagPubKey      = "pubkey"
	flagSignature   = "signature"
	flagMessage     = "message"
	flagMessageFile = "message-file"
)

// ErrInvalidSignature is returned by verify when the signature does not
// match. The process exits with status 2.
var ErrInvalidSignature = invalidSignatureError{}

type invalidSignatureError struct{}

func (invalidSignatureError) Error() string { return "signature is invalid" }

func (invalidSignatureError) ExitCode() int { return 2 }

// VerifyCmd checks a signature against a public key and message.
var VerifyCmd = NewVerifyCmd()

// NewVerifyCmd returns the verify command.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature made by a wallet",
		Long: `Verify a signature made by a wallet of the given chain.

The public key and signature are decoded with the encodings configured for
the chain in the chains file. The message is taken as is from --message or
read from --message-file.`,
		Example: `sigverify verify --chain cosmoshub-4 --pubkey A7U3vhjbQ1HtcJmS3Z70X9ViIqhH3OvpPTeuUcbM9Iwf \
	--signature <hex> --message '{"nonce":"4f3c2a"}'`,
		Args: cobra.NoArgs,
		RunE: verifySignature,
	}
	cmd.Flags().String(flagChain, "", "name of the chain in the chains file")
	cmd.Flags().String(flagPubKey, "", "public key of the signer")
	cmd.Flags().String(flagSignature, "", "signature to check")
	cmd.Flags().String(flagMessage, "", "signed message")
	cmd.Flags().String(flagMessageFile, "", "file holding the signed message")
	markFlagsRequired(cmd, flagChain, flagPubKey, flagSignature)
	cmd.MarkFlagsMutuallyExclusive(flagMessage, flagMessageFile)
	cmd.MarkFlagsOneRequired(flagMessage, flagMessageFile)
	return cmd
}

func markFlagsRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func verifySignature(cmd *cobra.Command, _ []string) error {
	chain, _ := cmd.Flags().GetString(flagChain)
	pubKey, _ := cmd.Flags().GetString(flagPubKey)
	sig, _ := cmd.Flags().GetString(flagSignature)

	msg, err := readMessage(cmd)
	if err != nil {
		return err
	}

	v, err := loadVerifier(chain)
	if err != nil {
		return err
	}
	ok, err := v.VerifySignature(pubKey, msg, sig)
	if err != nil {
		return errors.Wrap(err, "can't verify signature")
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		return ErrInvalidSignature
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}

func readMessage(cmd *cobra.Command) ([]byte, error) {
	if cmd.Flags().Changed(flagMessage) {
		msg, _ := cmd.Flags().GetString(flagMessage)
		return []byte(msg), nil
	}
	path, _ := cmd.Flags().GetString(flagMessageFile)
	msg, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't read message file")
	}
	return msg, nil
}
