package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cometbft/sigverify/crypto/batch"
)

const flagConcurrency = "concurrency"

// batchEntry is one element of the batch file.
type batchEntry struct {
	PubKey    string `json:"pubkey"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// BatchCmd verifies every signature of a JSON file.
var BatchCmd = NewBatchCmd()

// NewBatchCmd returns the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Verify a file of signatures",
		Long: `Verify every signature listed in a JSON file of the form

  [{"pubkey": "...", "message": "...", "signature": "..."}, ...]

All entries belong to the chain given with --chain. One line is printed per
entry, in file order.`,
		Args: cobra.ExactArgs(1),
		RunE: verifyBatch,
	}
	cmd.Flags().String(flagChain, "", "name of the chain in the chains file")
	cmd.Flags().Int(flagConcurrency, 0, "signatures checked at once (0 means one per CPU)")
	markFlagsRequired(cmd, flagChain)
	return cmd
}

func verifyBatch(cmd *cobra.Command, args []string) error {
	chain, _ := cmd.Flags().GetString(flagChain)
	concurrency, _ := cmd.Flags().GetInt(flagConcurrency)

	bz, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "can't read batch file")
	}
	var entries []batchEntry
	if err := json.Unmarshal(bz, &entries); err != nil {
		return errors.Wrap(err, "can't decode batch file")
	}
	if len(entries) == 0 {
		return errors.New("batch file has no entries")
	}

	v, err := loadVerifier(chain)
	if err != nil {
		return err
	}
	bv := batch.NewVerifier(v, batch.WithConcurrency(concurrency))
	for _, e := range entries {
		bv.Add(e.PubKey, []byte(e.Message), e.Signature)
	}

	ok, results, err := bv.Verify(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "can't verify batch")
	}
	for i, valid := range results {
		status := "invalid"
		if valid {
			status = "valid"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, status)
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}
