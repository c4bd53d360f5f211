package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nwalign/internal/fasta"
	"nwalign/internal/services/alignment"
)

// remote <fasta>: send the two records of a FASTA file to a running service.
func remoteCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote <fasta>",
		Short: "Align the first two sequences in a FASTA file on a running service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := fasta.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(recs) != 2 {
				return fmt.Errorf("%w, got %d", alignment.ErrCardinality, len(recs))
			}
			if err := opts.wire.Remote.Health(cmd.Context()); err != nil {
				return fmt.Errorf("server not healthy: %w", err)
			}
			rec, err := opts.wire.Remote.Align(cmd.Context(), recs[0].Sequence.String(), recs[1].Sequence.String())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.String())
			return nil
		},
	}
	cmd.Flags().String("server", "http://127.0.0.1:3000", "service base URL")
	return cmd
}
