package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nwalign/internal/domain"
	"nwalign/internal/fasta"
	"nwalign/internal/services/alignment"
)

// align <fasta>: align the two records of a FASTA file, optionally many times.
func alignCmd(opts *rootOptions) *cobra.Command {
	var (
		runs   int
		output string
		quiet  bool
		glyph  string
	)
	cmd := &cobra.Command{
		Use:   "align <fasta>",
		Short: "Align the first two sequences in a FASTA file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := fasta.ReadFile(args[0])
			if err != nil {
				return err
			}
			rep, err := opts.wire.Alignments.Run(cmd.Context(), alignment.Request{
				Records: recs,
				Runs:    runs,
				Output:  output,
			})
			if err != nil {
				return err
			}
			if runs == 1 && !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), rep.Alignment.Render(glyph))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&runs, "runs", "r", 1, "number of repeated runs (throughput testing)")
	cmd.Flags().StringVar(&output, "output", "", "write the JSON record to this path (single run only)")
	cmd.Flags().StringVar(&glyph, "gap-glyph", domain.DefaultGap, "text printed for an absent symbol")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the rendered alignment")
	return cmd
}
