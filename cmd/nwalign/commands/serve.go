package commands

import (
	"github.com/spf13/cobra"

	"nwalign/internal/server"
)

// serve: bind the port, then answer POST /align until interrupted.
func serveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Launch the alignment HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.wire.Config.Server
			ln, err := server.Listen(cfg.Addr, cfg.Port)
			if err != nil {
				return err
			}
			opts.wire.Log.Info("Starting server", "addr", ln.Addr().String(),
				"mismatch_penalty", opts.wire.Config.Penalties.Mismatch,
				"gap_penalty", opts.wire.Config.Penalties.Gap)
			return opts.wire.Server.Serve(cmd.Context(), ln)
		},
	}
	cmd.Flags().Int("port", 3000, "port to listen on")
	cmd.Flags().String("addr", "0.0.0.0", "address to listen on")
	return cmd
}
