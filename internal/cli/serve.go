package cli

import (
	"github.com/spf13/cobra"

	"github.com/jonaspleyer/crate2bib/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve BibLaTeX entries over HTTP",
		Long: `Serve the resolver as a JSON API until interrupted.

  GET /api/v1/crates/{name}/biblatex?version=&branch=&filename=
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			srv := server.New(c.newResolver(cfg, logger), logger, cfg.Filenames, cfg.Branch)
			return srv.ListenAndServe(cmd.Context(), cfg.Addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")

	return cmd
}
