package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	cerrors "github.com/jonaspleyer/crate2bib/pkg/errors"
)

func (c *CLI) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive [crate]",
		Aliases: []string{"i"},
		Short:   "Prompt for a crate and version, then print its entries",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			var crate string
			if len(args) == 1 {
				crate = args[0]
			}
			ctx := cmd.Context()
			p := tea.NewProgram(NewPromptModel(crate),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(c.stderr),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			m, ok := final.(PromptModel)
			if !ok || !m.Done {
				return nil
			}

			req := m.Request()
			req.Branch = cfg.Branch
			req.Filenames = cfg.Filenames

			spin := newSpinner(ctx, c.stderr, fmt.Sprintf("Resolving %s...", req.Crate))
			spin.Start()
			entries, err := c.newResolver(cfg, loggerFromContext(ctx)).Resolve(ctx, req)
			if err != nil {
				spin.StopWithError(cerrors.UserMessage(err))
				return err
			}
			spin.StopWithSuccess(fmt.Sprintf("Resolved %s (%d entries)", req.Crate, len(entries)))
			return c.printEntries(entries)
		},
	}
}
