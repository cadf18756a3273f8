package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jonaspleyer/crate2bib/pkg/citation"
	cerrors "github.com/jonaspleyer/crate2bib/pkg/errors"
	"github.com/jonaspleyer/crate2bib/pkg/manifest"
	"github.com/jonaspleyer/crate2bib/pkg/resolve"
)

func (c *CLI) manifestCommand() *cobra.Command {
	var (
		withDeps bool
		kinds    []string
	)

	cmd := &cobra.Command{
		Use:   "manifest <Cargo.toml>",
		Short: "Cite the package or the dependencies declared in a Cargo.toml",
		Long: `Cite the package declared in a Cargo.toml at its exact version.

With --deps, every registry dependency is cited instead, using the version
requirement from the manifest. Path and git dependencies are skipped. A
dependency that cannot be resolved is reported and the rest are still printed.`,
		Example: `  crate2bib manifest Cargo.toml
  crate2bib manifest Cargo.toml --deps --kind normal,build`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !manifest.Supports(args[0]) {
				return cerrors.New(cerrors.ErrCodeInvalidInput, "%s is not a Cargo.toml", args[0])
			}
			m, err := manifest.Read(args[0])
			if err != nil {
				return err
			}
			reqs, err := manifestRequests(m, withDeps, kinds)
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			resolver := c.newResolver(cfg, logger)

			var (
				all    []citation.Entry
				failed int
			)
			for _, req := range reqs {
				req.Branch = cfg.Branch
				req.Filenames = cfg.Filenames

				entries, err := c.resolve(ctx, resolver, req)
				if err != nil {
					if !withDeps || ctx.Err() != nil {
						return err
					}
					logger.Warn("skipping dependency", "crate", req.Crate, "constraint", req.Version, "err", err)
					failed++
					continue
				}
				all = append(all, entries...)
			}

			if err := c.printEntries(all); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d dependencies could not be resolved", failed, len(reqs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDeps, "deps", false, "cite dependencies instead of the package itself")
	cmd.Flags().StringSliceVar(&kinds, "kind", []string{"normal"}, "dependency kinds to cite with --deps (normal, dev, build)")

	return cmd
}

// manifestRequests returns one request for the package itself or, with
// withDeps, one per dependency of the given kinds.
func manifestRequests(m *manifest.Manifest, withDeps bool, kinds []string) ([]resolve.Request, error) {
	if !withDeps {
		if m.Name == "" {
			return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "manifest has no [package] name")
		}
		return []resolve.Request{{Crate: m.Name, Version: m.Constraint()}}, nil
	}

	var reqs []resolve.Request
	for _, d := range m.Dependencies {
		if !slices.Contains(kinds, d.Kind) {
			continue
		}
		reqs = append(reqs, resolve.Request{Crate: d.Name, Version: d.Constraint()})
	}
	if len(reqs) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "manifest has no dependencies of kind %v", kinds)
	}
	return reqs, nil
}
