package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jonaspleyer/crate2bib/internal/config"
	"github.com/jonaspleyer/crate2bib/internal/server"
	"github.com/jonaspleyer/crate2bib/pkg/buildinfo"
	"github.com/jonaspleyer/crate2bib/pkg/citation"
	"github.com/jonaspleyer/crate2bib/pkg/integrations"
	"github.com/jonaspleyer/crate2bib/pkg/integrations/crates"
	"github.com/jonaspleyer/crate2bib/pkg/integrations/github"
	"github.com/jonaspleyer/crate2bib/pkg/integrations/gitlab"
	"github.com/jonaspleyer/crate2bib/pkg/resolve"
	"github.com/jonaspleyer/crate2bib/pkg/scan"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"user-agent":    config.KeyUserAgent,
	"timeout":       config.KeyTimeout,
	"branch":        config.KeyBranch,
	"filenames":     config.KeyFilenames,
	"github-token":  config.KeyGitHubToken,
	"gitlab-token":  config.KeyGitLabToken,
	"concurrency":   config.KeyProbeConcurrency,
	"registry-rate": config.KeyRegistryRate,
	"addr":          config.KeyAddr,
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdout io.Writer
	stderr io.Writer

	configFile string
	asJSON     bool

	newResolver func(cfg *config.Config, logger *log.Logger) server.Resolver
}

// New creates a CLI that logs to w at level. Entries are printed to stdout
// and provenance labels to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdout: os.Stdout,
		stderr: w,
		newResolver: func(cfg *config.Config, logger *log.Logger) server.Resolver {
			return buildResolver(cfg, logger)
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects entry text (stdout) and labels (stderr).
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "crate2bib <crate> [version]",
		Short: "crate2bib creates BibLaTeX entries for Rust crates",
		Long: `crate2bib looks up a crate on crates.io and prints a BibLaTeX entry for it.

If the crate's repository on GitHub or GitLab contains a CITATION.cff or a
citation.bib file, an entry built from that file is printed as well.

The version is a Cargo-style requirement: "1.0.217" selects exactly that
release, "0.1" any 0.1.x release, and ">=1.0, <2" a range. Without a version
the newest release is cited.`,
		Example: `  crate2bib serde 1.0.217
  crate2bib cellular-raza ">=0.1, <0.2" --json
  crate2bib tokio --filenames CITATION.cff --branch master`,
		Version:      buildinfo.Version,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := resolve.Request{Crate: args[0]}
			if len(args) == 2 {
				req.Version = args[1]
			}
			return c.runResolve(cmd, req)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default ./crate2bib.yaml or ~/.config/crate2bib/crate2bib.yaml)")
	pf.BoolVar(&c.asJSON, "json", false, "print entries as JSON")
	pf.String("user-agent", config.DefaultUserAgent, "User-Agent sent to crates.io and hosting platforms")
	pf.String("branch", "", "repository branch to search (default: the repository's default branch)")
	pf.StringSlice("filenames", resolve.DefaultFilenames, "candidate citation files in priority order")
	pf.Duration("timeout", resolve.DefaultTimeout, "deadline for one resolution (0 disables)")
	pf.String("github-token", "", "GitHub token for repository lookups")
	pf.String("gitlab-token", "", "GitLab token for repository lookups")
	pf.Int("concurrency", scan.DefaultConcurrency, "parallel file probes per repository")
	pf.Float64("registry-rate", 1, "crates.io requests per second (0 disables limiting)")

	root.AddCommand(c.manifestCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration and Wiring
// =============================================================================

// loadConfig layers the flags of cmd over file, environment and defaults.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New(c.configFile)
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}
	return config.Load(v)
}

// buildResolver wires the registry client, hosting platforms and scanner.
func buildResolver(cfg *config.Config, logger *log.Logger) *resolve.Resolver {
	hooks := logHooks{logger: logger}

	registry := crates.NewClient(cfg.UserAgent,
		integrations.WithHooks(hooks),
		integrations.WithRateLimit(cfg.RegistryRate),
	)
	platforms := []scan.Platform{
		github.NewClient(cfg.UserAgent, cfg.GitHubToken, integrations.WithHooks(hooks)),
		gitlab.NewClient(cfg.UserAgent, cfg.GitLabToken, integrations.WithHooks(hooks)),
	}
	scanner := scan.New(platforms,
		scan.WithConcurrency(cfg.ProbeConcurrency),
		scan.WithLogger(logger),
		scan.WithHooks(hooks),
	)
	return resolve.New(registry, scanner,
		resolve.WithLogger(logger),
		resolve.WithHooks(hooks),
		resolve.WithTimeout(cfg.Timeout),
	)
}

// =============================================================================
// Resolve Command
// =============================================================================

func (c *CLI) runResolve(cmd *cobra.Command, req resolve.Request) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	req.Branch = cfg.Branch
	req.Filenames = cfg.Filenames

	ctx := cmd.Context()
	entries, err := c.resolve(ctx, c.newResolver(cfg, loggerFromContext(ctx)), req)
	if err != nil {
		return err
	}
	return c.printEntries(entries)
}

func (c *CLI) resolve(ctx context.Context, r server.Resolver, req resolve.Request) ([]citation.Entry, error) {
	prog := newProgress(loggerFromContext(ctx))
	entries, err := r.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	prog.done("Resolved " + req.Crate)
	return entries, nil
}
