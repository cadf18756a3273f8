package scan

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jonaspleyer/crate2bib/pkg/errors"
	"github.com/jonaspleyer/crate2bib/pkg/integrations"
	"github.com/jonaspleyer/crate2bib/pkg/observability"
)

// DefaultConcurrency is the probe fan-out used when none is configured.
const DefaultConcurrency = 4

// Platform is a repository hosting service.
type Platform interface {
	// Name identifies the platform in logs ("github", "gitlab").
	Name() string
	// Match reports whether repoURL belongs to this platform.
	Match(repoURL string) (integrations.Repo, bool)
	// DefaultBranch looks up the repository's default branch.
	DefaultBranch(ctx context.Context, repo integrations.Repo) (string, error)
	// FetchFile reads path on branch. A missing file is (_, false, nil).
	FetchFile(ctx context.Context, repo integrations.Repo, branch, path string) (string, bool, error)
}

// File is a citation file found in a repository.
type File struct {
	Platform   string
	Repository string // repository URL as given to Scan
	Repo       integrations.Repo
	Branch     string
	Filename   string
	Content    string
}

// Scanner probes repositories for citation files. It holds no per-scan
// state and is safe for concurrent use.
type Scanner struct {
	platforms   []Platform
	concurrency int
	logger      *log.Logger
	hooks       observability.ScanHooks
}

// Option configures a [Scanner].
type Option func(*Scanner)

// WithConcurrency sets how many probes may be in flight at once.
// Values below 1 are treated as 1 (sequential probing with early exit).
func WithConcurrency(n int) Option {
	return func(s *Scanner) { s.concurrency = max(n, 1) }
}

// WithLogger sets the logger for scan diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHooks registers scan observability hooks.
func WithHooks(h observability.ScanHooks) Option {
	return func(s *Scanner) {
		if h != nil {
			s.hooks = h
		}
	}
}

// New creates a Scanner over platforms, tried in order.
func New(platforms []Platform, opts ...Option) *Scanner {
	s := &Scanner{
		platforms:   platforms,
		concurrency: DefaultConcurrency,
		logger:      log.New(io.Discard),
		hooks:       observability.NoopScanHooks{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan looks for the first of filenames in the repository at repoURL.
// If branch is empty the platform's default branch is used.
func (s *Scanner) Scan(ctx context.Context, repoURL string, filenames []string, branch string) (*File, error) {
	platform, repo, ok := s.match(repoURL)
	if !ok {
		s.logger.Debug("repository not on a supported platform", "repo", repoURL)
		return nil, nil
	}
	if len(filenames) == 0 {
		return nil, nil
	}

	logger := s.logger.With("platform", platform.Name(), "repo", repo.String())

	if branch == "" {
		b, err := platform.DefaultBranch(ctx, repo)
		s.hooks.OnBranch(ctx, platform.Name(), repo.String(), b, err)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "default branch lookup for %s", repo)
		}
		branch = b
		logger.Debug("resolved default branch", "branch", branch)
	}
	logger = logger.With("branch", branch)

	var (
		found *File
		err   error
	)
	if s.concurrency <= 1 || len(filenames) == 1 {
		found = s.probeSequential(ctx, logger, platform, repo, branch, filenames)
	} else {
		found, err = s.probeConcurrent(ctx, logger, platform, repo, branch, filenames)
		if err != nil {
			return nil, err
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, ctxErr, "scan of %s interrupted", repo)
	}
	if found == nil {
		logger.Debug("no citation file found", "candidates", filenames)
		return nil, nil
	}
	found.Repository = repoURL
	return found, nil
}

func (s *Scanner) match(repoURL string) (Platform, integrations.Repo, bool) {
	for _, p := range s.platforms {
		if repo, ok := p.Match(repoURL); ok {
			return p, repo, true
		}
	}
	return nil, integrations.Repo{}, false
}

type probeResult struct {
	content string
	found   bool
}

func (s *Scanner) probe(ctx context.Context, logger *log.Logger, p Platform, repo integrations.Repo, branch, file string) probeResult {
	start := time.Now()
	content, found, err := p.FetchFile(ctx, repo, branch, file)
	s.hooks.OnProbe(ctx, p.Name(), repo.String(), file, found && err == nil, time.Since(start), err)

	switch {
	case err != nil:
		logger.Warn("probe failed, treating file as absent", "file", file, "err", err)
		return probeResult{}
	case found:
		logger.Debug("found citation file", "file", file, "duration", time.Since(start))
	}
	return probeResult{content: content, found: found}
}

func (s *Scanner) probeSequential(ctx context.Context, logger *log.Logger, p Platform, repo integrations.Repo, branch string, files []string) *File {
	for _, file := range files {
		if ctx.Err() != nil {
			return nil
		}
		if r := s.probe(ctx, logger, p, repo, branch, file); r.found {
			return &File{Platform: p.Name(), Repo: repo, Branch: branch, Filename: file, Content: r.content}
		}
	}
	return nil
}

func (s *Scanner) probeConcurrent(ctx context.Context, logger *log.Logger, p Platform, repo integrations.Repo, branch string, files []string) (*File, error) {
	results := make([]probeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results[i] = s.probe(gctx, logger, p, repo, branch, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, r := range results {
		if r.found {
			return &File{Platform: p.Name(), Repo: repo, Branch: branch, Filename: files[i], Content: r.content}, nil
		}
	}
	return nil, nil
}
