package resolve

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jonaspleyer/crate2bib/pkg/citation"
	cerrors "github.com/jonaspleyer/crate2bib/pkg/errors"
	"github.com/jonaspleyer/crate2bib/pkg/integrations"
	"github.com/jonaspleyer/crate2bib/pkg/integrations/crates"
	"github.com/jonaspleyer/crate2bib/pkg/observability"
	"github.com/jonaspleyer/crate2bib/pkg/scan"
	"github.com/jonaspleyer/crate2bib/pkg/version"
)

// DefaultTimeout bounds a single Resolve call.
const DefaultTimeout = 30 * time.Second

// DefaultFilenames are the candidate files front-ends probe by default.
var DefaultFilenames = []string{"CITATION.cff", "citation.bib"}

// Registry fetches crate metadata. *crates.Client satisfies it.
type Registry interface {
	FetchCrate(ctx context.Context, name string) (*crates.Crate, error)
}

// Scanner looks for citation files in a repository. *scan.Scanner satisfies it.
type Scanner interface {
	Scan(ctx context.Context, repoURL string, filenames []string, branch string) (*scan.File, error)
}

// Request describes one resolution.
type Request struct {
	Crate     string   // crate name on crates.io
	Version   string   // version constraint; empty selects the newest release
	Branch    string   // repository branch override; empty uses the default branch
	Filenames []string // candidate citation files in priority order; empty skips the scan
}

// Resolver composes registry lookup, version selection and repository
// scanning. It is safe for concurrent use.
type Resolver struct {
	registry Registry
	scanner  Scanner
	logger   *log.Logger
	hooks    observability.ResolveHooks
	timeout  time.Duration
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithHooks registers resolve observability hooks.
func WithHooks(h observability.ResolveHooks) Option {
	return func(r *Resolver) {
		if h != nil {
			r.hooks = h
		}
	}
}

// WithTimeout sets the per-request deadline. d <= 0 disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// New creates a Resolver. scanner may be nil, in which case repositories
// are never scanned.
func New(registry Registry, scanner Scanner, opts ...Option) *Resolver {
	r := &Resolver{
		registry: registry,
		scanner:  scanner,
		logger:   log.New(io.Discard),
		hooks:    observability.NoopResolveHooks{},
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the citation entries for req: the registry entry first,
// followed by an entry for a citation file found in the repository.
//
// Errors:
//   - INVALID_PACKAGE for a malformed crate name
//   - INVALID_PATH for a candidate filename that is absolute or escapes the repository
//   - INVALID_CONFIG for a malformed version constraint
//   - PACKAGE_NOT_FOUND when the registry does not know the crate
//   - VERSION_NOT_FOUND when no release matches the constraint
//   - NETWORK_ERROR for transport failures, deadlines and cancellation
func (r *Resolver) Resolve(ctx context.Context, req Request) (entries []citation.Entry, err error) {
	if err := cerrors.ValidateCrateName(req.Crate); err != nil {
		return nil, err
	}
	for _, f := range req.Filenames {
		if err := cerrors.ValidatePath(f); err != nil {
			return nil, err
		}
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	id := RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = WithRequestID(ctx, id)
	}
	logger := r.logger.With("request_id", id, "crate", req.Crate)

	start := time.Now()
	r.hooks.OnResolveStart(ctx, req.Crate, req.Version)
	defer func() {
		r.hooks.OnResolveComplete(ctx, req.Crate, len(entries), time.Since(start), err)
	}()

	crate, err := r.registry.FetchCrate(ctx, req.Crate)
	if err != nil {
		return nil, registryError(ctx, req.Crate, err)
	}

	selected, err := version.Select(req.Crate, req.Version, crate.Versions)
	if err != nil {
		return nil, err
	}
	logger = logger.With("version", selected.Version.String())
	logger.Debug("selected version", "constraint", req.Version, "candidates", len(crate.Versions))

	entries = []citation.Entry{citation.RegistryEntry{Record: RegistryRecord(crate, selected)}}

	if extra := r.scanRepository(ctx, logger, crate.Repository, req); extra != nil {
		entries = append(entries, extra)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeNetwork, ctxErr, "resolving %s", req.Crate)
	}

	logger.Debug("resolved", "entries", len(entries), "duration", time.Since(start))
	return entries, nil
}

func (r *Resolver) scanRepository(ctx context.Context, logger *log.Logger, repoURL string, req Request) citation.Entry {
	if r.scanner == nil || repoURL == "" || len(req.Filenames) == 0 {
		return nil
	}
	logger = logger.With("repo", repoURL)

	file, err := r.scanner.Scan(ctx, repoURL, req.Filenames, req.Branch)
	if err != nil {
		logger.Warn("repository scan failed, returning registry entry only", "err", err)
		return nil
	}
	if file == nil {
		logger.Debug("no citation file in repository")
		return nil
	}
	return classify(logger, file)
}

func registryError(ctx context.Context, name string, err error) error {
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return cerrors.Wrap(cerrors.ErrCodePackageNotFound, err, "could not find crate %s", name)
	case ctx.Err() != nil:
		return cerrors.Wrap(cerrors.ErrCodeNetwork, ctx.Err(), "fetching crate %s", name)
	default:
		return cerrors.Wrap(cerrors.ErrCodeNetwork, err, "fetching crate %s", name)
	}
}
