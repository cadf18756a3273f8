package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jonaspleyer/crate2bib/pkg/observability"
)

// logHooks reports HTTP, scan and resolve events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.HTTPHooks    = logHooks{}
	_ observability.ScanHooks    = logHooks{}
	_ observability.ResolveHooks = logHooks{}
)

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path,
		"status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

func (h logHooks) OnBranch(_ context.Context, platform, repo, branch string, err error) {
	if err != nil {
		h.logger.Debug("branch lookup failed", "platform", platform, "repo", repo, "err", err)
		return
	}
	h.logger.Debug("default branch", "platform", platform, "repo", repo, "branch", branch)
}

func (h logHooks) OnProbe(_ context.Context, platform, repo, file string, found bool, d time.Duration, err error) {
	h.logger.Debug("probe", "platform", platform, "repo", repo, "file", file,
		"found", found, "duration", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnResolveStart(_ context.Context, crate, constraint string) {
	h.logger.Debug("resolve start", "crate", crate, "constraint", constraint)
}

func (h logHooks) OnResolveComplete(_ context.Context, crate string, entries int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("resolve failed", "crate", crate, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("resolve complete", "crate", crate, "entries", entries, "duration", d.Round(time.Millisecond))
}
