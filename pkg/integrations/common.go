package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Repo identifies a repository on a hosting platform.
type Repo struct {
	Owner string // Owner or group segment
	Name  string // Repository name segment
}

// String returns "owner/name".
func (r Repo) String() string { return r.Owner + "/" + r.Name }

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
	"git@gitlab.com:", "https://gitlab.com/",
	"git://gitlab.com/", "https://gitlab.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles git@, git://, and git+ prefixes, and removes .git suffixes and
// trailing slashes. Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	s = strings.TrimRight(s, "/")
	return strings.TrimSuffix(s, ".git")
}

// EscapePath escapes every segment of a slash-separated path for use in a
// URL. Slashes between segments are kept; a leading slash is dropped.
func EscapePath(p string) string {
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// SplitRepoURL extracts the owner and repository name from a repository URL
// served by host (e.g. "github.com"). The URL path must decompose into
// exactly two non-empty segments; query strings and fragments are ignored.
func SplitRepoURL(raw, host string) (Repo, bool) {
	u, err := url.Parse(NormalizeRepoURL(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Repo{}, false
	}
	if !strings.EqualFold(strings.TrimPrefix(u.Hostname(), "www."), host) {
		return Repo{}, false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, false
	}
	return Repo{Owner: parts[0], Name: strings.TrimSuffix(parts[1], ".git")}, true
}
