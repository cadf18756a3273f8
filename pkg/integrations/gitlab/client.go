package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jonaspleyer/crate2bib/pkg/integrations"
)

// DefaultBaseURL is the gitlab.com web root. The API lives under /api/v4.
const DefaultBaseURL = "https://gitlab.com"

const host = "gitlab.com"

// Client looks up project metadata and raw files on GitLab.
// It implements the repository scanner's platform contract.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Only two-segment project paths ("group/project") are recognized;
// nested subgroups are not scanned.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitLab client with optional authentication.
//
// Parameters:
//   - userAgent: value of the User-Agent header (may be empty)
//   - token: GitLab personal access token (empty string for unauthenticated)
//
// The returned Client is safe for concurrent use.
func NewClient(userAgent, token string, opts ...integrations.Option) *Client {
	headers := map[string]string{}
	if userAgent != "" {
		headers["User-Agent"] = userAgent
	}
	if token != "" {
		headers["PRIVATE-TOKEN"] = token
	}

	return &Client{
		Client:  integrations.NewClient(headers, opts...),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL returns a copy of c talking to a different GitLab instance root.
func (c *Client) WithBaseURL(baseURL string) *Client {
	return &Client{Client: c.Client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Name returns "gitlab".
func (c *Client) Name() string { return "gitlab" }

// Match reports whether repoURL points at a gitlab.com project.
func (c *Client) Match(repoURL string) (integrations.Repo, bool) {
	return integrations.SplitRepoURL(repoURL, host)
}

// DefaultBranch returns the project's default branch name.
func (c *Client) DefaultBranch(ctx context.Context, repo integrations.Repo) (string, error) {
	var data projectResponse
	u := fmt.Sprintf("%s/api/v4/projects/%s", c.baseURL, url.PathEscape(repo.String()))
	if err := c.Get(ctx, u, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: gitlab project %s", err, repo)
		}
		return "", err
	}
	if data.DefaultBranch == "" {
		return "", fmt.Errorf("gitlab project %s: no default branch", repo)
	}
	return data.DefaultBranch, nil
}

// FetchFile downloads path from branch. A 404 is reported as found == false
// with a nil error.
func (c *Client) FetchFile(ctx context.Context, repo integrations.Repo, branch, path string) (string, bool, error) {
	u := fmt.Sprintf("%s/%s/%s/-/raw/%s/%s", c.baseURL, repo.Owner, repo.Name, integrations.EscapePath(branch), integrations.EscapePath(path))
	resp, err := c.Fetch(ctx, u, nil)
	if err != nil {
		return "", false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return string(resp.Body), true, nil
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("%w: %s: status %d", integrations.ErrNetwork, u, resp.StatusCode)
	}
}

type projectResponse struct {
	ID                int    `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
	DefaultBranch     string `json:"default_branch"`
}
