package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonaspleyer/crate2bib/pkg/integrations"
)

const (
	// DefaultAPIURL is the GitHub REST API root.
	DefaultAPIURL = "https://api.github.com"
	// DefaultRawURL serves raw file content by owner/repo/branch/path.
	DefaultRawURL = "https://raw.githubusercontent.com"

	// notFoundBody is what raw.githubusercontent.com answers for a missing file.
	notFoundBody = "404: Not Found"

	host = "github.com"
)

// Client looks up repository metadata and raw files on GitHub.
// It implements the repository scanner's platform contract.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	apiURL string
	rawURL string
}

// NewClient creates a GitHub client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower rate limits).
// GitHub rejects requests without a User-Agent, so userAgent should not be empty.
func NewClient(userAgent, token string, opts ...integrations.Option) *Client {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if userAgent != "" {
		headers["User-Agent"] = userAgent
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client: integrations.NewClient(headers, opts...),
		apiURL: DefaultAPIURL,
		rawURL: DefaultRawURL,
	}
}

// WithBaseURLs returns a copy of c using the given API and raw-content roots.
func (c *Client) WithBaseURLs(apiURL, rawURL string) *Client {
	return &Client{Client: c.Client, apiURL: apiURL, rawURL: rawURL}
}

// Name returns "github".
func (c *Client) Name() string { return "github" }

// Match reports whether repoURL points at a GitHub repository and extracts
// its owner and name. Deep links (".../tree/main") are not matched.
func (c *Client) Match(repoURL string) (integrations.Repo, bool) {
	repo, ok := integrations.SplitRepoURL(repoURL, host)
	if !ok || ValidateRepoRef(repo.Owner, repo.Name) != nil {
		return integrations.Repo{}, false
	}
	return repo, true
}

// DefaultBranch returns the repository's default branch name.
func (c *Client) DefaultBranch(ctx context.Context, repo integrations.Repo) (string, error) {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.apiURL, repo.Owner, repo.Name)
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: github repo %s", err, repo)
		}
		return "", err
	}
	if data.DefaultBranch == "" {
		return "", fmt.Errorf("github repo %s: no default branch", repo)
	}
	return data.DefaultBranch, nil
}

// FetchFile downloads path from branch. A missing file is reported as
// found == false with a nil error.
func (c *Client) FetchFile(ctx context.Context, repo integrations.Repo, branch, path string) (string, bool, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawURL, repo.Owner, repo.Name, integrations.EscapePath(branch), integrations.EscapePath(path))
	resp, err := c.Fetch(ctx, url, nil)
	if err != nil {
		return "", false, err
	}

	body := string(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound, strings.TrimSpace(body) == notFoundBody:
		return "", false, nil
	case resp.StatusCode != http.StatusOK:
		return "", false, fmt.Errorf("%w: %s: status %d", integrations.ErrNetwork, url, resp.StatusCode)
	}
	return body, true, nil
}
