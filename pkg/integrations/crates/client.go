package crates

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jonaspleyer/crate2bib/pkg/integrations"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// Crate holds the registry metadata crate2bib needs for a citation.
//
// Versions are returned in registry order (usually newest first); callers
// must not rely on that and should sort by semantic version themselves.
type Crate struct {
	Name        string    // Crate name as published
	Description string    // Crate description (may be empty)
	Repository  string    // Repository URL (may be empty)
	Versions    []Version // Every published version, yanked ones included
}

// Version is one published release of a crate.
type Version struct {
	Num         string    // Raw version string (e.g. "1.0.217")
	License     string    // SPDX expression for this release (may be empty)
	PublishedBy *User     // Publisher; nil for releases predating publisher tracking
	CreatedAt   time.Time // Publish timestamp
	UpdatedAt   time.Time
}

// VersionString returns the raw version string.
func (v Version) VersionString() string { return v.Num }

// PublishedAt returns the publish date, falling back to the last update
// for records without a creation timestamp.
func (v Version) PublishedAt() time.Time {
	if v.CreatedAt.IsZero() {
		return v.UpdatedAt
	}
	return v.CreatedAt
}

// User identifies a crates.io account.
type User struct {
	Login string
	Name  string // Display name (may be empty)
}

// Client provides access to the crates.io package registry API.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Note: crates.io requires a User-Agent header; every request carries the
// one given to [NewClient].
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client that identifies itself with userAgent.
// Options are forwarded to the shared [integrations.Client].
func NewClient(userAgent string, opts ...integrations.Option) *Client {
	headers := map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	}
	return &Client{
		Client:  integrations.NewClient(headers, opts...),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL returns a copy of c that talks to baseURL instead of crates.io.
func (c *Client) WithBaseURL(baseURL string) *Client {
	return &Client{Client: c.Client, baseURL: baseURL}
}

// FetchCrate retrieves metadata and the full version list for a crate.
//
// Returns:
//   - *Crate populated on success (never nil if err is nil)
//   - [integrations.ErrNotFound] if the crate doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - Other errors for JSON decoding failures
func (c *Client) FetchCrate(ctx context.Context, name string) (*Crate, error) {
	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, url.PathEscape(name)), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: crate %s", err, name)
		}
		return nil, err
	}

	crate := &Crate{
		Name:        data.Crate.Name,
		Description: data.Crate.Description,
		Repository:  data.Crate.Repository,
		Versions:    make([]Version, 0, len(data.Versions)),
	}
	if crate.Name == "" {
		crate.Name = name
	}
	for _, v := range data.Versions {
		ver := Version{
			Num:       v.Num,
			License:   v.License,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		}
		if v.PublishedBy != nil {
			ver.PublishedBy = &User{Login: v.PublishedBy.Login, Name: v.PublishedBy.Name}
		}
		crate.Versions = append(crate.Versions, ver)
	}
	return crate, nil
}

type crateResponse struct {
	Crate struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Repository  string `json:"repository"`
	} `json:"crate"`
	Versions []versionResponse `json:"versions"`
}

type versionResponse struct {
	Num         string    `json:"num"`
	License     string    `json:"license"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PublishedBy *struct {
		Login string `json:"login"`
		Name  string `json:"name"`
	} `json:"published_by"`
}
