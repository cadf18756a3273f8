package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonaspleyer/crate2bib/pkg/integrations"
)

func testClient(t *testing.T, server *httptest.Server, token string) *Client {
	t.Helper()
	c := NewClient("crate2bib-testing", token,
		integrations.WithHTTPClient(server.Client()),
		integrations.WithRetry(1, time.Millisecond),
	)
	return c.WithBaseURLs(server.URL+"/api", server.URL+"/raw")
}

func TestClient_Match(t *testing.T) {
	c := NewClient("crate2bib-testing", "")

	tests := []struct {
		url    string
		want   integrations.Repo
		wantOK bool
	}{
		{"https://github.com/jonaspleyer/cellular_raza", integrations.Repo{Owner: "jonaspleyer", Name: "cellular_raza"}, true},
		{"https://github.com/serde-rs/serde.git", integrations.Repo{Owner: "serde-rs", Name: "serde"}, true},
		{"https://gitlab.com/foo/bar", integrations.Repo{}, false},
		{"https://github.com/serde-rs/serde/tree/master/serde", integrations.Repo{}, false},
		{"https://github.com/-bad/repo", integrations.Repo{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := c.Match(tt.url)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Match(%q) = %+v, %v; want %+v, %v", tt.url, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClient_DefaultBranch(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/repos/jonaspleyer/cellular_raza":
			auth = r.Header.Get("Authorization")
			w.Write([]byte(`{"name":"cellular_raza","default_branch":"master"}`))
		case "/api/repos/owner/empty":
			w.Write([]byte(`{"name":"empty"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server, "secret")
	ctx := context.Background()

	branch, err := c.DefaultBranch(ctx, integrations.Repo{Owner: "jonaspleyer", Name: "cellular_raza"})
	if err != nil {
		t.Fatalf("DefaultBranch() error: %v", err)
	}
	if branch != "master" {
		t.Errorf("branch = %q, want master", branch)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", auth, "Bearer secret")
	}

	if _, err := c.DefaultBranch(ctx, integrations.Repo{Owner: "owner", Name: "empty"}); err == nil {
		t.Error("expected error for missing default_branch")
	}

	_, err = c.DefaultBranch(ctx, integrations.Repo{Owner: "owner", Name: "missing"})
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/raw/owner/repo/main/CITATION.cff":
			w.Write([]byte("cff-version: 1.2.0\n"))
		case "/raw/owner/repo/main/sentinel.bib":
			// 200 with the sentinel body
			w.Write([]byte("404: Not Found"))
		case "/raw/owner/repo/main/forbidden.bib":
			w.WriteHeader(http.StatusForbidden)
		case "/raw/owner/repo/release/1.x/docs/my citation#1.cff":
			w.Write([]byte("escaped"))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("404: Not Found"))
		}
	}))
	defer server.Close()

	c := testClient(t, server, "")
	ctx := context.Background()
	repo := integrations.Repo{Owner: "owner", Name: "repo"}

	text, found, err := c.FetchFile(ctx, repo, "main", "CITATION.cff")
	if err != nil || !found {
		t.Fatalf("FetchFile() = %v, %v", found, err)
	}
	if text != "cff-version: 1.2.0\n" {
		t.Errorf("text = %q", text)
	}

	for _, path := range []string{"citation.bib", "sentinel.bib"} {
		_, found, err = c.FetchFile(ctx, repo, "main", path)
		if err != nil || found {
			t.Errorf("FetchFile(%s) = %v, %v; want not found", path, found, err)
		}
	}

	_, found, err = c.FetchFile(ctx, repo, "main", "forbidden.bib")
	if found || !errors.Is(err, integrations.ErrNetwork) {
		t.Errorf("FetchFile(forbidden) = %v, %v; want network error", found, err)
	}

	text, found, err = c.FetchFile(ctx, repo, "release/1.x", "docs/my citation#1.cff")
	if err != nil || !found || text != "escaped" {
		t.Errorf("FetchFile(escaped) = %q, %v, %v", text, found, err)
	}
}
