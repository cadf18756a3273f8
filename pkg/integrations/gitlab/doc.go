// Package gitlab provides an HTTP client for GitLab projects.
//
// # Overview
//
// This package gives the repository scanner GitLab support next to the
// GitHub provider: project URL matching, default-branch lookup through
// /api/v4/projects/:id and raw file downloads through /-/raw/:branch/:path.
//
// # Usage
//
//	client := gitlab.NewClient("crate2bib-cli-user-agent", token)
//
//	repo, ok := client.Match("https://gitlab.com/group/project")
//	branch, err := client.DefaultBranch(ctx, repo)
//	text, found, err := client.FetchFile(ctx, repo, branch, "CITATION.cff")
//
// # Authentication
//
// A GitLab personal access token is optional. Without a token, only
// public projects can be accessed.
package gitlab
