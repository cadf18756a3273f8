// Package github provides an HTTP client for GitHub repositories.
//
// # Overview
//
// The client answers the three questions the repository scanner asks of a
// hosting platform:
//
//   - Is this URL a GitHub repository? ([Client.Match])
//   - What is its default branch? ([Client.DefaultBranch], via api.github.com)
//   - Does this file exist on that branch? ([Client.FetchFile], via
//     raw.githubusercontent.com)
//
// # Usage
//
//	client := github.NewClient("crate2bib-cli-user-agent", os.Getenv("GITHUB_TOKEN"))
//
//	repo, ok := client.Match("https://github.com/jonaspleyer/cellular_raza")
//	branch, err := client.DefaultBranch(ctx, repo)
//	text, found, err := client.FetchFile(ctx, repo, branch, "CITATION.cff")
//
// # Authentication
//
// A GitHub personal access token is optional. Without a token, metadata
// lookups are limited to 60 requests/hour.
//
// # Missing Files
//
// raw.githubusercontent.com answers a missing file with the body
// "404: Not Found". Both that body and a 404 status count as "not found".
package github
