// Package integrations provides HTTP clients for the crates.io registry and
// the repository hosting platforms crate2bib probes for citation files.
//
// # Overview
//
// Each remote service has its own subpackage:
//
//   - [crates]: Rust crates.io registry (crate metadata and versions)
//   - [github]: GitHub repository metadata and raw file content
//   - [gitlab]: GitLab repository metadata and raw file content
//
// # Client Pattern
//
// All service clients embed the shared [Client]:
//
//	client := crates.NewClient("my-tool/1.0")
//	info, err := client.FetchCrate(ctx, "serde")
//
// The shared client handles:
//   - Default request headers (User-Agent, Accept, authentication)
//   - Retry with exponential backoff for transient failures
//   - Optional rate limiting via golang.org/x/time/rate
//   - HTTP observability hooks
//
// Nothing is cached: every call goes to the network and every call is
// independent of the others.
//
// [crates]: github.com/jonaspleyer/crate2bib/pkg/integrations/crates
// [github]: github.com/jonaspleyer/crate2bib/pkg/integrations/github
// [gitlab]: github.com/jonaspleyer/crate2bib/pkg/integrations/gitlab
package integrations
