// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package fetches crate metadata and the published version list from
// crates.io (https://crates.io), the Rust community's package registry.
//
// # Usage
//
//	client := crates.NewClient("crate2bib-cli-user-agent")
//
//	crate, err := client.FetchCrate(ctx, "serde")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(crate.Name, crate.Repository, len(crate.Versions))
//
// # Crate
//
// [Client.FetchCrate] returns a [Crate] containing:
//
//   - Name, Description, Repository: crate-level metadata
//   - Versions: every release with its license, publisher and publish date
//
// Version strings are passed through untouched. Selecting a release is the
// job of the version matcher, which skips strings that are not valid semver.
//
// # User-Agent
//
// crates.io rejects anonymous clients, so the User-Agent given to
// [NewClient] is sent with every request.
package crates
