// Package pkg provides the libraries behind crate2bib, which turns a Rust
// crate on crates.io into BibLaTeX entries.
//
// # Architecture
//
// A resolution flows through these packages:
//
//	crate name + version requirement
//	         ↓
//	    [integrations/crates] fetch crate metadata and releases
//	         ↓
//	    [version] select the newest release matching the requirement
//	         ↓
//	    [resolve] build the registry record
//	         ↓
//	    [scan] probe the GitHub/GitLab repository for citation files
//	         ↓
//	    [cff] parse CITATION.cff (citation.bib is kept verbatim)
//	         ↓
//	    [biblatex] format every entry
//
// # Quick Start
//
//	registry := crates.NewClient("my-tool/1.0")
//	scanner := scan.New([]scan.Platform{
//	    github.NewClient("my-tool/1.0", ""),
//	    gitlab.NewClient("my-tool/1.0", ""),
//	})
//	resolver := resolve.New(registry, scanner)
//
//	entries, err := resolver.Resolve(ctx, resolve.Request{
//	    Crate:     "serde",
//	    Version:   "1.0.217",
//	    Filenames: resolve.DefaultFilenames,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(biblatex.FormatAll(entries))
//
// # Supporting Packages
//
//   - [citation]: the record and entry types shared by every stage
//   - [manifest]: Cargo.toml reading for citing a package or its dependencies
//   - [integrations]: the shared HTTP client with retry and rate limiting
//   - [httputil]: retry with exponential backoff
//   - [errors]: coded errors and input validation
//   - [observability]: hooks for HTTP, scan and resolve events
//   - [buildinfo]: version information injected at build time
package pkg
