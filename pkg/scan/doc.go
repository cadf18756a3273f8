// Package scan probes a crate's source repository for citation files.
//
// A [Scanner] knows a list of hosting [Platform]s. Given a repository URL it
// picks the first platform that recognizes the URL, resolves the branch to
// read (the caller's override or the platform's default branch) and probes
// the candidate filenames on that branch.
//
// # Ordering
//
// Candidates are ranked by their position in the caller's list. With a
// concurrency of 1 they are probed one after another and scanning stops at
// the first hit. With a higher concurrency all probes run in parallel
// (bounded by the limit) and the found file with the lowest index wins,
// regardless of which response arrived first.
//
// # Failures
//
// An unrecognized URL or a scan where no candidate exists returns (nil, nil).
// A failing default-branch lookup returns a NETWORK_ERROR. A failing probe
// counts as "file absent" and is only logged.
package scan
