// Package resolve turns a crate name and version constraint into citation
// entries.
//
// # Pipeline
//
// [Resolver.Resolve] runs these steps for one request:
//
//  1. Fetch the crate and its version list from the registry
//  2. Select the highest version matching the constraint
//  3. Build the registry entry from that version's metadata
//  4. If the crate names a repository, scan it for the candidate files
//  5. Classify a found file as CITATION.cff or raw bibliography and append
//     the matching entry
//
// Steps 1 and 2 are fatal on failure. Scanning is best effort: a scan
// failure is logged at WARN and the call returns the registry entry alone.
// The registry entry always comes first.
//
// # Deadlines
//
// Each call runs under its own deadline ([DefaultTimeout] unless configured).
// An expired deadline or a cancelled context yields a NETWORK_ERROR and no
// entries; a partial result is never returned.
//
// # Dependencies
//
// The registry, the scanner, the logger and the hooks are values passed to
// [New]. A Resolver holds no per-request state, so concurrent calls are
// independent and tests can substitute fakes for any collaborator.
package resolve
