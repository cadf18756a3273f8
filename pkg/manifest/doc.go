// Package manifest reads Cargo.toml files so a local crate, or the crates it
// depends on, can be cited without typing names and versions by hand.
package manifest
