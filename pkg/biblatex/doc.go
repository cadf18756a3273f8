// Package biblatex renders citation entries as BibLaTeX.
//
// Record-backed entries always produce the same field order:
//
//	@software {Tolnay2024,
//	    author = {David Tolnay},
//	    title = {{serde}: A generic serialization/deserialization framework},
//	    url = {https://github.com/serde-rs/serde},
//	    date = {2024-12-27},
//	    version = {1.0.217},
//	    license = {MIT OR Apache-2.0},
//	}
//
// author and title are always present; url, date, version and license only
// when set. The output has no trailing newline. Raw bibliography entries are
// returned as found.
package biblatex
