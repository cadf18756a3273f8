// Package citation defines the format-agnostic citation model shared by the
// registry path, the citation-file parser and the BibLaTeX formatter.
//
// # Record
//
// A [Record] is the single intermediate shape every source produces: a
// citation key, title and optional abstract, ordered [Author] values, and the
// optional version, release date, URL and [License].
//
// # Entry
//
// [Entry] is a closed sum type with three variants:
//
//   - [RegistryEntry]: built from crates.io metadata
//   - [CitationFileEntry]: parsed from a CITATION.cff file
//   - [RawEntry]: a bibliography file found in the repository, kept verbatim
//
// The interface is sealed by an unexported method, so a type switch over
// these three types is exhaustive. [Origin] reports which one a value is.
package citation
