// Package cff parses Citation File Format (CITATION.cff) documents into
// [citation.Record] values.
//
// Only the fields needed for a bibliography entry are read: title, type,
// version, date-released, abstract, authors, license and the URL fields
// (url, repository, repository-code, repository-artifact, first present
// wins). Unknown keys are ignored.
package cff
