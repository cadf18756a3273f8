// Package version selects the best release of a crate for a version constraint.
//
// Constraints follow Cargo's requirement syntax as far as Masterminds/semver
// supports it:
//
//	""          highest release, pre-releases included
//	"1.0.217"   exactly 1.0.217 (a bare full version is an exact match)
//	"0.1"       any 0.1.x (a bare partial version is a caret range)
//	"^1.2"      caret range
//	">=0.3,<2"  comma-separated comparators must all hold
//
// Candidates whose version string is not strict semver never match and never
// cause an error.
package version
