package version

import (
	"regexp"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/jonaspleyer/crate2bib/pkg/errors"
)

// Candidate is anything carrying a raw version string.
type Candidate interface {
	VersionString() string
}

// String adapts a plain version string to [Candidate].
type String string

func (s String) VersionString() string { return string(s) }

// Selected is the winning candidate together with its parsed version.
type Selected[T Candidate] struct {
	Candidate T
	Version   *semver.Version
}

var barePartial = regexp.MustCompile(`^\d+(\.\d+)?$`)
var bareFull = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// ParseConstraint parses a Cargo-style requirement. An empty string yields nil.
func ParseConstraint(constraint string) (*semver.Constraints, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil, nil
	}

	parts := strings.Split(constraint, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		switch {
		case bareFull.MatchString(p):
			p = "=" + p
		case barePartial.MatchString(p):
			p = "^" + p
		}
		parts[i] = p
	}

	c, err := semver.NewConstraint(strings.Join(parts, ", "))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid version constraint %q", constraint)
	}
	return c, nil
}

// Sort parses candidates and orders the valid ones by descending precedence.
// Invalid version strings are dropped. Equal versions keep their input order.
func Sort[T Candidate](candidates []T) []Selected[T] {
	out := make([]Selected[T], 0, len(candidates))
	for _, c := range candidates {
		v, err := semver.StrictNewVersion(strings.TrimSpace(c.VersionString()))
		if err != nil {
			continue
		}
		out = append(out, Selected[T]{Candidate: c, Version: v})
	}
	slices.SortStableFunc(out, func(a, b Selected[T]) int {
		return b.Version.Compare(a.Version)
	})
	return out
}

// Select returns the highest candidate satisfying constraint. An empty
// constraint selects the highest valid candidate.
//
// Errors:
//   - INVALID_CONFIG when constraint cannot be parsed
//   - VERSION_NOT_FOUND when nothing matches, naming crate and constraint
func Select[T Candidate](crate, constraint string, candidates []T) (Selected[T], error) {
	c, err := ParseConstraint(constraint)
	if err != nil {
		return Selected[T]{}, err
	}

	for _, s := range Sort(candidates) {
		if c == nil || c.Check(s.Version) {
			return s, nil
		}
	}

	if c == nil {
		return Selected[T]{}, errors.New(errors.ErrCodeVersionNotFound, "could not find any version for crate %s", crate)
	}
	return Selected[T]{}, errors.New(errors.ErrCodeVersionNotFound, "could not find version %s for crate %s", constraint, crate)
}
