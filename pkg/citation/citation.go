package citation

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// FallbackKey is the key stem used when neither an author nor a title is known.
const FallbackKey = "Unknown"

// WorkType is the kind of work being cited.
type WorkType string

const (
	Software WorkType = "software"
	Dataset  WorkType = "dataset"
)

// ParseWorkType maps a CFF "type" value to a WorkType. Unknown or empty
// values fall back to Software.
func ParseWorkType(s string) WorkType {
	if WorkType(strings.ToLower(strings.TrimSpace(s))) == Dataset {
		return Dataset
	}
	return Software
}

// AuthorKind distinguishes the three author shapes.
type AuthorKind int

const (
	Person AuthorKind = iota
	Entity
	Anonymous
)

// Author is one entry of an author list.
type Author struct {
	Kind     AuthorKind
	Given    string // given names (Person)
	Particle string // name particle, e.g. "von" (Person)
	Family   string // family names (Person)
	Suffix   string // name suffix, e.g. "Jr." (Person)
	Name     string // entity name (Entity)
	ORCID    string
}

// String renders the author for an author list: "given particle family
// suffix" for people with absent parts dropped, the bare name for entities
// and "Anonymous" for anonymous authors.
func (a Author) String() string {
	switch a.Kind {
	case Entity:
		return strings.TrimSpace(a.Name)
	case Anonymous:
		return "Anonymous"
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Given, a.Particle, a.Family, a.Suffix} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// keyStem is the name an author contributes to a citation key.
func (a Author) keyStem() string {
	switch a.Kind {
	case Person:
		return a.Family
	case Entity:
		return a.Name
	}
	return ""
}

// JoinAuthors renders authors in order, separated by ", ".
func JoinAuthors(authors []Author) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

// License is a set of alternative licenses. A single element is a plain
// license expression; several elements mean any of them may be chosen.
type License []string

// String formats l with [FormatLicense]. An empty license yields "".
func (l License) String() string {
	s, _ := FormatLicense(l)
	return s
}

// FormatLicense renders alternatives as "L1, L2, ..., L(N-1) OR LN".
// It returns false for an empty list.
func FormatLicense(l []string) (string, bool) {
	switch len(l) {
	case 0:
		return "", false
	case 1:
		return l[0], true
	}
	return strings.Join(l[:len(l)-1], ", ") + " OR " + l[len(l)-1], true
}

// Record is a normalized citation.
//
// Zero values mark absent optional fields: a nil Version, a zero Date, an
// empty URL and an empty License are all omitted when formatted.
type Record struct {
	Key      string
	Type     WorkType
	Title    string // work or crate name
	Abstract string // description appended after the title (may be empty)
	Authors  []Author
	Version  *semver.Version
	Date     time.Time
	URL      string
	License  License
}

// MakeKey builds a citation key from a name stem and a date:
// "<stem><year>". A blank stem becomes [FallbackKey]; a zero date drops the
// year. Whitespace inside the stem is removed.
func MakeKey(stem string, date time.Time) string {
	stem = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, stem)
	if stem == "" {
		stem = FallbackKey
	}
	if date.IsZero() {
		return stem
	}
	return stem + strconv.Itoa(date.Year())
}

// KeyStem picks the stem for a record key: the first author's family name
// (or entity name), otherwise the title.
func KeyStem(authors []Author, title string) string {
	if len(authors) > 0 {
		if s := strings.TrimSpace(authors[0].keyStem()); s != "" {
			return s
		}
	}
	return strings.TrimSpace(title)
}
