package citation

// Origin tags where an [Entry] came from.
type Origin string

const (
	OriginRegistry     Origin = "crates.io"
	OriginCitationFile Origin = "CITATION.cff"
	OriginRaw          Origin = "bibliography"
)

// Entry is one of [RegistryEntry], [CitationFileEntry] or [RawEntry].
type Entry interface {
	Origin() Origin
	entry()
}

// RegistryEntry is a citation built from registry metadata.
type RegistryEntry struct {
	Record Record
}

// CitationFileEntry is a citation parsed from a CFF file in the repository.
type CitationFileEntry struct {
	Record     Record
	Repository string // repository URL the file was read from
	Filename   string
}

// RawEntry is a bibliography file from the repository, passed through verbatim.
type RawEntry struct {
	Text       string
	Repository string
	Filename   string
}

func (RegistryEntry) Origin() Origin     { return OriginRegistry }
func (CitationFileEntry) Origin() Origin { return OriginCitationFile }
func (RawEntry) Origin() Origin          { return OriginRaw }

func (RegistryEntry) entry()     {}
func (CitationFileEntry) entry() {}
func (RawEntry) entry()          {}
