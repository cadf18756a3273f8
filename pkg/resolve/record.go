package resolve

import (
	"strings"

	"github.com/jonaspleyer/crate2bib/pkg/citation"
	"github.com/jonaspleyer/crate2bib/pkg/integrations/crates"
	"github.com/jonaspleyer/crate2bib/pkg/version"
)

// RegistryRecord builds the citation for the selected release of crate.
//
// The author is the publisher's display name, or login when no name is set.
// The key is the second word of the publisher's display name followed by the
// release year. Publishers without a multi-word display name get the crate
// name instead.
func RegistryRecord(crate *crates.Crate, selected version.Selected[crates.Version]) citation.Record {
	v := selected.Candidate
	date := v.PublishedAt()

	rec := citation.Record{
		Type:     citation.Software,
		Title:    crate.Name,
		Abstract: strings.Join(strings.Fields(crate.Description), " "),
		Version:  selected.Version,
		Date:     date,
		URL:      strings.TrimSpace(crate.Repository),
	}
	if v.License != "" {
		rec.License = citation.License{v.License}
	}

	stem := crate.Name
	if p := v.PublishedBy; p != nil {
		author := p.Name
		if author == "" {
			author = p.Login
		}
		if author != "" {
			rec.Authors = []citation.Author{{Kind: citation.Entity, Name: author}}
		}
		if words := strings.Fields(p.Name); len(words) > 1 {
			stem = words[1]
		}
	}
	rec.Key = citation.MakeKey(stem, date)
	return rec
}
