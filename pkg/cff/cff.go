package cff

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/jonaspleyer/crate2bib/pkg/citation"
	"github.com/jonaspleyer/crate2bib/pkg/errors"
)

const dateLayout = "2006-01-02"

type document struct {
	CFFVersion         string   `yaml:"cff-version"`
	Message            string   `yaml:"message"`
	Title              string   `yaml:"title"`
	Type               string   `yaml:"type"`
	Version            string   `yaml:"version"`
	DateReleased       string   `yaml:"date-released"`
	Abstract           string   `yaml:"abstract"`
	URL                string   `yaml:"url"`
	Repository         string   `yaml:"repository"`
	RepositoryCode     string   `yaml:"repository-code"`
	RepositoryArtifact string   `yaml:"repository-artifact"`
	License            license  `yaml:"license"`
	Authors            []author `yaml:"authors"`
}

type author struct {
	GivenNames   string `yaml:"given-names"`
	FamilyNames  string `yaml:"family-names"`
	NameParticle string `yaml:"name-particle"`
	NameSuffix   string `yaml:"name-suffix"`
	Name         string `yaml:"name"`
	ORCID        string `yaml:"orcid"`
	Affiliation  string `yaml:"affiliation"`
}

func (a author) isPerson() bool {
	return a.GivenNames != "" || a.FamilyNames != "" || a.NameParticle != "" || a.NameSuffix != ""
}

// toCitation maps a CFF author. Only an explicit "anonymous" name yields an
// anonymous author; an entry with neither a person nor an entity name falls
// back to its affiliation, and is skipped when that is empty too.
func (a author) toCitation() (citation.Author, bool) {
	name := strings.TrimSpace(a.Name)
	switch {
	case a.isPerson():
		return citation.Author{
			Kind:     citation.Person,
			Given:    a.GivenNames,
			Particle: a.NameParticle,
			Family:   a.FamilyNames,
			Suffix:   a.NameSuffix,
			ORCID:    a.ORCID,
		}, true
	case strings.EqualFold(name, "anonymous"):
		return citation.Author{Kind: citation.Anonymous}, true
	case name != "":
		return citation.Author{Kind: citation.Entity, Name: a.Name, ORCID: a.ORCID}, true
	case strings.TrimSpace(a.Affiliation) != "":
		return citation.Author{Kind: citation.Entity, Name: strings.TrimSpace(a.Affiliation), ORCID: a.ORCID}, true
	default:
		return citation.Author{}, false
	}
}

// license accepts either a single SPDX identifier or a list of alternatives.
type license []string

func (l *license) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = license{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	}
	return fmt.Errorf("line %d: license must be a string or a list of strings", value.Line)
}

// Parse reads a CFF document.
//
// A document that is not valid YAML, whose top level is not a mapping, or
// whose fields have the wrong shape (authors not a list, for instance)
// yields a PARSE_ERROR. Missing fields are never an error. A version that
// is not strict semver, or a release date that is not YYYY-MM-DD, is dropped.
func Parse(data []byte) (citation.Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return citation.Record{}, errors.Wrap(errors.ErrCodeParse, err, "invalid citation file")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return citation.Record{}, errors.New(errors.ErrCodeParse, "invalid citation file: empty document")
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return citation.Record{}, errors.New(errors.ErrCodeParse, "invalid citation file: top level is not a mapping")
	}

	var doc document
	if err := root.Content[0].Decode(&doc); err != nil {
		return citation.Record{}, errors.Wrap(errors.ErrCodeParse, err, "invalid citation file")
	}
	return doc.record(), nil
}

func (d document) record() citation.Record {
	rec := citation.Record{
		Type:     citation.ParseWorkType(d.Type),
		Title:    strings.TrimSpace(d.Title),
		Abstract: strings.TrimSpace(d.Abstract),
		URL:      firstNonEmpty(d.URL, d.Repository, d.RepositoryCode, d.RepositoryArtifact),
		License:  citation.License(d.License),
	}
	if len(rec.License) == 0 {
		rec.License = nil
	}

	for _, a := range d.Authors {
		if au, ok := a.toCitation(); ok {
			rec.Authors = append(rec.Authors, au)
		}
	}

	if v, err := semver.StrictNewVersion(strings.TrimSpace(d.Version)); err == nil {
		rec.Version = v
	}
	if t, err := time.Parse(dateLayout, strings.TrimSpace(d.DateReleased)); err == nil {
		rec.Date = t
	}

	rec.Key = citation.MakeKey(citation.KeyStem(rec.Authors, rec.Title), rec.Date)
	return rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
