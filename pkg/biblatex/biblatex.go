package biblatex

import (
	"fmt"
	"strings"

	"github.com/jonaspleyer/crate2bib/pkg/citation"
)

const indent = "    "

// Format renders e.
func Format(e citation.Entry) string {
	switch e := e.(type) {
	case citation.RegistryEntry:
		return FormatRecord(e.Record)
	case citation.CitationFileEntry:
		return FormatRecord(e.Record)
	case citation.RawEntry:
		return e.Text
	case nil:
		return ""
	default:
		panic(fmt.Sprintf("biblatex: unknown entry type %T", e))
	}
}

// FormatAll renders entries in order, separated by a blank line.
func FormatAll(entries []citation.Entry) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = Format(e)
	}
	return strings.Join(out, "\n\n")
}

// FormatRecord renders a single record.
func FormatRecord(r citation.Record) string {
	var b strings.Builder

	workType := r.Type
	if workType == "" {
		workType = citation.Software
	}
	fmt.Fprintf(&b, "@%s {%s,\n", workType, r.Key)

	field(&b, "author", citation.JoinAuthors(r.Authors))
	field(&b, "title", Title(r))
	if r.URL != "" {
		field(&b, "url", r.URL)
	}
	if !r.Date.IsZero() {
		field(&b, "date", fmt.Sprintf("%04d-%02d-%02d", r.Date.Year(), r.Date.Month(), r.Date.Day()))
	}
	if r.Version != nil {
		field(&b, "version", r.Version.String())
	}
	if l, ok := citation.FormatLicense(r.License); ok {
		field(&b, "license", l)
	}

	b.WriteString("}")
	return b.String()
}

// Title returns the title field value: the name in braces to keep its
// capitalization, followed by ": <abstract>" when there is one.
func Title(r citation.Record) string {
	switch {
	case r.Title == "":
		return r.Abstract
	case r.Abstract == "":
		return "{" + r.Title + "}"
	default:
		return "{" + r.Title + "}: " + r.Abstract
	}
}

func field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "%s%s = {%s},\n", indent, name, value)
}
