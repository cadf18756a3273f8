package resolve

import (
	"path"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/jonaspleyer/crate2bib/pkg/cff"
	"github.com/jonaspleyer/crate2bib/pkg/citation"
	"github.com/jonaspleyer/crate2bib/pkg/scan"
)

// Kind is how a found repository file is interpreted.
type Kind int

const (
	KindCFF Kind = iota
	KindRaw
)

// Classify decides how to read a repository file. ".cff" files are CFF,
// ".bib" files and files whose first non-blank character is '@' are raw
// bibliography; anything else is tried as CFF.
func Classify(filename, content string) Kind {
	switch strings.ToLower(path.Ext(filename)) {
	case ".cff":
		return KindCFF
	case ".bib":
		return KindRaw
	}
	if strings.HasPrefix(strings.TrimLeftFunc(content, unicode.IsSpace), "@") {
		return KindRaw
	}
	return KindCFF
}

// classify turns a found file into an entry. A file that should be CFF but
// fails to parse yields nil.
func classify(logger *log.Logger, file *scan.File) citation.Entry {
	logger = logger.With("file", file.Filename, "branch", file.Branch)

	if Classify(file.Filename, file.Content) == KindRaw {
		logger.Debug("found bibliography file")
		return citation.RawEntry{Text: file.Content, Repository: file.Repository, Filename: file.Filename}
	}

	rec, err := cff.Parse([]byte(file.Content))
	if err != nil {
		logger.Warn("ignoring unparseable citation file", "err", err)
		return nil
	}
	logger.Debug("found citation file", "key", rec.Key)
	return citation.CitationFileEntry{Record: rec, Repository: file.Repository, Filename: file.Filename}
}
