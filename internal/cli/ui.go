package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonaspleyer/crate2bib/internal/server"
	"github.com/jonaspleyer/crate2bib/pkg/biblatex"
	"github.com/jonaspleyer/crate2bib/pkg/citation"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	// Provenance labels, one colour per origin.
	styleRegistry     = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleCitationFile = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleRaw          = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// =============================================================================
// Entry Output
// =============================================================================

// printEntries writes entries to stdout, each preceded by a provenance label
// on stderr and separated by a blank line. With --json the API response shape
// is printed instead and no labels are written.
func (c *CLI) printEntries(entries []citation.Entry) error {
	if c.asJSON {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(apiEntries(entries))
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(c.stdout)
		}
		fmt.Fprintln(c.stderr, provenance(e))
		fmt.Fprintln(c.stdout, biblatex.Format(e))
	}
	return nil
}

func apiEntries(entries []citation.Entry) []server.Entry {
	out := make([]server.Entry, len(entries))
	for i, e := range entries {
		out[i] = server.Entry{Origin: e.Origin(), BibLaTeX: biblatex.Format(e)}
	}
	return out
}

// provenance renders "% <origin>" plus, for repository files, where the
// file was found. The leading % keeps the label a BibLaTeX comment when
// stderr and stdout are merged.
func provenance(e citation.Entry) string {
	origin := string(e.Origin())
	switch e := e.(type) {
	case citation.CitationFileEntry:
		return "% " + styleCitationFile.Render(origin) + " " + StyleDim.Render(source(e.Repository, e.Filename))
	case citation.RawEntry:
		return "% " + styleRaw.Render(origin) + " " + StyleDim.Render(source(e.Repository, e.Filename))
	default:
		return "% " + styleRegistry.Render(origin)
	}
}

func source(repo, filename string) string {
	return repo + " " + iconArrow + " " + filename
}
