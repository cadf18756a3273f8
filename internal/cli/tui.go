package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cerrors "github.com/jonaspleyer/crate2bib/pkg/errors"
	"github.com/jonaspleyer/crate2bib/pkg/resolve"
)

// Prompt styles
var (
	promptLabelStyle   = lipgloss.NewStyle().Foreground(colorDim).Width(9)
	promptFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Width(9)
	promptErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

const promptCursor = "▏"

type promptField int

const (
	fieldCrate promptField = iota
	fieldVersion
)

// =============================================================================
// PromptModel - Interactive crate and version input
// =============================================================================

// PromptModel is the bubbletea model asking for a crate name and an optional
// version requirement.
type PromptModel struct {
	Values    [2]string
	Focus     promptField
	Err       string
	Done      bool
	Cancelled bool
}

// NewPromptModel creates a prompt with crate pre-filled. When a crate is
// given, focus starts on the version field.
func NewPromptModel(crate string) PromptModel {
	m := PromptModel{}
	m.Values[fieldCrate] = crate
	if crate != "" {
		m.Focus = fieldVersion
	}
	return m
}

// Request returns the entered crate and version.
func (m PromptModel) Request() resolve.Request {
	return resolve.Request{
		Crate:   strings.TrimSpace(m.Values[fieldCrate]),
		Version: strings.TrimSpace(m.Values[fieldVersion]),
	}
}

func (m PromptModel) Init() tea.Cmd {
	return nil
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Cancelled = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.Focus = 1 - m.Focus
	case tea.KeyEnter:
		if m.Focus == fieldCrate {
			m.Focus = fieldVersion
			return m, nil
		}
		if err := cerrors.ValidateCrateName(m.Request().Crate); err != nil {
			m.Err = cerrors.UserMessage(err)
			m.Focus = fieldCrate
			return m, nil
		}
		m.Done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		v := []rune(m.Values[m.Focus])
		if len(v) > 0 {
			m.Values[m.Focus] = string(v[:len(v)-1])
		}
	case tea.KeySpace:
		m.Values[m.Focus] += " "
	case tea.KeyRunes:
		m.Values[m.Focus] += string(key.Runes)
	default:
		return m, nil
	}
	m.Err = ""
	return m, nil
}

func (m PromptModel) View() string {
	if m.Done || m.Cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Cite a crate"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab switch field  ⏎ confirm  esc quit"))
	b.WriteString("\n\n")

	labels := [2]string{"crate", "version"}
	for i, label := range labels {
		f := promptField(i)
		value := m.Values[f]
		if f == m.Focus {
			b.WriteString(promptFocusedStyle.Render(label))
			b.WriteString(StyleValue.Render(value) + promptCursor)
		} else {
			b.WriteString(promptLabelStyle.Render(label))
			if value == "" && f == fieldVersion {
				value = "latest"
			}
			b.WriteString(StyleDim.Render(value))
		}
		b.WriteString("\n")
	}

	if m.Err != "" {
		b.WriteString("\n")
		b.WriteString(promptErrorStyle.Render(m.Err))
		b.WriteString("\n")
	}
	return b.String()
}
