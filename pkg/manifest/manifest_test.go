package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaspleyer/crate2bib/pkg/errors"
)

const cargoToml = `[package]
name = "my-crate"
version = "0.1.0"
repository = "https://github.com/me/my-crate"

[dependencies]
serde = "1.0"
tokio = { version = ">=1.38, <2", features = ["full"] }
local = { path = "../local" }
forked = { git = "https://github.com/me/forked" }
renamed = { package = "serde_json", version = "1.0.100" }

[dev-dependencies]
pretty_assertions = "1.4.1"

[build-dependencies]
cc = "*"
`

func TestSupports(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"Cargo.toml", true},
		{"cargo.toml", true},
		{"some/dir/CARGO.TOML", true},
		{"package.json", false},
		{"Cargo.lock", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(cargoToml), 0o644))

	m, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "my-crate", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, "=0.1.0", m.Constraint())

	want := []Dependency{
		{Name: "cc", Requirement: "*", Kind: "build"},
		{Name: "pretty_assertions", Requirement: "1.4.1", Kind: "dev"},
		{Name: "serde", Requirement: "1.0", Kind: "normal"},
		{Name: "serde_json", Requirement: "1.0.100", Kind: "normal"},
		{Name: "tokio", Requirement: ">=1.38, <2", Kind: "normal"},
	}
	assert.Equal(t, want, m.Dependencies)
}

func TestDependencyConstraint(t *testing.T) {
	tests := []struct {
		req  string
		want string
	}{
		{"1.0", "^1.0"},
		{"1.0.100", "^1.0.100"},
		{"=1.0.100", "=1.0.100"},
		{"~0.3", "~0.3"},
		{">=1.38, <2", ">=1.38, <2"},
		{"*", "*"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Dependency{Requirement: tt.req}.Constraint(), tt.req)
	}
}

func TestParseWorkspaceInheritance(t *testing.T) {
	m, err := Parse([]byte("[package]\nname = \"member\"\nversion.workspace = true\n"))
	require.NoError(t, err)
	assert.Equal(t, "member", m.Name)
	assert.Equal(t, "", m.Version)
	assert.Equal(t, "", m.Constraint())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("[package\nname = 1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeParse))

	_, err = Read(filepath.Join(t.TempDir(), "missing", "Cargo.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
