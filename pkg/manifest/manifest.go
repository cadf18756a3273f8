package manifest

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jonaspleyer/crate2bib/pkg/errors"
)

// Manifest is the subset of a Cargo.toml crate2bib uses.
type Manifest struct {
	Name         string
	Version      string
	Dependencies []Dependency // sorted by name
}

// Dependency is a registry dependency declared in a manifest.
type Dependency struct {
	Name        string // crate name on crates.io (after "package" renames)
	Requirement string // version requirement as written
	Kind        string // "normal", "dev" or "build"
}

// Constraint returns the requirement in the form the version matcher
// expects. Cargo treats a bare version as a caret requirement, so one is
// added where no operator is present.
func (d Dependency) Constraint() string {
	req := strings.TrimSpace(d.Requirement)
	if req == "" || req == "*" {
		return req
	}
	if bare.MatchString(req) {
		return "^" + req
	}
	return req
}

// Constraint returns "=version" for the manifest's own package, or "" when
// the manifest has no version.
func (m *Manifest) Constraint() string {
	if m.Version == "" {
		return ""
	}
	return "=" + m.Version
}

var bare = regexp.MustCompile(`^\d`)

// Supports reports whether name is a Cargo manifest filename.
func Supports(name string) bool {
	return strings.EqualFold(filepath.Base(name), "Cargo.toml")
}

// Read parses the Cargo.toml at path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read manifest %s", path)
	}
	return Parse(data)
}

// Parse parses Cargo.toml content. Workspace-only manifests without a
// [package] table are accepted; Name is then empty. Dependencies that only
// point at a path or a git repository are skipped.
func Parse(data []byte) (*Manifest, error) {
	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid Cargo.toml")
	}

	m := &Manifest{
		Name:    cargo.Package.Name,
		Version: stringValue(cargo.Package.Version),
	}
	m.Dependencies = append(m.Dependencies, extractDeps(cargo.Dependencies, "normal")...)
	m.Dependencies = append(m.Dependencies, extractDeps(cargo.DevDependencies, "dev")...)
	m.Dependencies = append(m.Dependencies, extractDeps(cargo.BuildDependencies, "build")...)
	sort.SliceStable(m.Dependencies, func(i, j int) bool {
		return m.Dependencies[i].Name < m.Dependencies[j].Name
	})
	return m, nil
}

func extractDeps(table map[string]any, kind string) []Dependency {
	var deps []Dependency
	for name, spec := range table {
		switch v := spec.(type) {
		case string:
			deps = append(deps, Dependency{Name: name, Requirement: v, Kind: kind})
		case map[string]any:
			if _, ok := v["path"]; ok {
				continue
			}
			if _, ok := v["git"]; ok {
				continue
			}
			if pkg, ok := v["package"].(string); ok && pkg != "" {
				name = pkg
			}
			req, _ := v["version"].(string)
			deps = append(deps, Dependency{Name: name, Requirement: req, Kind: kind})
		}
	}
	return deps
}

// stringValue reads a field that is either a plain string or a
// { workspace = true } table. Inherited values are reported as "".
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"`
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}
