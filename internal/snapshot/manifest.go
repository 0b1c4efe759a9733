package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Logical table names every snapshot set must declare.
const (
	TablePopulation = "population"
	TableBirths     = "births"
	TableCentres    = "centres"
	TablePostal     = "postal_codes"
	TableProjects   = "housing_projects"
	TableBoundaries = "boundaries"
)

var requiredTables = []string{
	TablePopulation,
	TableBirths,
	TableCentres,
	TablePostal,
	TableProjects,
	TableBoundaries,
}

// TableSpec declares one snapshot table: its logical name, the file holding
// it, and (for CSV tables) the exact column schema the file must carry.
type TableSpec struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Format  string   `yaml:"format"`
	Columns []string `yaml:"columns,omitempty"`
}

// Manifest is the declared schema for a snapshot directory. Loading fails
// fast when a file does not match its declaration.
type Manifest struct {
	Tables []TableSpec `yaml:"tables"`
}

// Spec returns the declaration for the named table, or nil if the manifest
// does not declare it.
func (m *Manifest) Spec(name string) *TableSpec {
	for i := range m.Tables {
		if m.Tables[i].Name == name {
			return &m.Tables[i]
		}
	}
	return nil
}

// LoadManifest reads and validates the snapshot manifest at path. Every
// required logical table must be declared exactly once.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, unavailable("manifest", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(b, &manifest); err != nil {
		return nil, unavailable("manifest", err)
	}

	seen := make(map[string]bool, len(manifest.Tables))
	for _, spec := range manifest.Tables {
		if seen[spec.Name] {
			return nil, unavailable("manifest", fmt.Errorf("table %q declared twice", spec.Name))
		}
		seen[spec.Name] = true
	}

	for _, name := range requiredTables {
		if !seen[name] {
			return nil, fmt.Errorf("table %q: %w: not declared in manifest", name, ErrDataUnavailable)
		}
	}

	return &manifest, nil
}
