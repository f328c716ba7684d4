package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

// ProjectFile is the file LoadProject looks for in a project directory.
const ProjectFile = "property.yaml"

// BaseName names the project's own inputs when they have no name.
const BaseName = "base"

// Project is a property with its base inputs and optional what-if variants.
type Project struct {
	Name      string           `yaml:"name" json:"name"`
	Inputs    valuation.Inputs `yaml:"inputs" json:"inputs"`
	Scenarios []Scenario       `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one named set of inputs.
type Scenario struct {
	Name   string           `yaml:"name" json:"name"`
	Inputs valuation.Inputs `yaml:"inputs" json:"inputs"`
}

// Load reads a project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads a project from a directory.
// It looks for property.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// All returns the base inputs followed by every what-if scenario.
func (p *Project) All() []Scenario {
	name := p.Name
	if name == "" {
		name = BaseName
	}
	out := make([]Scenario, 0, len(p.Scenarios)+1)
	out = append(out, Scenario{Name: name, Inputs: p.Inputs})
	for i, s := range p.Scenarios {
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		out = append(out, s)
	}
	return out
}
