package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChicagoDave/buildingvalue/pkg/structure"
)

func TestLoadProject(t *testing.T) {
	p, err := LoadProject("../../examples/corner-shop")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if p.Name != "Corner shop" {
		t.Errorf("name = %q, want %q", p.Name, "Corner shop")
	}
	if p.Inputs.Area != 64 {
		t.Errorf("area = %v, want 64", p.Inputs.Area)
	}
	if p.Inputs.CostPerPing != 15 {
		t.Errorf("cost_per_ping = %v, want 15", p.Inputs.CostPerPing)
	}
	if p.Inputs.StructureType != structure.ReinforcedConcrete {
		t.Errorf("structure_type = %q, want %q", p.Inputs.StructureType, structure.ReinforcedConcrete)
	}
	if p.Inputs.LandPricePerPing != 50 {
		t.Errorf("land_price_per_ping = %v, want 50", p.Inputs.LandPricePerPing)
	}
	if p.Inputs.ROIPercent != 3 {
		t.Errorf("roi_percent = %v, want 3", p.Inputs.ROIPercent)
	}
	if len(p.Scenarios) != 3 {
		t.Fatalf("scenarios = %d, want 3", len(p.Scenarios))
	}
	if p.Scenarios[1].Inputs.StructureType != structure.ReinforcedBrick {
		t.Errorf("scenario 2 structure = %q, want reinforced-brick", p.Scenarios[1].Inputs.StructureType)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFile)
	if err := os.WriteFile(path, []byte("inputs: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestAll(t *testing.T) {
	p := &Project{
		Scenarios: []Scenario{{Name: "older"}, {}},
	}
	all := p.All()
	if len(all) != 3 {
		t.Fatalf("All() = %d scenarios, want 3", len(all))
	}
	if all[0].Name != BaseName {
		t.Errorf("unnamed base = %q, want %q", all[0].Name, BaseName)
	}
	if all[1].Name != "older" {
		t.Errorf("all[1] = %q, want %q", all[1].Name, "older")
	}
	if all[2].Name != "scenario 2" {
		t.Errorf("unnamed scenario = %q, want %q", all[2].Name, "scenario 2")
	}
	if p.Scenarios[1].Name != "" {
		t.Error("All must not rename the project's scenarios in place")
	}
}
