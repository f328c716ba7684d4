package scenario

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ChicagoDave/buildingvalue/pkg/structure"
	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

func ageScenarios(n int) []Scenario {
	out := make([]Scenario, n)
	for i := range out {
		out[i] = Scenario{
			Name: fmt.Sprintf("age %d", i),
			Inputs: valuation.Inputs{
				Area:             64,
				CostPerPing:      15,
				Age:              float64(i),
				StructureType:    structure.ReinforcedConcrete,
				LandArea:         64,
				LandPricePerPing: 50,
				ROIPercent:       3,
			},
		}
	}
	return out
}

func TestEvaluatePreservesOrder(t *testing.T) {
	scenarios := ageScenarios(25)
	outcomes, err := Evaluate(context.Background(), structure.Default(), scenarios, 3)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(outcomes) != len(scenarios) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(scenarios))
	}
	for i, o := range outcomes {
		if o.Name != scenarios[i].Name {
			t.Errorf("outcome %d = %q, want %q", i, o.Name, scenarios[i].Name)
		}
		if o.Result.Inputs.Age != float64(i) {
			t.Errorf("outcome %d computed age %v", i, o.Result.Inputs.Age)
		}
	}
}

func TestEvaluateMatchesSequential(t *testing.T) {
	scenarios := ageScenarios(8)
	outcomes, err := Evaluate(context.Background(), structure.Default(), scenarios, 0)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i, s := range scenarios {
		want, err := valuation.Default(s.Inputs)
		if err != nil {
			t.Fatal(err)
		}
		if outcomes[i].Result.TotalRent != want.TotalRent {
			t.Errorf("%s: total rent = %v, want %v", s.Name, outcomes[i].Result.TotalRent, want.TotalRent)
		}
	}
}

func TestEvaluateConfigurationError(t *testing.T) {
	scenarios := ageScenarios(5)
	scenarios[3].Inputs.StructureType = "straw"

	outcomes, err := Evaluate(context.Background(), structure.Default(), scenarios, 2)
	if err == nil {
		t.Fatal("expected error for unknown structure type")
	}
	if outcomes != nil {
		t.Error("no partial outcomes on failure")
	}
	if !errors.Is(err, structure.ErrUnknownType) {
		t.Errorf("error %v should wrap ErrUnknownType", err)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, structure.Default(), ageScenarios(4), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestEvaluateEmpty(t *testing.T) {
	outcomes, err := Evaluate(context.Background(), structure.Default(), nil, 2)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("got %d outcomes, want 0", len(outcomes))
	}
}
