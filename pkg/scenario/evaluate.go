package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

// DefaultWorkers bounds concurrent evaluations when the caller passes 0.
const DefaultWorkers = 4

// Outcome pairs a scenario with its valuation.
type Outcome struct {
	Name   string            `json:"name"`
	Result *valuation.Result `json:"result"`
}

// Evaluate computes every scenario concurrently and returns outcomes in input
// order. The first failure cancels the remaining work and is returned.
func Evaluate(ctx context.Context, table valuation.StructureTable, scenarios []Scenario, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	outcomes := make([]Outcome, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := valuation.Compute(table, s.Inputs)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			outcomes[i] = Outcome{Name: s.Name, Result: r}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
