package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/buildingvalue/pkg/scenario"
	"github.com/ChicagoDave/buildingvalue/pkg/validation"
	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

// inputFlags holds raw flag text so bad numbers degrade to 0 like any other
// input path instead of failing flag parsing.
type inputFlags struct {
	area, cost, age, structureType, landArea, landPrice, roi string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.area, "area", "", "Building floor area in ping")
	cmd.Flags().StringVar(&f.cost, "cost", "", "Construction cost per ping (x10,000)")
	cmd.Flags().StringVar(&f.age, "age", "", "Building age in years")
	cmd.Flags().StringVar(&f.structureType, "type", "reinforced-concrete", "Structure type key")
	cmd.Flags().StringVar(&f.landArea, "land-area", "", "Land area in ping")
	cmd.Flags().StringVar(&f.landPrice, "land-price", "", "Land price per ping (x10,000)")
	cmd.Flags().StringVar(&f.roi, "roi", "", "Desired annual return in percent")
}

func (f inputFlags) values() map[string]string {
	values := map[string]string{valuation.FieldStructureType: f.structureType}
	for field, raw := range map[string]string{
		valuation.FieldArea:             f.area,
		valuation.FieldCostPerPing:      f.cost,
		valuation.FieldAge:              f.age,
		valuation.FieldLandArea:         f.landArea,
		valuation.FieldLandPricePerPing: f.landPrice,
		valuation.FieldROIPercent:       f.roi,
	} {
		if raw != "" {
			values[field] = raw
		}
	}
	return values
}

// resolveInputs reads a project when a path is given, otherwise the flags.
func (a *app) resolveInputs(args []string, flags inputFlags) (valuation.Inputs, *validation.Report, error) {
	if len(args) == 0 {
		in, report := valuation.ParseInputs(flags.values())
		return in, report, nil
	}

	project, report, err := a.loadProject(args[0])
	if err != nil {
		return valuation.Inputs{}, report, err
	}
	return project.Inputs, report, nil
}

// loadProject loads and validates a project directory.
func (a *app) loadProject(projectPath string) (*scenario.Project, *validation.Report, error) {
	project, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	report := scenario.Validate(project, a.table)
	if !report.Valid {
		return nil, report, fmt.Errorf("project has validation errors")
	}
	return project, report, nil
}

func (a *app) runCompute(w io.Writer, args []string, flags inputFlags) error {
	in, report, err := a.resolveInputs(args, flags)
	if err != nil {
		printReport(w, report)
		return err
	}

	result, err := valuation.Compute(a.table, in)
	if err != nil {
		return err
	}

	if a.jsonOutput {
		return writeJSON(w, map[string]any{
			"result":     result,
			"validation": report,
		})
	}

	fmt.Fprint(w, formatSummary(result))
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, formatReport(report))
	}
	return nil
}

func (a *app) runSchedule(w io.Writer, args []string, flags inputFlags) error {
	in, report, err := a.resolveInputs(args, flags)
	if err != nil {
		printReport(w, report)
		return err
	}

	result, err := valuation.Compute(a.table, in)
	if err != nil {
		return err
	}

	if a.jsonOutput {
		return writeJSON(w, result.YearlyData)
	}
	fmt.Fprint(w, formatSchedule(result))
	return nil
}

func (a *app) runScenarios(ctx context.Context, w io.Writer, projectPath string) error {
	project, report, err := a.loadProject(projectPath)
	if err != nil {
		printReport(w, report)
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	outcomes, err := scenario.Evaluate(ctx, a.table, project.All(), a.cfg.ScenarioWorkers)
	if err != nil {
		return fmt.Errorf("evaluating scenarios: %w", err)
	}

	if a.jsonOutput {
		return writeJSON(w, outcomes)
	}
	fmt.Fprint(w, formatScenarios(project.Name, outcomes))
	return nil
}

func (a *app) runStructures(w io.Writer) error {
	defs := a.table.Defs()
	if a.jsonOutput {
		return writeJSON(w, defs)
	}
	fmt.Fprint(w, formatStructures(defs))
	return nil
}

func printReport(w io.Writer, report *validation.Report) {
	if report != nil && !report.Empty() {
		fmt.Fprint(w, formatReport(report))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
