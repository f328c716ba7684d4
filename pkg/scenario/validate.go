package scenario

import (
	"errors"
	"fmt"

	"github.com/ChicagoDave/buildingvalue/pkg/structure"
	"github.com/ChicagoDave/buildingvalue/pkg/validation"
	"github.com/ChicagoDave/buildingvalue/pkg/valuation"
)

// Validate checks a project before it is evaluated. Unknown structure types
// are errors; everything the engine would coerce is a warning.
func Validate(p *Project, table valuation.StructureTable) *validation.Report {
	r := validation.NewReport()

	validateInputs("inputs", p.Inputs, table, r)
	for i, s := range p.Scenarios {
		validateInputs(validation.Path(validation.Index("scenarios", i), "inputs"), s.Inputs, table, r)
	}

	return r
}

func validateInputs(path string, in valuation.Inputs, table valuation.StructureTable, r *validation.Report) {
	norm, normReport := valuation.Normalize(in)
	r.MergeAt(path, normReport)

	def, err := table.Lookup(norm.StructureType)
	if err != nil {
		res := validation.Result{
			Level:       validation.LevelConfig,
			Message:     err.Error(),
			Field:       validation.Path(path, valuation.FieldStructureType),
			ActualValue: string(in.StructureType),
		}
		if errors.Is(err, structure.ErrUnknownType) {
			res.Expected = "a key from the structure table"
			res.Suggestions = []string{"Run `buildingvalue structures` to list valid keys"}
		}
		r.AddError(res)
		return
	}

	if norm.Area == 0 || norm.CostPerPing == 0 {
		r.AddInfo(validation.Result{
			Level:   validation.LevelInput,
			Message: "building cost is 0; depreciation and building rent will be 0",
			Field:   path,
		})
	}
	if norm.Age >= float64(def.LifeLimitYears) {
		r.AddInfo(validation.Result{
			Level:       validation.LevelInput,
			Message:     fmt.Sprintf("age %.1f reaches the %d-year life limit of %s; no cost recovery rent", norm.Age, def.LifeLimitYears, def.DisplayName),
			Field:       validation.Path(path, valuation.FieldAge),
			ActualValue: norm.Age,
		})
	}
}
