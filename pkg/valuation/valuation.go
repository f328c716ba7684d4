package valuation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/buildingvalue/pkg/structure"
)

// Default computes a valuation against the built-in structure table.
func Default(in Inputs) (*Result, error) {
	return Compute(structure.Default(), in)
}

// Compute runs the straight-line depreciation and rent estimate.
//
// Numeric inputs are normalized first (see Normalize), so the only failure is
// a structure type the table cannot resolve. Compute has no side effects and
// returns either a complete Result or an error, never both.
func Compute(table StructureTable, in Inputs) (*Result, error) {
	in, _ = Normalize(in)

	def, err := table.Lookup(in.StructureType)
	if err != nil {
		return nil, fmt.Errorf("resolving life limit: %w", err)
	}
	if def.LifeLimitYears <= 0 {
		return nil, fmt.Errorf("resolving life limit: %w", &structure.ConfigurationError{
			Key:    def.Key,
			Reason: fmt.Sprintf("life_limit_years must be > 0, got %d", def.LifeLimitYears),
			Err:    structure.ErrInvalidTable,
		})
	}

	lifeLimit := float64(def.LifeLimitYears)
	roi := in.ROIPercent / 100

	totalCost := in.Area * in.CostPerPing * CurrencyUnit
	usedRatio := math.Min(in.Age/lifeLimit, 1)
	residual := math.Max(0, totalCost*(1-usedRatio))
	depreciation := totalCost - residual

	landValue := in.LandArea * in.LandPricePerPing * CurrencyUnit

	rentLand := landValue * roi / monthsPerYear
	rentBuilding := residual * roi / monthsPerYear

	// Cost recovery stops outright once the building reaches its life limit.
	rentRecovery := 0.0
	if in.Age < lifeLimit {
		rentRecovery = totalCost / lifeLimit / monthsPerYear
	}

	buildingSubtotal := rentBuilding + rentRecovery

	return &Result{
		Inputs:    in,
		Structure: def,
		LifeLimit: def.LifeLimitYears,

		TotalCost:          totalCost,
		UsedRatio:          usedRatio,
		DepreciationAmount: depreciation,
		ResidualValue:      residual,
		LandTotalValue:     landValue,

		RentFromLandROI:              rentLand,
		RentFromBuildingROI:          rentBuilding,
		RentFromBuildingCostRecovery: rentRecovery,
		LandRentSubtotal:             rentLand,
		BuildingRentSubtotal:         buildingSubtotal,
		TotalRent:                    rentLand + buildingSubtotal,

		YearlyData: schedule(totalCost, def.LifeLimitYears),
	}, nil
}

// schedule builds lifeLimit+1 straight-line rows, year 0 through lifeLimit.
func schedule(totalCost float64, lifeLimit int) []YearPoint {
	limit := float64(lifeLimit)
	perYear := totalCost / limit

	points := make([]YearPoint, 0, lifeLimit+1)
	for year := 0; year <= lifeLimit; year++ {
		dep := math.Min(float64(year)/limit, 1) * totalCost
		points = append(points, YearPoint{
			Year:                     year,
			Depreciation:             dep,
			Value:                    totalCost - dep,
			YearlyDepreciationAmount: perYear,
		})
	}
	return points
}

// PointAt returns the schedule row for a building of the given age. Fractional
// ages round down; ages outside the schedule clamp to its ends.
func (r *Result) PointAt(age float64) YearPoint {
	if len(r.YearlyData) == 0 {
		return YearPoint{}
	}
	if math.IsNaN(age) || age < 0 {
		return r.YearlyData[0]
	}
	idx := int(math.Min(math.Floor(age), float64(len(r.YearlyData)-1)))
	return r.YearlyData[idx]
}

// AnnualRent returns TotalRent over a full year.
func (r *Result) AnnualRent() float64 {
	return r.TotalRent * monthsPerYear
}
