package valuation

import "github.com/ChicagoDave/buildingvalue/pkg/structure"

// Inputs are the building and land parameters for one valuation.
// Money fields are in units of 10,000 per ping.
type Inputs struct {
	Area             float64        `yaml:"area" json:"area"`
	CostPerPing      float64        `yaml:"cost_per_ping" json:"cost_per_ping"`
	Age              float64        `yaml:"age" json:"age"`
	StructureType    structure.Type `yaml:"structure_type" json:"structure_type"`
	LandArea         float64        `yaml:"land_area" json:"land_area"`
	LandPricePerPing float64        `yaml:"land_price_per_ping" json:"land_price_per_ping"`
	ROIPercent       float64        `yaml:"roi_percent" json:"roi_percent"`
}

// YearPoint is one row of the depreciation schedule.
type YearPoint struct {
	Year                     int     `json:"year"`
	Depreciation             float64 `json:"depreciation"`
	Value                    float64 `json:"value"`
	YearlyDepreciationAmount float64 `json:"yearly_depreciation_amount"`
}

// Result is the full valuation output. Rent figures are monthly.
type Result struct {
	Inputs    Inputs        `json:"inputs"`
	Structure structure.Def `json:"structure"`
	LifeLimit int           `json:"life_limit"`

	TotalCost          float64 `json:"total_cost"`
	UsedRatio          float64 `json:"used_ratio"`
	DepreciationAmount float64 `json:"depreciation_amount"`
	ResidualValue      float64 `json:"residual_value"`
	LandTotalValue     float64 `json:"land_total_value"`

	RentFromLandROI              float64 `json:"rent_from_land_roi"`
	RentFromBuildingROI          float64 `json:"rent_from_building_roi"`
	RentFromBuildingCostRecovery float64 `json:"rent_from_building_cost_recovery"`
	LandRentSubtotal             float64 `json:"land_rent_subtotal"`
	BuildingRentSubtotal         float64 `json:"building_rent_subtotal"`
	TotalRent                    float64 `json:"total_rent"`

	YearlyData []YearPoint `json:"yearly_data"`
}

// StructureTable resolves a structure type to its definition.
// *structure.Table satisfies it.
type StructureTable interface {
	Lookup(key structure.Type) (structure.Def, error)
}
