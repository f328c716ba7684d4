package valuation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ChicagoDave/buildingvalue/pkg/structure"
	"github.com/ChicagoDave/buildingvalue/pkg/validation"
)

// Field names shared by the JSON/YAML tags, query strings and reports.
const (
	FieldArea             = "area"
	FieldCostPerPing      = "cost_per_ping"
	FieldAge              = "age"
	FieldStructureType    = "structure_type"
	FieldLandArea         = "land_area"
	FieldLandPricePerPing = "land_price_per_ping"
	FieldROIPercent       = "roi_percent"
)

// Normalize coerces every numeric field the engine cannot use to 0.
// Non-finite values are zeroed everywhere; negative values are zeroed in all
// fields except ROIPercent. A price whose product with its area overflows
// float64 is zeroed, as is an ROIPercent that would overflow the rent. Each
// coercion is reported as a warning.
func Normalize(in Inputs) (Inputs, *validation.Report) {
	report := validation.NewReport()

	nonNegative := []struct {
		field string
		value *float64
	}{
		{FieldArea, &in.Area},
		{FieldCostPerPing, &in.CostPerPing},
		{FieldAge, &in.Age},
		{FieldLandArea, &in.LandArea},
		{FieldLandPricePerPing, &in.LandPricePerPing},
	}
	for _, f := range nonNegative {
		v := *f.value
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			*f.value = 0
			report.AddWarning(zeroed(f.field, v, "is not a finite number", ">= 0"))
		case v < 0:
			*f.value = 0
			report.AddWarning(zeroed(f.field, v, "is negative", ">= 0"))
		}
	}

	if !finite(in.ROIPercent) {
		report.AddWarning(zeroed(FieldROIPercent, in.ROIPercent, "is not a finite number", "a finite percentage"))
		in.ROIPercent = 0
	}

	if !finite(in.Area * in.CostPerPing * CurrencyUnit) {
		report.AddWarning(zeroed(FieldCostPerPing, in.CostPerPing, "overflows the total building cost", "area × cost_per_ping × 10000 within float64 range"))
		in.CostPerPing = 0
	}
	if !finite(in.LandArea * in.LandPricePerPing * CurrencyUnit) {
		report.AddWarning(zeroed(FieldLandPricePerPing, in.LandPricePerPing, "overflows the total land value", "land_area × land_price_per_ping × 10000 within float64 range"))
		in.LandPricePerPing = 0
	}

	// Annual rent is bounded by land and building value at the full rate plus
	// the whole building cost; every derived figure stays finite under it.
	totalCost := in.Area * in.CostPerPing * CurrencyUnit
	landValue := in.LandArea * in.LandPricePerPing * CurrencyUnit
	rate := math.Abs(in.ROIPercent) / 100
	if !finite(landValue*rate + totalCost*rate + totalCost) {
		report.AddWarning(zeroed(FieldROIPercent, in.ROIPercent, "overflows the rent estimate", "a smaller percentage"))
		in.ROIPercent = 0
	}

	in.StructureType = structure.Type(strings.ToLower(strings.TrimSpace(string(in.StructureType))))

	return in, report
}

// ParseInputs builds Inputs from string values such as form fields or query
// parameters, keyed by the Field* names. Missing values become 0 and are
// reported as info; unparsable values become 0 and are reported as warnings.
// The result is already normalized.
func ParseInputs(values map[string]string) (Inputs, *validation.Report) {
	report := validation.NewReport()

	num := func(field string) float64 {
		raw, ok := values[field]
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			report.AddInfo(validation.Result{
				Level:   validation.LevelInput,
				Message: fmt.Sprintf("%s not provided; treated as 0", field),
				Field:   field,
			})
			return 0
		}
		v, err := parseNumber(raw)
		if err != nil {
			report.AddWarning(validation.Zeroed(field, raw, "is not a number", "a decimal number"))
			return 0
		}
		return v
	}

	in := Inputs{
		Area:             num(FieldArea),
		CostPerPing:      num(FieldCostPerPing),
		Age:              num(FieldAge),
		StructureType:    structure.Type(values[FieldStructureType]),
		LandArea:         num(FieldLandArea),
		LandPricePerPing: num(FieldLandPricePerPing),
		ROIPercent:       num(FieldROIPercent),
	}

	norm, normReport := Normalize(in)
	report.Merge(normReport)
	return norm, report
}

// parseNumber accepts plain decimals with optional thousands separators.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

// zeroed reports a numeric coercion. The actual value is kept as text so
// NaN and Inf survive JSON encoding.
func zeroed(field string, actual float64, why, expected string) validation.Result {
	return validation.Zeroed(field, strconv.FormatFloat(actual, 'g', -1, 64), why, expected)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
