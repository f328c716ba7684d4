package valuation

const (
	// CurrencyUnit scales per-ping prices, which are quoted in units of 10,000.
	CurrencyUnit = 10000.0

	// SquareMetersPerPing converts the areal unit for display only.
	SquareMetersPerPing = 3.3058

	monthsPerYear = 12.0
)

// SquareMeters converts an area in ping to square meters.
func SquareMeters(ping float64) float64 {
	return ping * SquareMetersPerPing
}
