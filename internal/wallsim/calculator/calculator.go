// Package calculator converts linear wall progress into ice volume and cost.
// All arithmetic is exact decimal; rounding to two places happens only at
// presentation boundaries, never during accumulation.
package calculator

import "github.com/shopspring/decimal"

var (
	// IcePerFoot is the cubic yards of ice required per linear foot of wall.
	IcePerFoot = decimal.RequireFromString("195")
	// CostPerCubicYard is the cost in Gold Dragons per cubic yard of ice.
	CostPerCubicYard = decimal.RequireFromString("1900")
)

// IceForFeet returns the ice usage in cubic yards for the given feet built.
func IceForFeet(feet decimal.Decimal) decimal.Decimal {
	return feet.Mul(IcePerFoot)
}

// CostForIce returns the cost in Gold Dragons for the given ice usage.
func CostForIce(ice decimal.Decimal) decimal.Decimal {
	return ice.Mul(CostPerCubicYard)
}

// ForFeet computes both ice usage and cost for the given feet built.
func ForFeet(feet decimal.Decimal) (ice decimal.Decimal, cost decimal.Decimal) {
	ice = IceForFeet(feet)
	cost = CostForIce(ice)
	return ice, cost
}
