package engine

import (
	"fmt"

	"github.com/Simplici0/indcalc/internal/format"
)

// BEPInput holds the cost structure for break-even analysis.
type BEPInput struct {
	FixedCost    float64
	Price        float64 // per unit
	VariableCost float64 // per unit
}

// BEPResult is the break-even volume and the revenue at that volume.
type BEPResult struct {
	Units   float64
	Revenue float64
}

// Rounded returns r rounded to two decimals.
func (r BEPResult) Rounded() BEPResult {
	return BEPResult{Units: format.Round2(r.Units), Revenue: format.Round2(r.Revenue)}
}

// BreakEven computes FC/(P-VC) and the matching revenue.
func BreakEven(in BEPInput) (BEPResult, error) {
	if !finite(in.FixedCost, in.Price, in.VariableCost) ||
		in.FixedCost < 0 || in.Price <= 0 || in.VariableCost < 0 {
		return BEPResult{}, fmt.Errorf("fixed cost %v, price %v, variable cost %v out of range: %w",
			in.FixedCost, in.Price, in.VariableCost, ErrDomain)
	}
	margin := in.Price - in.VariableCost
	if margin <= 0 {
		return BEPResult{}, fmt.Errorf("price %v not above variable cost %v: %w", in.Price, in.VariableCost, ErrMargin)
	}

	units := in.FixedCost / margin
	revenue := units * in.Price
	if !finite(units, revenue) {
		return BEPResult{}, fmt.Errorf("break-even of fixed cost %v overflows: %w", in.FixedCost, ErrDomain)
	}
	return BEPResult{Units: units, Revenue: revenue}, nil
}
