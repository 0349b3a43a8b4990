package engine

import (
	"fmt"
	"math"

	"github.com/Simplici0/indcalc/internal/format"
)

// EOQInput holds the inventory parameters of the EOQ model.
type EOQInput struct {
	Demand       float64 // annual demand D
	OrderingCost float64 // cost per order S
	HoldingCost  float64 // holding cost per unit per year H
}

// EOQResult is the economic order quantity in units per order.
type EOQResult struct {
	Quantity float64
}

// Rounded returns r rounded to two decimals.
func (r EOQResult) Rounded() EOQResult {
	return EOQResult{Quantity: format.Round2(r.Quantity)}
}

// EOQ computes sqrt(2DS/H).
func EOQ(in EOQInput) (EOQResult, error) {
	if !finite(in.Demand, in.OrderingCost, in.HoldingCost) {
		return EOQResult{}, fmt.Errorf("eoq inputs must be finite: %w", ErrDomain)
	}
	if in.HoldingCost <= 0 {
		return EOQResult{}, fmt.Errorf("holding cost %v must be positive: %w", in.HoldingCost, ErrDomain)
	}

	radicand := 2 * in.Demand * in.OrderingCost / in.HoldingCost
	if radicand < 0 {
		return EOQResult{}, fmt.Errorf("negative radicand 2*%v*%v/%v: %w", in.Demand, in.OrderingCost, in.HoldingCost, ErrDomain)
	}

	q := math.Sqrt(radicand)
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return EOQResult{}, fmt.Errorf("holding cost %v too small: %w", in.HoldingCost, ErrDomain)
	}
	return EOQResult{Quantity: q}, nil
}
