package engine

import (
	"errors"
	"math"
)

// Conditions reported by the calculators. They are expected outcomes of a
// single calculation, never faults of the process; match them with errors.Is.
var (
	// ErrInfeasible reports that a linear program has no optimal solution.
	ErrInfeasible = errors.New("no optimal solution")
	// ErrDomain reports an input outside the domain of a formula.
	ErrDomain = errors.New("input outside formula domain")
	// ErrInstability reports a queue whose arrival rate is not below its service rate.
	ErrInstability = errors.New("unstable queue")
	// ErrMargin reports a price that does not exceed the variable cost.
	ErrMargin = errors.New("non-positive contribution margin")
)

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Code returns a short machine-readable name for the condition err carries:
// "infeasible", "domain", "unstable", "margin", or "" for other errors and nil.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInfeasible):
		return "infeasible"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrInstability):
		return "unstable"
	case errors.Is(err, ErrMargin):
		return "margin"
	}
	return ""
}
