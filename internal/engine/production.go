package engine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/Simplici0/indcalc/internal/format"
)

const simplexTolerance = 1e-10

// linearProgram is: maximize objective·x subject to rows·x <= bounds, x >= 0.
type linearProgram struct {
	objective []float64
	rows      [][]float64
	bounds    []float64
}

// productionProblem is the fixed product-mix problem:
//
//	maximize   Z = 40x + 30y
//	subject to 2x +  y <= 40
//	            x + 2y <= 50
//	            x, y   >= 0
var productionProblem = linearProgram{
	objective: []float64{40, 30},
	rows:      [][]float64{{2, 1}, {1, 2}},
	bounds:    []float64{40, 50},
}

// ProductionResult is the optimum of the production problem.
type ProductionResult struct {
	X         float64
	Y         float64
	Objective float64
	Feasible  bool
}

// Rounded returns r with every value rounded to two decimals.
func (r ProductionResult) Rounded() ProductionResult {
	return ProductionResult{
		X:         format.Round2(r.X),
		Y:         format.Round2(r.Y),
		Objective: format.Round2(r.Objective),
		Feasible:  r.Feasible,
	}
}

// SolveProduction solves the fixed production problem with the simplex method.
func SolveProduction() (ProductionResult, error) {
	x, z, err := productionProblem.maximize()
	if err != nil {
		return ProductionResult{}, err
	}
	return ProductionResult{X: x[0], Y: x[1], Objective: z, Feasible: true}, nil
}

// maximize negates the objective, appends one slack column per row and hands
// the resulting standard-form minimization to the simplex solver.
func (p linearProgram) maximize() ([]float64, float64, error) {
	n, m := len(p.objective), len(p.rows)

	c := make([]float64, n+m)
	for j, v := range p.objective {
		c[j] = -v
	}

	a := mat.NewDense(m, n+m, nil)
	for i, row := range p.rows {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, n+i, 1)
	}
	b := append([]float64(nil), p.bounds...)

	optF, optX, err := lp.Simplex(c, a, b, simplexTolerance, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("solve linear program: %w: %w", ErrInfeasible, err)
	}

	x := make([]float64, n)
	for j := range x {
		x[j] = optX[j]
		if x[j] < 0 && x[j] > -simplexTolerance {
			x[j] = 0
		}
	}
	return x, -optF, nil
}
