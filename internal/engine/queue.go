package engine

import (
	"fmt"

	"github.com/Simplici0/indcalc/internal/format"
)

// QueueInput holds the rates of an M/M/1 queue.
type QueueInput struct {
	ArrivalRate float64 // λ
	ServiceRate float64 // μ
}

// QueueResult holds the steady-state metrics of a stable M/M/1 queue.
type QueueResult struct {
	Utilization  float64 // ρ
	InSystem     float64 // L
	InQueue      float64 // Lq
	TimeInSystem float64 // W
	TimeInQueue  float64 // Wq
	Stable       bool
}

// Rounded returns r with every metric rounded to two decimals.
func (r QueueResult) Rounded() QueueResult {
	return QueueResult{
		Utilization:  format.Round2(r.Utilization),
		InSystem:     format.Round2(r.InSystem),
		InQueue:      format.Round2(r.InQueue),
		TimeInSystem: format.Round2(r.TimeInSystem),
		TimeInQueue:  format.Round2(r.TimeInQueue),
		Stable:       r.Stable,
	}
}

// Queue computes the M/M/1 metrics. It returns ErrInstability, and no
// metrics, when the arrival rate is not below the service rate.
func Queue(in QueueInput) (QueueResult, error) {
	lambda, mu := in.ArrivalRate, in.ServiceRate
	if !finite(lambda, mu) || lambda <= 0 || mu <= 0 {
		return QueueResult{}, fmt.Errorf("rates λ=%v μ=%v must be positive: %w", lambda, mu, ErrDomain)
	}
	if lambda >= mu {
		return QueueResult{}, fmt.Errorf("λ=%v ≥ μ=%v: %w", lambda, mu, ErrInstability)
	}

	rho := lambda / mu
	res := QueueResult{
		Utilization:  rho,
		InSystem:     rho / (1 - rho),
		InQueue:      rho * rho / (1 - rho),
		TimeInSystem: 1 / (mu - lambda),
		TimeInQueue:  rho / (mu - lambda),
		Stable:       true,
	}
	if !finite(res.InSystem, res.InQueue, res.TimeInSystem, res.TimeInQueue) {
		return QueueResult{}, fmt.Errorf("metrics for λ=%v μ=%v overflow: %w", lambda, mu, ErrDomain)
	}
	return res, nil
}
