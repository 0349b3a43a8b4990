// Package metrics exposes Prometheus instrumentation for calculator runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Simplici0/indcalc/internal/engine"
)

const namespace = "indcalc"

// Outcome labels used besides the engine condition codes.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// OutcomeOf maps the error returned by an engine operation to an outcome label.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if code := engine.Code(err); code != "" {
		return code
	}
	return OutcomeError
}

// Recorder counts calculations by calculator and outcome and times them.
type Recorder struct {
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Calculations served, by calculator and outcome.",
		}, []string{"calculator", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent in the calculation engine.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"calculator"}),
	}

	for _, c := range []prometheus.Collector{r.calculations, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics collector: %w", err)
		}
	}
	return r, nil
}

// Observe records one calculation. A nil Recorder is a no-op.
func (r *Recorder) Observe(calculator, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.calculations.WithLabelValues(calculator, outcome).Inc()
	r.duration.WithLabelValues(calculator).Observe(elapsed.Seconds())
}
