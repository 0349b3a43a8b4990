package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/indcalc/internal/engine"
)

func TestRecorder_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.Observe("eoq", OutcomeOK, time.Millisecond)
	r.Observe("eoq", OutcomeOK, time.Millisecond)
	r.Observe("queue", "unstable", time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.calculations.WithLabelValues("eoq", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calculations.WithLabelValues("queue", "unstable")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestNewRecorder_RejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Observe("lp", OutcomeOK, time.Second) })
}

func TestOutcomeOf(t *testing.T) {
	_, unstable := engine.Queue(engine.QueueInput{ArrivalRate: 9, ServiceRate: 8})

	assert.Equal(t, OutcomeOK, OutcomeOf(nil))
	assert.Equal(t, "unstable", OutcomeOf(unstable))
	assert.Equal(t, OutcomeError, OutcomeOf(errors.New("boom")))
}
