package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	metric := &dto.Metric{}
	require.NoError(t, counter.Write(metric))
	return metric.GetCounter().GetValue()
}

func TestTargetsAllocated(t *testing.T) {
	before := counterValue(t, targetsAllocated.WithLabelValues("sales", "divided"))

	TargetsAllocated("sales", "divided", 3)

	assert.Equal(t, before+3, counterValue(t, targetsAllocated.WithLabelValues("sales", "divided")))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := counterValue(t, httpRequests.WithLabelValues("/v1/targets", "POST", "201"))

	ObserveHTTPRequest("/v1/targets", "POST", 201, 15*time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, httpRequests.WithLabelValues("/v1/targets", "POST", "201")))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	assert.NotPanics(t, func() {
		Register(reg)
		Register(reg)
	})

	_, err := reg.Gather()
	require.NoError(t, err)
}
