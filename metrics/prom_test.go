package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromSink_RecordPlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	sink.RecordPlan(PlanResult{Strategy: "holiday_extension", Feasible: true, RestDays: 110, LeaveDays: 3})
	sink.RecordPlan(PlanResult{Strategy: "seasonal_balanced", Feasible: false})

	expected := `
# HELP leave_plans_generated_total Total number of leave plans generated
# TYPE leave_plans_generated_total counter
leave_plans_generated_total{feasible="false",strategy="seasonal_balanced"} 1
leave_plans_generated_total{feasible="true",strategy="holiday_extension"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(sink.plans, strings.NewReader(expected)))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.restDays))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.leaveDays))
}

func TestNewPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSink(reg)
	require.NoError(t, err)

	second, err := NewPromSink(reg)
	require.NoError(t, err)

	assert.Same(t, first.plans, second.plans)
}
