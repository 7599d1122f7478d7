package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records plan outcomes in Prometheus metrics.
type PromSink struct {
	plans     *prometheus.CounterVec
	restDays  *prometheus.HistogramVec
	leaveDays *prometheus.HistogramVec
}

// NewPromSink registers plan metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leave_plans_generated_total",
		Help: "Total number of leave plans generated",
	}, []string{"strategy", "feasible"})
	restDays := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leave_plan_rest_days",
		Help:    "Total rest days achieved by a generated plan",
		Buckets: prometheus.LinearBuckets(100, 10, 10),
	}, []string{"strategy"})
	leaveDays := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leave_plan_leave_days",
		Help:    "Leave days consumed by a generated plan",
		Buckets: prometheus.LinearBuckets(0, 2, 15),
	}, []string{"strategy"})

	var err error
	if plans, err = register(reg, plans); err != nil {
		return nil, err
	}
	if restDays, err = register(reg, restDays); err != nil {
		return nil, err
	}
	if leaveDays, err = register(reg, leaveDays); err != nil {
		return nil, err
	}
	return &PromSink{plans: plans, restDays: restDays, leaveDays: leaveDays}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordPlan increments the plan counter and observes plan size histograms.
// Infeasible plans are counted but not observed.
func (s *PromSink) RecordPlan(r PlanResult) {
	s.plans.WithLabelValues(r.Strategy, strconv.FormatBool(r.Feasible)).Inc()
	if !r.Feasible {
		return
	}
	s.restDays.WithLabelValues(r.Strategy).Observe(float64(r.RestDays))
	s.leaveDays.WithLabelValues(r.Strategy).Observe(float64(r.LeaveDays))
}
