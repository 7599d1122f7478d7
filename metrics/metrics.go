package metrics

// PlanResult is one strategy outcome to be recorded.
type PlanResult struct {
	Strategy  string
	Feasible  bool
	RestDays  int
	LeaveDays int
}

// Recorder records plan generation outcomes for observability purposes.
type Recorder interface {
	RecordPlan(result PlanResult)
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordPlan(PlanResult) {}
