package boson

// Schedule is an ordered list of Stages, run in sequence. Grounded on
// original_source's stubbed Schedule (ecs.rs: `Schedule::new().add_stage(...)`).
type Schedule struct {
	stages []*Stage
}

// NewSchedule returns an empty Schedule.
func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddStage appends stage to the schedule and returns the schedule, for
// chaining.
func (s *Schedule) AddStage(stage *Stage) *Schedule {
	s.stages = append(s.stages, stage)
	return s
}

// Run executes every stage against w and res, in order, stopping at (and
// returning) the first error a stage reports.
func (s *Schedule) Run(w *World, res *Resources) error {
	for _, stage := range s.stages {
		if err := stage.Run(w, res); err != nil {
			return err
		}
	}
	return nil
}
