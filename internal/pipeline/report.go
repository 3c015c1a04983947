package pipeline

import "time"

// StageTiming records how long one stage took.
type StageTiming struct {
	Name     string
	Duration time.Duration
}

// Report summarizes a successful run.
type Report struct {
	RunID    string
	Version  string
	Cells    int
	Pages    []string
	Manifest string
	Stages   []StageTiming
	Duration time.Duration
}
