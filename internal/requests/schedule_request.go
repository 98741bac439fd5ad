package requests

import (
	"fmt"
	"strings"

	"os-scheduler-simulator/internal/core"
)

const (
	MinPriority = 1
	MaxPriority = 5

	// DefaultMaxBurst bounds total_burst when no limit is configured.
	DefaultMaxBurst = 1000
)

type AddProcessRequest struct {
	ProcessId      int    `json:"process_id" yaml:"process_id"`
	Name           string `json:"name" yaml:"name"`
	Priority       int    `json:"priority" yaml:"priority"`
	Classification string `json:"classification" yaml:"classification"`
	TotalBurst     int    `json:"total_burst" yaml:"total_burst"`
}

// Validate checks the request against the process limits; maxBurst <= 0
// selects DefaultMaxBurst.
func (r AddProcessRequest) Validate(maxBurst int) error {
	if maxBurst <= 0 {
		maxBurst = DefaultMaxBurst
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: process %d has no name", core.ErrInvalidProcess, r.ProcessId)
	}
	if r.Priority < MinPriority || r.Priority > MaxPriority {
		return fmt.Errorf("%w: priority %d outside [%d, %d]", core.ErrInvalidProcess, r.Priority, MinPriority, MaxPriority)
	}
	if r.TotalBurst < 1 || r.TotalBurst > maxBurst {
		return fmt.Errorf("%w: total burst %d outside [1, %d]", core.ErrInvalidProcess, r.TotalBurst, maxBurst)
	}
	if _, err := core.ParseClassification(r.Classification); err != nil {
		return err
	}
	return nil
}

// Process converts a validated request into a core process.
func (r AddProcessRequest) Process(maxBurst int) (*core.Process, error) {
	if err := r.Validate(maxBurst); err != nil {
		return nil, err
	}
	classification, _ := core.ParseClassification(r.Classification)
	return core.NewProcess(r.ProcessId, r.Name, r.Priority, classification, r.TotalBurst), nil
}

type Algorithm string

const (
	RoundRobin          Algorithm = "rr"
	Priority            Algorithm = "priority"
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"

	MultilevelFeedbackQueue Algorithm = "mlfq"
)

// ParseAlgorithm accepts the short names and a few long-form aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rr", "roundrobin", "round_robin", "round-robin":
		return RoundRobin, nil
	case "priority", "ps":
		return Priority, nil
	case "fcfs", "fifo":
		return FirstComeFirstServe, nil
	case "sjf":
		return ShortestJobFirst, nil
	case "mlfq", "multilevel_feedback_queue":
		return MultilevelFeedbackQueue, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, s)
}

type RunScheduleRequest struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`

	// TimeQuantum is only read by round robin.
	TimeQuantum int `json:"time_quantum" yaml:"time_quantum"`

	// LevelsTimeQuantum is only read by the multilevel feedback queue.
	LevelsTimeQuantum []int `json:"levels_time_quantum" yaml:"levels_time_quantum"`
}

// Workload is a file-backed batch of processes for the run command.
type Workload struct {
	Algorithm         string              `yaml:"algorithm"`
	TimeQuantum       int                 `yaml:"time_quantum"`
	LevelsTimeQuantum []int               `yaml:"levels_time_quantum"`
	Processes         []AddProcessRequest `yaml:"processes"`
}
