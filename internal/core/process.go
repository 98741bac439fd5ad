package core

import (
	"fmt"
	"strings"
)

type Classification int

const (
	IOBound Classification = iota
	CPUBound
)

func (c Classification) String() string {
	switch c {
	case IOBound:
		return "I/O Bound"
	case CPUBound:
		return "CPU Bound"
	default:
		return "Unknown"
	}
}

// ParseClassification accepts "io", "iobound", "cpu" and "cpubound" in any case.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "io", "iobound", "io_bound", "i/o":
		return IOBound, nil
	case "cpu", "cpubound", "cpu_bound":
		return CPUBound, nil
	}
	return 0, fmt.Errorf("%w: unknown classification %q", ErrInvalidProcess, s)
}

// Process is one schedulable unit of work. Classification is recorded but no
// scheduling algorithm reads it.
type Process struct {
	ID             int
	Name           string
	Priority       int
	Classification Classification
	TotalBurst     int
	RemainingBurst int
	TurnaroundTime int
	WaitTime       int

	// Completed is set once a scheduler run has driven RemainingBurst to 0.
	Completed bool
}

func NewProcess(id int, name string, priority int, classification Classification, totalBurst int) *Process {
	return &Process{
		ID:             id,
		Name:           name,
		Priority:       priority,
		Classification: classification,
		TotalBurst:     totalBurst,
		RemainingBurst: totalBurst,
	}
}

// Reset prepares the process for a fresh scheduler run.
func (p *Process) Reset() {
	p.RemainingBurst = p.TotalBurst
	p.TurnaroundTime = 0
	p.WaitTime = 0
	p.Completed = false
}

func (p *Process) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Priority: %d, Type: %s, CPU Total: %d, Remaining: %d",
		p.ID, p.Name, p.Priority, p.Classification, p.TotalBurst, p.RemainingBurst)
}
