package schedulers

import (
	"fmt"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/responses"
)

type EventKind int

const (
	EventDispatch EventKind = iota
	EventRequeue
	EventComplete
	EventDemote
)

func (k EventKind) String() string {
	switch k {
	case EventDispatch:
		return "Dispatch"
	case EventRequeue:
		return "Requeue"
	case EventComplete:
		return "Complete"
	case EventDemote:
		return "Demote"
	default:
		return "Unknown"
	}
}

// Event is one entry of a run's display log. Start and End are simulation
// clock values bracketing the slice.
type Event struct {
	Kind      EventKind
	ProcessId int
	Name      string
	Start     int
	End       int
	Slice     int
	Remaining int

	// Level is the ready queue a demoted process moves to.
	Level int
}

func (e Event) String() string {
	switch e.Kind {
	case EventDispatch:
		return fmt.Sprintf("[%d-%d] running %s (pid %d) for %d, remaining %d",
			e.Start, e.End, e.Name, e.ProcessId, e.Slice, e.Remaining)
	case EventRequeue:
		return fmt.Sprintf("[%d] %s (pid %d) back to ready queue, remaining %d",
			e.End, e.Name, e.ProcessId, e.Remaining)
	case EventComplete:
		return fmt.Sprintf("[%d] %s (pid %d) completed", e.End, e.Name, e.ProcessId)
	case EventDemote:
		return fmt.Sprintf("[%d] %s (pid %d) demoted to level %d, remaining %d",
			e.End, e.Name, e.ProcessId, e.Level, e.Remaining)
	default:
		return fmt.Sprintf("[%d] %s (pid %d) %s", e.End, e.Name, e.ProcessId, e.Kind)
	}
}

// Result is the outcome of one scheduler run.
type Result struct {
	Algorithm         string
	TimeQuantum       int
	LevelsTimeQuantum []int
	TotalTime         int
	Completions       []responses.CompletionEvent
	Events            []Event

	// completed processes in completion order
	finished      []*core.Process
	firstDispatch map[int]int
}

func newResult(algorithm string, processCount int) *Result {
	return &Result{
		Algorithm:     algorithm,
		Completions:   make([]responses.CompletionEvent, 0, processCount),
		Events:        make([]Event, 0, processCount*2),
		finished:      make([]*core.Process, 0, processCount),
		firstDispatch: make(map[int]int, processCount),
	}
}

func (r *Result) dispatch(process *core.Process, start, end int) {
	if _, ok := r.firstDispatch[process.ID]; !ok {
		r.firstDispatch[process.ID] = start
	}
	r.Events = append(r.Events, Event{
		Kind:      EventDispatch,
		ProcessId: process.ID,
		Name:      process.Name,
		Start:     start,
		End:       end,
		Slice:     end - start,
		Remaining: process.RemainingBurst,
	})
	r.TotalTime = end
}

func (r *Result) requeue(process *core.Process, clock int) {
	r.Events = append(r.Events, Event{
		Kind:      EventRequeue,
		ProcessId: process.ID,
		Name:      process.Name,
		Start:     clock,
		End:       clock,
		Remaining: process.RemainingBurst,
	})
}

func (r *Result) demote(process *core.Process, clock, level int) {
	r.Events = append(r.Events, Event{
		Kind:      EventDemote,
		ProcessId: process.ID,
		Name:      process.Name,
		Start:     clock,
		End:       clock,
		Remaining: process.RemainingBurst,
		Level:     level,
	})
}

func (r *Result) complete(process *core.Process, clock int) {
	process.Completed = true
	r.Events = append(r.Events, Event{
		Kind:      EventComplete,
		ProcessId: process.ID,
		Name:      process.Name,
		Start:     clock,
		End:       clock,
	})
	r.Completions = append(r.Completions, responses.CompletionEvent{
		ProcessId:      process.ID,
		Name:           process.Name,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitTime,
	})
	r.finished = append(r.finished, process)
}

// Dispatches counts how many slices each process received.
func (r *Result) Dispatches() map[int]int {
	counts := make(map[int]int)
	for _, e := range r.Events {
		if e.Kind == EventDispatch {
			counts[e.ProcessId]++
		}
	}
	return counts
}

// ContextSwitches counts dispatches that hand the CPU to a different process.
func (r *Result) ContextSwitches() int {
	switches := 0
	last := -1
	first := true
	for _, e := range r.Events {
		if e.Kind != EventDispatch {
			continue
		}
		if !first && e.ProcessId != last {
			switches++
		}
		first = false
		last = e.ProcessId
	}
	return switches
}

func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		lines = append(lines, e.String())
	}
	return lines
}
