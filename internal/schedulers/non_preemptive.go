package schedulers

import (
	"sort"

	"os-scheduler-simulator/internal/core"
)

// scheduleNonPreemptive runs every process to completion in the order given by
// a stable sort with less; ties keep insertion order.
func scheduleNonPreemptive(algorithm string, processes []*core.Process, less func(a, b *core.Process) bool) (*Result, error) {
	if len(processes) == 0 {
		return nil, core.ErrEmptyQueue
	}
	if err := checkClock(processes); err != nil {
		return nil, err
	}

	ordered := make([]*core.Process, len(processes))
	copy(ordered, processes)
	if less != nil {
		sort.SliceStable(ordered, func(i, j int) bool {
			return less(ordered[i], ordered[j])
		})
	}

	result := newResult(algorithm, len(ordered))
	clock := 0
	for _, process := range ordered {
		process.Reset()
		process.TurnaroundTime = clock + process.TotalBurst
		process.WaitTime = clock
		start := clock
		clock += process.TotalBurst
		process.RemainingBurst = 0

		result.dispatch(process, start, clock)
		result.complete(process, clock)
	}
	return result, nil
}
