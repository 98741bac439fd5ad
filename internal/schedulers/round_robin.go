package schedulers

import (
	"fmt"

	"os-scheduler-simulator/internal/core"
)

const RoundRobinName = "round_robin"

// ScheduleRoundRobin rotates processes through a FIFO ready queue, giving each
// dispatch at most timeQuantum units. Turnaround and wait time are rewritten on
// every slice; the values left after the final slice are the real ones.
func ScheduleRoundRobin(processes []*core.Process, timeQuantum int) (*Result, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: %d", core.ErrInvalidQuantum, timeQuantum)
	}
	if len(processes) == 0 {
		return nil, core.ErrEmptyQueue
	}
	if err := checkClock(processes); err != nil {
		return nil, err
	}

	readyQueue := NewProcessQueue(len(processes))
	for _, process := range processes {
		process.Reset()
		readyQueue.AddToEnd(process)
	}

	result := newResult(RoundRobinName, len(processes))
	result.TimeQuantum = timeQuantum

	clock := 0
	for readyQueue.Len() > 0 {
		process, _ := readyQueue.RemoveFromTop()

		slice := min(timeQuantum, process.RemainingBurst)
		start := clock
		clock += slice
		process.RemainingBurst -= slice

		process.TurnaroundTime = clock
		process.WaitTime = process.TurnaroundTime - process.TotalBurst
		result.dispatch(process, start, clock)

		if process.RemainingBurst > 0 {
			// context switch
			readyQueue.AddToEnd(process)
			result.requeue(process, clock)
			continue
		}
		result.complete(process, clock)
	}
	return result, nil
}
