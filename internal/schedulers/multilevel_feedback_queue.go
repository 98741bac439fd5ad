package schedulers

import (
	"fmt"

	"os-scheduler-simulator/internal/core"
)

const MultilevelFeedbackQueueName = "multilevel_feedback_queue"

// ScheduleMultilevelFeedbackQueue runs one round robin ready queue per entry of
// levelsTimeQuantum plus a final FCFS level. Every process starts on level 0;
// a process that uses its whole slice without finishing is demoted one level.
// The highest non-empty level is always served first.
func ScheduleMultilevelFeedbackQueue(processes []*core.Process, levelsTimeQuantum []int) (*Result, error) {
	if len(levelsTimeQuantum) == 0 {
		return nil, fmt.Errorf("%w: no levels", core.ErrInvalidQuantum)
	}
	for _, quantum := range levelsTimeQuantum {
		if quantum <= 0 {
			return nil, fmt.Errorf("%w: levels %v", core.ErrInvalidQuantum, levelsTimeQuantum)
		}
	}
	if len(processes) == 0 {
		return nil, core.ErrEmptyQueue
	}
	if err := checkClock(processes); err != nil {
		return nil, err
	}

	fcfsLevel := len(levelsTimeQuantum)
	levels := make([]*ProcessQueue, fcfsLevel+1)
	for i := range levels {
		levels[i] = NewProcessQueue(len(processes))
	}
	for _, process := range processes {
		process.Reset()
		levels[0].AddToEnd(process)
	}

	result := newResult(MultilevelFeedbackQueueName, len(processes))
	result.LevelsTimeQuantum = append([]int(nil), levelsTimeQuantum...)

	clock := 0
	for {
		level := nextLevel(levels)
		if level < 0 {
			break
		}
		process, _ := levels[level].RemoveFromTop()

		slice := process.RemainingBurst
		if level < fcfsLevel {
			slice = min(levelsTimeQuantum[level], process.RemainingBurst)
		}
		start := clock
		clock += slice
		process.RemainingBurst -= slice

		process.TurnaroundTime = clock
		process.WaitTime = process.TurnaroundTime - process.TotalBurst
		result.dispatch(process, start, clock)

		if process.RemainingBurst > 0 {
			levels[level+1].AddToEnd(process)
			result.demote(process, clock, level+1)
			continue
		}
		result.complete(process, clock)
	}
	return result, nil
}

func nextLevel(levels []*ProcessQueue) int {
	for i, queue := range levels {
		if queue.Len() > 0 {
			return i
		}
	}
	return -1
}
