package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/responses"
)

func TestScheduleMultilevelFeedbackQueue_Scenario(t *testing.T) {
	result, err := ScheduleMultilevelFeedbackQueue(sampleProcesses(), []int{2})
	require.NoError(t, err)

	// level 0 gives each process 2 units, the FCFS level finishes them
	assert.Equal(t, [][3]int{
		{1, 2, 2},
		{2, 2, 4},
		{1, 3, 7},
		{2, 1, 8},
	}, dispatchTrace(result))
	assert.Equal(t, []responses.CompletionEvent{
		{ProcessId: 1, Name: "A", TurnAroundTime: 7, WaitingTime: 2},
		{ProcessId: 2, Name: "B", TurnAroundTime: 8, WaitingTime: 5},
	}, result.Completions)
	assert.Equal(t, []int{2}, result.LevelsTimeQuantum)
	assert.Contains(t, result.Lines(), "[2] A (pid 1) demoted to level 1, remaining 3")
}

func TestScheduleMultilevelFeedbackQueue_Demotion(t *testing.T) {
	processes := []*core.Process{core.NewProcess(1, "long", 1, core.CPUBound, 10)}
	result, err := ScheduleMultilevelFeedbackQueue(processes, []int{1, 2})
	require.NoError(t, err)

	assert.Equal(t, [][3]int{{1, 1, 1}, {1, 2, 3}, {1, 7, 10}}, dispatchTrace(result))
	levels := make([]int, 0)
	for _, e := range result.Events {
		if e.Kind == EventDemote {
			levels = append(levels, e.Level)
		}
	}
	assert.Equal(t, []int{1, 2}, levels)
	assert.Equal(t, 0, result.ContextSwitches())
}

func TestScheduleMultilevelFeedbackQueue_Invariants(t *testing.T) {
	bursts := []int{1, 2, 3, 5, 8, 13, 21}
	for _, levels := range [][]int{{1}, {2, 4}, {5, 8}, {1, 2, 3}} {
		processes := make([]*core.Process, 0, len(bursts))
		for i, burst := range bursts {
			processes = append(processes, core.NewProcess(i+1, "p", 1, core.CPUBound, burst))
		}
		result, err := ScheduleMultilevelFeedbackQueue(processes, levels)
		require.NoError(t, err)

		sliceSum := make(map[int]int)
		for _, e := range result.Events {
			if e.Kind == EventDispatch {
				sliceSum[e.ProcessId] += e.Slice
			}
		}
		total := 0
		for _, p := range processes {
			total += p.TotalBurst
			assert.Equal(t, p.TotalBurst, sliceSum[p.ID])
			assert.Equal(t, 0, p.RemainingBurst)
			assert.True(t, p.Completed)
			assert.Equal(t, p.TurnaroundTime-p.TotalBurst, p.WaitTime)
		}
		assert.Equal(t, total, result.TotalTime)
		assert.Len(t, result.Completions, len(bursts))
	}
}

func TestScheduleMultilevelFeedbackQueue_Errors(t *testing.T) {
	processes := sampleProcesses()
	processes[0].RemainingBurst = 4

	for _, levels := range [][]int{nil, {}, {2, 0}, {-1}} {
		_, err := ScheduleMultilevelFeedbackQueue(processes, levels)
		require.ErrorIs(t, err, core.ErrInvalidQuantum)
	}
	assert.Equal(t, 4, processes[0].RemainingBurst)

	_, err := ScheduleMultilevelFeedbackQueue(nil, []int{2})
	require.ErrorIs(t, err, core.ErrEmptyQueue)
}
