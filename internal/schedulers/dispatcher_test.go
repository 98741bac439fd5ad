package schedulers

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/idgen"
	"os-scheduler-simulator/internal/logging"
	"os-scheduler-simulator/internal/requests"
)

func newRegistry(t *testing.T) *core.ProcessRegistry {
	t.Helper()
	registry := core.NewProcessRegistry()
	for _, p := range sampleProcesses() {
		require.NoError(t, registry.AddProcess(p))
	}
	return registry
}

func stubRunId(t *testing.T, id string) {
	t.Helper()
	prev := idgen.NewFunc
	idgen.NewFunc = func() string { return id }
	t.Cleanup(func() { idgen.NewFunc = prev })
}

func TestDispatcher_RoundRobin(t *testing.T) {
	stubRunId(t, "run-1")
	var buf bytes.Buffer
	dispatcher := NewDispatcher(logging.NewLoggerWithWriter(slog.LevelDebug, "text", &buf))
	registry := newRegistry(t)

	response, err := dispatcher.Run(registry, requests.RunScheduleRequest{Algorithm: requests.RoundRobin, TimeQuantum: 2})
	require.NoError(t, err)

	assert.Equal(t, "run-1", response.RunId)
	assert.Equal(t, RoundRobinName, response.Algorithm)
	assert.Equal(t, 2, response.TimeQuantum)
	assert.Equal(t, 8, response.TotalTime)
	assert.Equal(t, 0, response.IdleTime)
	assert.Equal(t, 4, response.ContextSwitches)
	assert.InDelta(t, 3.5, response.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 7.5, response.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 1.0, response.AverageResponseTime, 1e-9)
	assert.InDelta(t, 1.0, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 0.25, response.CpuThroughput, 1e-9)

	require.Len(t, response.Details, 2)
	assert.Equal(t, "B", response.Details[0].Name)
	assert.Equal(t, 2, response.Details[0].ResponseTime)
	assert.Equal(t, "I/O Bound", response.Details[0].Classification)
	assert.Equal(t, "[0-2] running A (pid 1) for 2, remaining 3", response.Log[0])
	assert.Equal(t, "[8] A (pid 1) completed", response.Log[len(response.Log)-1])

	// results land on the registered processes
	a, _ := registry.Get(1)
	assert.Equal(t, 8, a.TurnaroundTime)
	assert.Equal(t, 3, a.WaitTime)
	assert.True(t, a.Completed)

	output := buf.String()
	assert.True(t, strings.Contains(output, "schedule completed"))
	assert.True(t, strings.Contains(output, "run_id=run-1"))
}

func TestDispatcher_Priority(t *testing.T) {
	response, err := NewDispatcher(logging.Discard()).Run(newRegistry(t), requests.RunScheduleRequest{Algorithm: requests.Priority})
	require.NoError(t, err)
	require.Len(t, response.Completions, 2)
	assert.Equal(t, 2, response.Completions[0].ProcessId)
	assert.Equal(t, 0, response.TimeQuantum)
}

func TestDispatcher_MultilevelFeedbackQueue(t *testing.T) {
	response, err := NewDispatcher(logging.Discard()).Run(newRegistry(t), requests.RunScheduleRequest{
		Algorithm:         requests.MultilevelFeedbackQueue,
		LevelsTimeQuantum: []int{2},
	})
	require.NoError(t, err)
	assert.Equal(t, MultilevelFeedbackQueueName, response.Algorithm)
	assert.Equal(t, []int{2}, response.LevelsTimeQuantum)
	assert.Equal(t, 8, response.TotalTime)
	require.Len(t, response.Completions, 2)
	assert.Equal(t, 1, response.Completions[0].ProcessId)
}

func TestDispatcher_Errors(t *testing.T) {
	dispatcher := NewDispatcher(logging.Discard())
	empty := core.NewProcessRegistry()

	for _, algorithm := range []requests.Algorithm{
		requests.RoundRobin,
		requests.Priority,
		requests.FirstComeFirstServe,
		requests.ShortestJobFirst,
		requests.MultilevelFeedbackQueue,
	} {
		_, err := dispatcher.Run(empty, requests.RunScheduleRequest{Algorithm: algorithm, TimeQuantum: 2, LevelsTimeQuantum: []int{2}})
		require.ErrorIs(t, err, core.ErrEmptyQueue, string(algorithm))
	}

	_, err := dispatcher.Run(newRegistry(t), requests.RunScheduleRequest{Algorithm: requests.RoundRobin, TimeQuantum: 0})
	require.ErrorIs(t, err, core.ErrInvalidQuantum)

	_, err = dispatcher.Run(newRegistry(t), requests.RunScheduleRequest{Algorithm: "lottery"})
	require.ErrorIs(t, err, core.ErrUnknownAlgorithm)
}
