package requests

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-simulator/internal/core"
)

func TestAddProcessRequest_Validate(t *testing.T) {
	valid := AddProcessRequest{ProcessId: 1, Name: "A", Priority: 3, Classification: "cpu", TotalBurst: 4}
	require.NoError(t, valid.Validate(0))

	cases := map[string]AddProcessRequest{
		"no name":         {ProcessId: 1, Priority: 3, Classification: "cpu", TotalBurst: 4},
		"priority low":    {ProcessId: 1, Name: "A", Priority: 0, Classification: "cpu", TotalBurst: 4},
		"priority high":   {ProcessId: 1, Name: "A", Priority: 6, Classification: "cpu", TotalBurst: 4},
		"zero burst":      {ProcessId: 1, Name: "A", Priority: 3, Classification: "cpu", TotalBurst: 0},
		"bad classifier":  {ProcessId: 1, Name: "A", Priority: 3, Classification: "disk", TotalBurst: 4},
		"burst too large": {ProcessId: 1, Name: "A", Priority: 3, Classification: "cpu", TotalBurst: 11},
	}
	for name, request := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, request.Validate(10), core.ErrInvalidProcess)
		})
	}
}

func TestAddProcessRequest_MaxBurst(t *testing.T) {
	request := AddProcessRequest{ProcessId: 1, Name: "A", Priority: 1, Classification: "cpu", TotalBurst: 10}
	require.NoError(t, request.Validate(10))

	request.TotalBurst = DefaultMaxBurst
	require.NoError(t, request.Validate(0))

	request.TotalBurst = DefaultMaxBurst + 1
	require.ErrorIs(t, request.Validate(0), core.ErrInvalidProcess)

	request.TotalBurst = math.MaxInt
	_, err := request.Process(5000)
	require.ErrorIs(t, err, core.ErrInvalidProcess)
}

func TestAddProcessRequest_Process(t *testing.T) {
	p, err := AddProcessRequest{ProcessId: 4, Name: "db", Priority: 1, Classification: "io", TotalBurst: 6}.Process(10)
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
	assert.Equal(t, core.IOBound, p.Classification)
	assert.Equal(t, 6, p.RemainingBurst)
}

func TestParseAlgorithm(t *testing.T) {
	for input, expected := range map[string]Algorithm{
		"rr":          RoundRobin,
		"Round-Robin": RoundRobin,
		"priority":    Priority,
		"FCFS":        FirstComeFirstServe,
		"sjf":         ShortestJobFirst,
		"MLFQ":        MultilevelFeedbackQueue,
	} {
		got, err := ParseAlgorithm(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got)
	}

	_, err := ParseAlgorithm("lottery")
	require.ErrorIs(t, err, core.ErrUnknownAlgorithm)
}
