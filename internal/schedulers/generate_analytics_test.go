package schedulers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler-simulator/internal/core"
)

func TestProcessListing_Unscheduled(t *testing.T) {
	listing := ProcessListing(*core.NewProcess(3, "idle", 4, core.IOBound, 6))
	assert.Nil(t, listing.TurnAroundTime)
	assert.Nil(t, listing.WaitingTime)

	data, err := json.Marshal(listing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"process_id":3,"name":"idle","priority":4,"classification":"I/O Bound",
		"total_burst":6,"remaining_burst":6,"completed":false}`, string(data))
}

func TestProcessListings_AfterRun(t *testing.T) {
	processes := sampleProcesses()
	_, err := SchedulePriority(processes)
	require.NoError(t, err)

	listings := ProcessListings([]core.Process{*processes[0], *processes[1]})
	require.Len(t, listings, 2)
	require.NotNil(t, listings[0].TurnAroundTime)
	assert.Equal(t, 8, *listings[0].TurnAroundTime)
	assert.Equal(t, 3, *listings[0].WaitingTime)
	assert.Equal(t, 3, *listings[1].TurnAroundTime)
	assert.Equal(t, 0, *listings[1].WaitingTime)
}
