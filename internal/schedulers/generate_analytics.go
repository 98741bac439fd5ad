package schedulers

import (
	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/util"
)

func generateResponse(runId string, result *Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.finished))
	for _, process := range result.finished {
		proccessDetails = append(proccessDetails, generateProcessDetails(process, result.firstDispatch[process.ID]))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	busyTime := 0
	for _, e := range result.Events {
		if e.Kind == EventDispatch {
			busyTime += e.Slice
		}
	}
	idleTime := result.TotalTime - busyTime

	var utilization, throughput float64
	if result.TotalTime > 0 {
		utilization = float64(busyTime) / float64(result.TotalTime)
		throughput = float64(len(proccessDetails)) / float64(result.TotalTime)
	}

	return responses.ScheduleResponse{
		RunId:                 runId,
		Algorithm:             result.Algorithm,
		TimeQuantum:           result.TimeQuantum,
		LevelsTimeQuantum:     result.LevelsTimeQuantum,
		TotalTime:             result.TotalTime,
		IdleTime:              idleTime,
		ContextSwitches:       result.ContextSwitches(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               proccessDetails,
		Completions:           result.Completions,
		Log:                   result.Lines(),
	}
}

func generateProcessDetails(process *core.Process, firstDispatch int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		Name:           process.Name,
		Priority:       process.Priority,
		Classification: process.Classification.String(),
		TotalBurst:     process.TotalBurst,
		RemainingBurst: process.RemainingBurst,
		ResponseTime:   firstDispatch,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitTime,
		Completed:      process.Completed,
	}
}

// ProcessListings renders registry contents without scheduling them.
func ProcessListings(processes []core.Process) []responses.ProcessListing {
	listings := make([]responses.ProcessListing, 0, len(processes))
	for _, process := range processes {
		listings = append(listings, ProcessListing(process))
	}
	return listings
}

func ProcessListing(process core.Process) responses.ProcessListing {
	listing := responses.ProcessListing{
		ProcessId:      process.ID,
		Name:           process.Name,
		Priority:       process.Priority,
		Classification: process.Classification.String(),
		TotalBurst:     process.TotalBurst,
		RemainingBurst: process.RemainingBurst,
		Completed:      process.Completed,
	}
	if process.Completed {
		turnaround, wait := process.TurnaroundTime, process.WaitTime
		listing.TurnAroundTime = &turnaround
		listing.WaitingTime = &wait
	}
	return listing
}
