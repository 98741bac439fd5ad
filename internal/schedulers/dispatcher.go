package schedulers

import (
	"fmt"
	"log/slog"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/idgen"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
)

// Dispatcher runs the strategy named by a RunScheduleRequest against the
// current contents of a registry.
type Dispatcher struct {
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Run(registry *core.ProcessRegistry, request requests.RunScheduleRequest) (responses.ScheduleResponse, error) {
	processes := registry.Snapshot()

	var result *Result
	var err error
	switch request.Algorithm {
	case requests.RoundRobin:
		result, err = ScheduleRoundRobin(processes, request.TimeQuantum)
	case requests.Priority:
		result, err = SchedulePriority(processes)
	case requests.FirstComeFirstServe:
		result, err = ScheduleFirstComeFirstServe(processes)
	case requests.ShortestJobFirst:
		result, err = ScheduleShortestJobFirst(processes)
	case requests.MultilevelFeedbackQueue:
		result, err = ScheduleMultilevelFeedbackQueue(processes, request.LevelsTimeQuantum)
	default:
		err = fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, request.Algorithm)
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	runId := idgen.New()
	for _, e := range result.Events {
		d.logger.Debug(e.String(), "run_id", runId, "kind", e.Kind.String(), "pid", e.ProcessId)
	}
	response := generateResponse(runId, result)
	d.logger.Info("schedule completed",
		"run_id", runId,
		"algorithm", response.Algorithm,
		"processes", len(processes),
		"total_time", response.TotalTime)
	return response, nil
}
