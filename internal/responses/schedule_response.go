package responses

// CompletionEvent is emitted when a process finishes under a scheduler run.
type CompletionEvent struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type ProcessResponse struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	Priority       int    `json:"priority"`
	Classification string `json:"classification"`
	TotalBurst     int    `json:"total_burst"`
	RemainingBurst int    `json:"remaining_burst"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	Completed      bool   `json:"completed"`
}

// ProcessListing is a registry entry. Turnaround and waiting time are only
// present once a run has completed the process.
type ProcessListing struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	Priority       int    `json:"priority"`
	Classification string `json:"classification"`
	TotalBurst     int    `json:"total_burst"`
	RemainingBurst int    `json:"remaining_burst"`
	Completed      bool   `json:"completed"`
	TurnAroundTime *int   `json:"turn_around_time,omitempty"`
	WaitingTime    *int   `json:"waiting_time,omitempty"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	LevelsTimeQuantum     []int             `json:"levels_time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Completions           []CompletionEvent `json:"completions"`
	Log                   []string          `json:"log"`
}
