package schedulers

import "os-scheduler-simulator/internal/core"

const ShortestJobFirstName = "shortest_job_first"

// ScheduleShortestJobFirst is non-preemptive SJF on total burst time.
func ScheduleShortestJobFirst(processes []*core.Process) (*Result, error) {
	return scheduleNonPreemptive(ShortestJobFirstName, processes, func(a, b *core.Process) bool {
		return a.TotalBurst < b.TotalBurst
	})
}
