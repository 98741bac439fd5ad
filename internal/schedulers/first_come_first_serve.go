package schedulers

import "os-scheduler-simulator/internal/core"

const FirstComeFirstServeName = "first_come_first_serve"

// ScheduleFirstComeFirstServe runs processes to completion in insertion order.
func ScheduleFirstComeFirstServe(processes []*core.Process) (*Result, error) {
	return scheduleNonPreemptive(FirstComeFirstServeName, processes, nil)
}
