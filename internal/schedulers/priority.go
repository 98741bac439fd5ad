package schedulers

import "os-scheduler-simulator/internal/core"

const PriorityName = "priority"

// SchedulePriority is static-priority, non-preemptive scheduling: lower
// priority numbers run first, equal priorities run in insertion order.
func SchedulePriority(processes []*core.Process) (*Result, error) {
	return scheduleNonPreemptive(PriorityName, processes, func(a, b *core.Process) bool {
		return a.Priority < b.Priority
	})
}
