package schedulers

import (
	"fmt"
	"math"

	"os-scheduler-simulator/internal/core"
)

// checkClock rejects inputs whose total burst would overflow the simulation
// clock. Every strategy ends at exactly that sum.
func checkClock(processes []*core.Process) error {
	total := 0
	for _, process := range processes {
		if process.TotalBurst < 0 || process.TotalBurst > math.MaxInt-total {
			return fmt.Errorf("%w: process %d adds %d to %d", core.ErrClockOverflow, process.ID, process.TotalBurst, total)
		}
		total += process.TotalBurst
	}
	return nil
}
