package schedulers

import "os-scheduler-simulator/internal/core"

// ProcessQueue is the FIFO ready queue. Removing from the top and adding to
// the end are separate operations, so re-enqueueing never disturbs a
// traversal in progress.
type ProcessQueue struct {
	queue []*core.Process
}

func NewProcessQueue(capacity int) *ProcessQueue {
	return &ProcessQueue{queue: make([]*core.Process, 0, capacity)}
}

func (p *ProcessQueue) AddToEnd(process *core.Process) {
	p.queue = append(p.queue, process)
}

func (p *ProcessQueue) RemoveFromTop() (*core.Process, bool) {
	if len(p.queue) == 0 {
		return nil, false
	}
	item := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return item, true
}

func (p *ProcessQueue) Len() int { return len(p.queue) }
