package core

import "fmt"

// ProcessRegistry keeps processes in insertion order. It is owned by a single
// session; callers must not mutate it while a scheduler run is in progress.
type ProcessRegistry struct {
	processes []*Process
	index     map[int]*Process
}

func NewProcessRegistry() *ProcessRegistry {
	return &ProcessRegistry{
		processes: make([]*Process, 0),
		index:     make(map[int]*Process),
	}
}

// AddProcess appends p, or fails with ErrDuplicateID leaving the registry untouched.
func (r *ProcessRegistry) AddProcess(p *Process) error {
	if _, ok := r.index[p.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
	}
	r.processes = append(r.processes, p)
	r.index[p.ID] = p
	return nil
}

// ListAll returns copies of every process in insertion order.
func (r *ProcessRegistry) ListAll() []Process {
	list := make([]Process, 0, len(r.processes))
	for _, p := range r.processes {
		list = append(list, *p)
	}
	return list
}

// Snapshot returns the registered processes for one scheduler run. The slice
// is a copy, the processes are shared so run results land in the registry.
func (r *ProcessRegistry) Snapshot() []*Process {
	snapshot := make([]*Process, len(r.processes))
	copy(snapshot, r.processes)
	return snapshot
}

func (r *ProcessRegistry) Exists(id int) bool {
	_, ok := r.index[id]
	return ok
}

func (r *ProcessRegistry) Get(id int) (Process, bool) {
	p, ok := r.index[id]
	if !ok {
		return Process{}, false
	}
	return *p, true
}

func (r *ProcessRegistry) Len() int { return len(r.processes) }

func (r *ProcessRegistry) Clear() {
	r.processes = make([]*Process, 0)
	r.index = make(map[int]*Process)
}
