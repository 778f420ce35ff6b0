package vmsched

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrNoVMs is returned by Simulate when there is no VM to place tasks on.
var ErrNoVMs = errors.New("vm pool is empty, nothing to schedule onto")

// Scheduler runs one FCFS simulation over a fixed batch of tasks and a fixed
// VM pool. It is the only mutator of the tasks and VMs it was handed, and it
// is single-shot: calling Simulate again on the same, already-mutated
// objects is a caller error.
type Scheduler struct {
	tasks    []*Task
	vms      []*VM
	makespan Ttick
}

func NewScheduler(tasks []*Task, vms []*VM) *Scheduler {
	return &Scheduler{
		tasks: tasks,
		vms:   vms,
	}
}

// sortTasksByArrival orders the batch FCFS. Ties on arrival break on the
// task id, so two runs over the same input always produce the same schedule.
func (s *Scheduler) sortTasksByArrival() {
	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].arrival != s.tasks[j].arrival {
			return s.tasks[i].arrival < s.tasks[j].arrival
		}
		return s.tasks[i].id < s.tasks[j].id
	})
}

// findEarliestAvailableVM picks the VM that frees up first. Ties go to the
// VM earliest in the pool's slice order (strict < scan), which keeps
// assignment deterministic.
func (s *Scheduler) findEarliestAvailableVM() *VM {
	earliest := s.vms[0]
	for _, vm := range s.vms[1:] {
		if vm.availableTime < earliest.availableTime {
			earliest = vm
		}
	}
	return earliest
}

// Simulate sorts the batch FCFS, assigns every task to the earliest
// available VM, and computes the makespan. With an empty VM pool it fails
// with ErrNoVMs before touching any state. An empty task batch is fine and
// leaves the makespan at 0.
func (s *Scheduler) Simulate() error {
	if len(s.vms) == 0 {
		return ErrNoVMs
	}

	s.sortTasksByArrival()

	for _, t := range s.tasks {
		vm := s.findEarliestAvailableVM()
		vm.Assign(t)
	}

	for _, vm := range s.vms {
		if vm.availableTime > s.makespan {
			s.makespan = vm.availableTime
		}
	}
	return nil
}

// Makespan is the tick the last VM finishes its last task, 0 before Simulate.
func (s *Scheduler) Makespan() Ttick {
	return s.makespan
}

// Tasks is the scheduler's batch, in FCFS order once Simulate has run.
func (s *Scheduler) Tasks() []*Task {
	return s.tasks
}

func (s *Scheduler) VMs() []*VM {
	return s.vms
}

func (s *Scheduler) AvgWaitingTime() float64 {
	waits := make([]Ttick, len(s.tasks))
	for i, t := range s.tasks {
		waits[i] = t.WaitingTime()
	}
	return avg(waits)
}

func (s *Scheduler) AvgTurnaroundTime() float64 {
	tats := make([]Ttick, len(s.tasks))
	for i, t := range s.tasks {
		tats[i] = t.TurnaroundTime()
	}
	return avg(tats)
}

func (s *Scheduler) AvgUtilization() float64 {
	if len(s.vms) == 0 {
		return 0
	}
	utils := make([]float64, len(s.vms))
	for i, vm := range s.vms {
		utils[i] = vm.Utilization(s.makespan)
	}
	return stat.Mean(utils, nil)
}
