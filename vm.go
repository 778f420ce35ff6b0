package vmsched

import "fmt"

// VM is one rendering machine in the pool. It runs tasks strictly one after
// another: availableTime is the earliest tick it can take new work, and only
// ever moves forward.
type VM struct {
	id            string
	availableTime Ttick
	totalBusyTime Ttick
	history       []*Task
}

func NewVM(id string) *VM {
	return &VM{
		id:      id,
		history: make([]*Task, 0),
	}
}

func (vm *VM) ID() string {
	return vm.id
}

func (vm *VM) AvailableTime() Ttick {
	return vm.availableTime
}

func (vm *VM) TotalBusyTime() Ttick {
	return vm.totalBusyTime
}

// History is the tasks this VM ran, in assignment order.
func (vm *VM) History() []*Task {
	return vm.history
}

// Assign claims the task for this VM. The task starts as soon as both the VM
// is free and the task has arrived. Caller must not pass a task that already
// ran somewhere.
func (vm *VM) Assign(t *Task) (start Ttick, completion Ttick) {
	start = max(vm.availableTime, t.arrival)
	completion = start + t.burst

	t.start.Set(int(start))
	t.completion.Set(int(completion))
	t.vmID.Set(vm.id)

	vm.availableTime = completion
	vm.totalBusyTime += t.burst
	vm.history = append(vm.history, t)

	return start, completion
}

// Utilization is the percentage of the makespan this VM spent busy.
func (vm *VM) Utilization(makespan Ttick) float64 {
	if makespan <= 0 {
		return 0
	}
	return float64(vm.totalBusyTime) / float64(makespan) * 100
}

func (vm *VM) String() string {
	return fmt.Sprintf("%s: available %v, busy %v, ntasks %d",
		vm.id, vm.availableTime, vm.totalBusyTime, len(vm.history))
}
