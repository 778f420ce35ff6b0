package vmsched

import (
	"fmt"

	"github.com/markphelps/optional"
)

// Task is a single video rendering job: it arrives at a fixed time and needs
// burstTime ticks of uninterrupted work on some VM. The scheduling results
// (start, completion, owning VM) stay unset until a VM claims the task, and
// are written exactly once.
type Task struct {
	id      string
	arrival Ttick
	burst   Ttick

	start      optional.Int
	completion optional.Int
	vmID       optional.String
}

func NewTask(id string, arrival Ttick, burst Ttick) *Task {
	return &Task{
		id:      id,
		arrival: arrival,
		burst:   burst,
	}
}

func (t *Task) ID() string {
	return t.id
}

func (t *Task) Arrival() Ttick {
	return t.arrival
}

func (t *Task) Burst() Ttick {
	return t.burst
}

// Start reports the tick the task began executing, false if unscheduled.
func (t *Task) Start() (Ttick, bool) {
	v, err := t.start.Get()
	return Ttick(v), err == nil
}

// Completion reports the tick the task finished, false if unscheduled.
func (t *Task) Completion() (Ttick, bool) {
	v, err := t.completion.Get()
	return Ttick(v), err == nil
}

// VMID reports which VM the task ran on, false if unscheduled.
func (t *Task) VMID() (string, bool) {
	v, err := t.vmID.Get()
	return v, err == nil
}

func (t *Task) Scheduled() bool {
	return t.vmID.Present()
}

// WaitingTime is how long the task sat between arriving and starting.
// Before scheduling it is 0, not an error, so read paths never have to care.
func (t *Task) WaitingTime() Ttick {
	start, err := t.start.Get()
	if err != nil {
		return 0
	}
	return Ttick(start) - t.arrival
}

// TurnaroundTime is how long the task spent in the system, arrival to finish.
func (t *Task) TurnaroundTime() Ttick {
	completion, err := t.completion.Get()
	if err != nil {
		return 0
	}
	return Ttick(completion) - t.arrival
}

func (t *Task) String() string {
	if !t.Scheduled() {
		return fmt.Sprintf("%s: arrival %v, burst %v, unscheduled", t.id, t.arrival, t.burst)
	}
	return fmt.Sprintf("%s: arrival %v, burst %v, start %v, done %v, vm %s",
		t.id, t.arrival, t.burst,
		Ttick(t.start.OrElse(0)), Ttick(t.completion.OrElse(0)), t.vmID.OrElse("?"))
}
