package vmsched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnscheduledTaskDefaults(t *testing.T) {
	task := NewTask("T1", 4, 7)

	assert.False(t, task.Scheduled())
	_, ok := task.Start()
	assert.False(t, ok)
	_, ok = task.Completion()
	assert.False(t, ok)
	_, ok = task.VMID()
	assert.False(t, ok)

	// callable before simulation, defined as 0
	assert.Equal(t, Ttick(0), task.WaitingTime())
	assert.Equal(t, Ttick(0), task.TurnaroundTime())
}

func TestTaskDerivedTimes(t *testing.T) {
	task := NewTask("T1", 4, 7)
	vm := NewVM("E1")
	vm.availableTime = 10

	start, completion := vm.Assign(task)
	assert.Equal(t, Ttick(10), start)
	assert.Equal(t, Ttick(17), completion)

	assert.Equal(t, Ttick(6), task.WaitingTime())
	assert.Equal(t, Ttick(13), task.TurnaroundTime())
	vmID, ok := task.VMID()
	assert.True(t, ok)
	assert.Equal(t, "E1", vmID)
}
