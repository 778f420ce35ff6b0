package vmsched

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportReferenceScenario(t *testing.T) {
	tasks, vms := referenceBatch()
	s := NewScheduler(tasks, vms)
	require.NoError(t, s.Simulate())

	r := BuildReport(s)
	assert.Equal(t, 15, r.Makespan)
	assert.Equal(t, 6, r.TaskCount)
	assert.Equal(t, 3, r.VMCount)
	require.Len(t, r.Tasks, 6)
	require.Len(t, r.VMs, 3)

	// rows come out in FCFS order
	assert.Equal(t, "T1", r.Tasks[0].ID)
	assert.Equal(t, "T6", r.Tasks[5].ID)
	assert.Equal(t, 9, r.Tasks[5].StartTime)
	assert.Equal(t, "E2", r.Tasks[5].VM)

	e1 := r.VMs[0]
	assert.Equal(t, "E1", e1.ID)
	assert.Equal(t, []string{"T1", "T4"}, e1.Tasks)
	assert.Equal(t, 12, e1.TotalBusyTime)
	assert.InDelta(t, 80.0, e1.Utilization, 1e-9)

	require.NotNil(t, r.WaitingTimes)
	assert.EqualValues(t, 0, r.WaitingTimes.Min)
	assert.EqualValues(t, 4, r.WaitingTimes.Max)
	assert.InDelta(t, 7.0/6.0, r.WaitingTimes.Mean, 1e-9)
	assert.LessOrEqual(t, r.WaitingTimes.P50, r.WaitingTimes.P90)
	assert.LessOrEqual(t, r.WaitingTimes.P90, r.WaitingTimes.P99)

	require.NotNil(t, r.TurnaroundTimes)
	assert.EqualValues(t, 3, r.TurnaroundTimes.Min)
	assert.EqualValues(t, 10, r.TurnaroundTimes.Max)
	assert.InDelta(t, 40.0/6.0, r.TurnaroundTimes.Mean, 1e-9)
}

func TestBuildReportEmptyBatch(t *testing.T) {
	s := NewScheduler(nil, []*VM{NewVM("E1")})
	require.NoError(t, s.Simulate())

	r := BuildReport(s)
	assert.Equal(t, 0, r.Makespan)
	assert.Empty(t, r.Tasks)
	assert.Nil(t, r.WaitingTimes)
	assert.Nil(t, r.TurnaroundTimes)
	require.Len(t, r.VMs, 1)
	assert.Zero(t, r.VMs[0].Utilization)
}

func TestReportWriteFile(t *testing.T) {
	tasks, vms := referenceBatch()
	s := NewScheduler(tasks, vms)
	require.NoError(t, s.Simulate())

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, BuildReport(s).WriteFile(path))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	loaded := &Report{}
	require.NoError(t, json.Unmarshal(bs, loaded))
	assert.Equal(t, BuildReport(s), loaded)
}
