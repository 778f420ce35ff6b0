package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmsched"
)

func TestLoadScenarioFile(t *testing.T) {
	raw := `name: render-night-batch
tasks:
  - id: T1
    arrival: 0
    burst: 5
  - id: T2
    arrival: 2
    burst: 3
vms: [alpha, beta]
`
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "render-night-batch", cfg.Name)
	require.Len(t, cfg.Tasks, 2)
	assert.Equal(t, TaskConfig{ID: "T2", Arrival: 2, Burst: 3}, cfg.Tasks[1])
	assert.Equal(t, []string{"alpha", "beta"}, cfg.VMs)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadInput(t *testing.T) {
	cases := map[string]*Config{
		"no vms": {
			Tasks: []TaskConfig{{ID: "T1", Arrival: 0, Burst: 1}},
		},
		"duplicate vm": {
			Tasks: []TaskConfig{{ID: "T1", Arrival: 0, Burst: 1}},
			VMs:   []string{"VM1", "VM1"},
		},
		"empty task id": {
			Tasks:  []TaskConfig{{ID: "", Arrival: 0, Burst: 1}},
			NumVMs: 1,
		},
		"duplicate task id": {
			Tasks: []TaskConfig{
				{ID: "T1", Arrival: 0, Burst: 1},
				{ID: "T1", Arrival: 1, Burst: 2},
			},
			NumVMs: 1,
		},
		"negative arrival": {
			Tasks:  []TaskConfig{{ID: "T1", Arrival: -1, Burst: 1}},
			NumVMs: 1,
		},
		"zero burst": {
			Tasks:  []TaskConfig{{ID: "T1", Arrival: 0, Burst: 0}},
			NumVMs: 1,
		},
	}
	for name, cfg := range cases {
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestSampleMatchesReferenceMetrics(t *testing.T) {
	cfg := Sample()
	require.NoError(t, cfg.Validate())

	tasks, vms := cfg.Build()
	require.Len(t, tasks, 6)
	require.Len(t, vms, 3)
	assert.Equal(t, "VM1", vms[0].ID())

	s := vmsched.NewScheduler(tasks, vms)
	require.NoError(t, s.Simulate())
	assert.Equal(t, vmsched.Ttick(15), s.Makespan())
	assert.InDelta(t, 220.0/3.0, s.AvgUtilization(), 1e-9)
}

func TestLoadGenDeterministic(t *testing.T) {
	a := NewLoadGen(7).Generate(25, 4)
	b := NewLoadGen(7).Generate(25, 4)
	assert.Equal(t, a, b)

	require.NoError(t, a.Validate())
	lastArrival := 0
	for _, tc := range a.Tasks {
		assert.GreaterOrEqual(t, tc.Burst, MIN_BURST)
		assert.LessOrEqual(t, tc.Burst, MAX_BURST)
		assert.GreaterOrEqual(t, tc.Arrival, lastArrival)
		lastArrival = tc.Arrival
	}
}
