// Package scenario is the input side of the simulator: it loads task/VM
// scenarios from yaml files or generates synthetic ones, and validates the
// preconditions the core trusts (the core itself never re-checks them).
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vmsched"
)

// Config describes one simulation run. VMs may be listed by id, or just
// counted via NumVMs (ids then default to VM1..VMn).
type Config struct {
	Name   string       `yaml:"name"`
	Tasks  []TaskConfig `yaml:"tasks"`
	VMs    []string     `yaml:"vms,omitempty"`
	NumVMs int          `yaml:"num_vms,omitempty"`
}

type TaskConfig struct {
	ID      string `yaml:"id"`
	Arrival int    `yaml:"arrival"`
	Burst   int    `yaml:"burst"`
}

func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(bs, c); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) vmIDs() []string {
	if len(c.VMs) > 0 {
		return c.VMs
	}
	ids := make([]string, c.NumVMs)
	for i := range ids {
		ids[i] = fmt.Sprintf("VM%d", i+1)
	}
	return ids
}

// Validate enforces the input contract: non-negative arrivals, positive
// bursts, unique non-empty labels, and at least one VM.
func (c *Config) Validate() error {
	vms := c.vmIDs()
	if len(vms) == 0 {
		return fmt.Errorf("scenario %q: needs at least one vm", c.Name)
	}
	seenVM := make(map[string]bool, len(vms))
	for _, id := range vms {
		if id == "" {
			return fmt.Errorf("scenario %q: empty vm id", c.Name)
		}
		if seenVM[id] {
			return fmt.Errorf("scenario %q: duplicate vm id %q", c.Name, id)
		}
		seenVM[id] = true
	}

	seenTask := make(map[string]bool, len(c.Tasks))
	for _, tc := range c.Tasks {
		if tc.ID == "" {
			return fmt.Errorf("scenario %q: empty task id", c.Name)
		}
		if seenTask[tc.ID] {
			return fmt.Errorf("scenario %q: duplicate task id %q", c.Name, tc.ID)
		}
		seenTask[tc.ID] = true
		if tc.Arrival < 0 {
			return fmt.Errorf("task %s: negative arrival %d", tc.ID, tc.Arrival)
		}
		if tc.Burst <= 0 {
			return fmt.Errorf("task %s: burst must be positive, got %d", tc.ID, tc.Burst)
		}
	}
	return nil
}

// Build constructs the core entities. Call Validate first.
func (c *Config) Build() ([]*vmsched.Task, []*vmsched.VM) {
	tasks := make([]*vmsched.Task, len(c.Tasks))
	for i, tc := range c.Tasks {
		tasks[i] = vmsched.NewTask(tc.ID, vmsched.Ttick(tc.Arrival), vmsched.Ttick(tc.Burst))
	}
	ids := c.vmIDs()
	vms := make([]*vmsched.VM, len(ids))
	for i, id := range ids {
		vms[i] = vmsched.NewVM(id)
	}
	return tasks, vms
}

// Sample is the canonical 6-task/3-VM rendering workload used in docs and
// as the default CLI input.
func Sample() *Config {
	return &Config{
		Name: "sample-render-batch",
		Tasks: []TaskConfig{
			{ID: "T1", Arrival: 0, Burst: 5},
			{ID: "T2", Arrival: 1, Burst: 8},
			{ID: "T3", Arrival: 2, Burst: 3},
			{ID: "T4", Arrival: 3, Burst: 7},
			{ID: "T5", Arrival: 4, Burst: 4},
			{ID: "T6", Arrival: 5, Burst: 6},
		},
		NumVMs: 3,
	}
}
