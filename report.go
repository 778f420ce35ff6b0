package vmsched

import (
	"encoding/json"
	"fmt"
	"os"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"gonum.org/v1/gonum/stat"
)

// Report is the immutable snapshot of one finished simulation, the stable
// contract presentation layers render from. It holds no references back into
// the live Task/VM objects.
type Report struct {
	Makespan          int     `json:"makespan"`
	TaskCount         int     `json:"task_count"`
	VMCount           int     `json:"vm_count"`
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgUtilization    float64 `json:"avg_utilization"`

	Tasks []TaskRecord `json:"tasks"`
	VMs   []VMRecord   `json:"vms"`

	WaitingTimes    *Distribution `json:"waiting_times,omitempty"`
	TurnaroundTimes *Distribution `json:"turnaround_times,omitempty"`
}

// TaskRecord is one row of the per-task read interface, in FCFS order.
type TaskRecord struct {
	ID             string `json:"id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	VM             string `json:"vm"`
	WaitingTime    int    `json:"waiting_time"`
	TurnaroundTime int    `json:"turnaround_time"`
}

// VMRecord is one row of the per-VM read interface, in pool order.
type VMRecord struct {
	ID            string   `json:"id"`
	AvailableTime int      `json:"available_time"`
	TotalBusyTime int      `json:"total_busy_time"`
	Tasks         []string `json:"tasks"`
	Utilization   float64  `json:"utilization"`
}

// Distribution summarizes how a per-task metric spreads over the batch.
type Distribution struct {
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P50    int64   `json:"p50"`
	P90    int64   `json:"p90"`
	P99    int64   `json:"p99"`
}

func newDistribution(values []Ttick, ceiling Ttick) *Distribution {
	if len(values) == 0 {
		return nil
	}
	hist := hdrhistogram.New(1, max(int64(ceiling), 1), 3)
	floats := make([]float64, len(values))
	for i, v := range values {
		// ceiling is the makespan, nothing in a valid run can exceed it
		_ = hist.RecordValue(int64(v))
		floats[i] = float64(v)
	}
	d := &Distribution{
		Min:  hist.Min(),
		Max:  hist.Max(),
		Mean: stat.Mean(floats, nil),
		P50:  hist.ValueAtQuantile(50),
		P90:  hist.ValueAtQuantile(90),
		P99:  hist.ValueAtQuantile(99),
	}
	if len(floats) > 1 {
		d.StdDev = stat.StdDev(floats, nil)
	}
	return d
}

// BuildReport snapshots a simulated scheduler. Calling it before Simulate
// yields a report of all-unscheduled tasks, which is never useful but safe.
func BuildReport(s *Scheduler) *Report {
	r := &Report{
		Makespan:          int(s.Makespan()),
		TaskCount:         len(s.tasks),
		VMCount:           len(s.vms),
		AvgWaitingTime:    s.AvgWaitingTime(),
		AvgTurnaroundTime: s.AvgTurnaroundTime(),
		AvgUtilization:    s.AvgUtilization(),
		Tasks:             make([]TaskRecord, 0, len(s.tasks)),
		VMs:               make([]VMRecord, 0, len(s.vms)),
	}

	waits := make([]Ttick, 0, len(s.tasks))
	tats := make([]Ttick, 0, len(s.tasks))
	for _, t := range s.tasks {
		start, _ := t.Start()
		completion, _ := t.Completion()
		vmID, _ := t.VMID()
		r.Tasks = append(r.Tasks, TaskRecord{
			ID:             t.ID(),
			ArrivalTime:    int(t.Arrival()),
			BurstTime:      int(t.Burst()),
			StartTime:      int(start),
			CompletionTime: int(completion),
			VM:             vmID,
			WaitingTime:    int(t.WaitingTime()),
			TurnaroundTime: int(t.TurnaroundTime()),
		})
		waits = append(waits, t.WaitingTime())
		tats = append(tats, t.TurnaroundTime())
	}

	for _, vm := range s.vms {
		ids := make([]string, 0, len(vm.history))
		for _, t := range vm.history {
			ids = append(ids, t.ID())
		}
		r.VMs = append(r.VMs, VMRecord{
			ID:            vm.ID(),
			AvailableTime: int(vm.AvailableTime()),
			TotalBusyTime: int(vm.TotalBusyTime()),
			Tasks:         ids,
			Utilization:   vm.Utilization(s.Makespan()),
		})
	}

	r.WaitingTimes = newDistribution(waits, s.Makespan())
	r.TurnaroundTimes = newDistribution(tats, s.Makespan())
	return r
}

// WriteFile dumps the report as indented json, for charting frontends.
func (r *Report) WriteFile(path string) error {
	bs, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
