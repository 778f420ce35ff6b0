package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vmsched"
	"vmsched/scenario"
)

var (
	scenarioPath string
	numVMs       int
	randomTasks  int
	seed         int64
	outPath      string
	quiet        bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one FCFS simulation and print the schedule and metrics",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "yaml scenario file (default: built-in sample batch)")
	runCmd.Flags().IntVar(&numVMs, "vms", 0, "override the scenario's vm count")
	runCmd.Flags().IntVar(&randomTasks, "random", 0, "generate this many random tasks instead of a scenario")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "seed for --random")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the json report to this file")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the metrics block")
	rootCmd.AddCommand(runCmd)
}

func buildLogger() *zap.SugaredLogger {
	if quiet {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func loadConfig() (*scenario.Config, error) {
	var cfg *scenario.Config
	switch {
	case randomTasks > 0:
		vms := numVMs
		if vms == 0 {
			vms = 3
		}
		cfg = scenario.NewLoadGen(seed).Generate(randomTasks, vms)
	case scenarioPath != "":
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = scenario.Sample()
	}
	if numVMs > 0 {
		cfg.VMs = nil
		cfg.NumVMs = numVMs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	log := buildLogger()
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tasks, vms := cfg.Build()
	log.Infow("scenario ready", "name", cfg.Name, "tasks", len(tasks), "vms", len(vms))

	sched := vmsched.NewScheduler(tasks, vms)
	if err := sched.Simulate(); err != nil {
		return fmt.Errorf("simulate %q: %w", cfg.Name, err)
	}
	log.Infow("simulation done", "makespan", int(sched.Makespan()))

	report := vmsched.BuildReport(sched)
	if !quiet {
		printSchedule(report)
		printTimeline(report)
	}
	printMetrics(report)

	if outPath != "" {
		if err := report.WriteFile(outPath); err != nil {
			return err
		}
		log.Infow("report written", "path", outPath)
	}
	return nil
}

func printSchedule(r *vmsched.Report) {
	fmt.Println("\nTask execution order (FCFS):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tARRIVAL\tBURST\tSTART\tEND\tVM\tWAIT\tTURNAROUND")
	for _, t := range r.Tasks {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%d\t%d\n",
			t.ID, t.ArrivalTime, t.BurstTime, t.StartTime, t.CompletionTime,
			t.VM, t.WaitingTime, t.TurnaroundTime)
	}
	w.Flush()
}

// printTimeline renders a per-VM text timeline of the schedule.
func printTimeline(r *vmsched.Report) {
	fmt.Println("\nTimeline:")
	byVM := make(map[string][]vmsched.TaskRecord, len(r.VMs))
	for _, t := range r.Tasks {
		byVM[t.VM] = append(byVM[t.VM], t)
	}
	for _, vm := range r.VMs {
		segs := make([]string, 0, len(byVM[vm.ID]))
		for _, t := range byVM[vm.ID] {
			segs = append(segs, fmt.Sprintf("%s[%d-%d]", t.ID, t.StartTime, t.CompletionTime))
		}
		if len(segs) == 0 {
			segs = append(segs, "idle")
		}
		fmt.Printf("  %s | %s\n", vm.ID, strings.Join(segs, " "))
	}
}

func printMetrics(r *vmsched.Report) {
	fmt.Printf("\nMakespan: %d time units\n", r.Makespan)
	for _, vm := range r.VMs {
		fmt.Printf("  %s utilization: %.2f%% (busy %d/%d)\n", vm.ID, vm.Utilization, vm.TotalBusyTime, r.Makespan)
	}
	fmt.Printf("Average waiting time: %.2f\n", r.AvgWaitingTime)
	fmt.Printf("Average turnaround time: %.2f\n", r.AvgTurnaroundTime)
	fmt.Printf("Average VM utilization: %.2f%%\n", r.AvgUtilization)
}
