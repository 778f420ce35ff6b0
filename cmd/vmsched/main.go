package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "vmsched",
	Short: "FCFS scheduling simulator for cloud video rendering batches",
	Long: `vmsched simulates non-preemptive FCFS scheduling of a batch of video
rendering tasks across a pool of identical VMs and reports makespan,
waiting/turnaround times and per-VM utilization.`,
	Version:      version,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
