package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/responses"
	"os-scheduler-simulator/internal/schedulers"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		algorithm string
		quantum   int
		levels    []int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "run <workload.yaml>",
		Short: "Schedule the processes of a workload file and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workload, err := loadWorkload(args[0])
			if err != nil {
				return err
			}

			registry := core.NewProcessRegistry()
			for _, request := range workload.Processes {
				process, err := request.Process(opts.config.MaxBurst)
				if err != nil {
					return err
				}
				if err := registry.AddProcess(process); err != nil {
					return err
				}
			}

			name := opts.config.DefaultAlgorithm
			if workload.Algorithm != "" {
				name = workload.Algorithm
			}
			if cmd.Flags().Changed("algorithm") {
				name = algorithm
			}
			algo, err := requests.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			timeQuantum := opts.config.RoundRobinTimeQuantum
			if workload.TimeQuantum != 0 {
				timeQuantum = workload.TimeQuantum
			}
			if cmd.Flags().Changed("quantum") {
				timeQuantum = quantum
			}

			levelsTimeQuantum := opts.config.MultilevelFeedbackQueueLevelsTimeQuantum
			if len(workload.LevelsTimeQuantum) > 0 {
				levelsTimeQuantum = workload.LevelsTimeQuantum
			}
			if cmd.Flags().Changed("levels") {
				levelsTimeQuantum = levels
			}

			response, err := schedulers.NewDispatcher(opts.logger).Run(registry, requests.RunScheduleRequest{
				Algorithm:         algo,
				TimeQuantum:       timeQuantum,
				LevelsTimeQuantum: levelsTimeQuantum,
			})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(response)
			}
			return printResponse(cmd.OutOrStdout(), response)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "rr", "Scheduling algorithm (rr, priority, fcfs, sjf, mlfq)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 2, "Round robin time quantum")
	cmd.Flags().IntSliceVar(&levels, "levels", []int{5, 8}, "Multilevel feedback queue round robin quanta, e.g. 2,4")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full response as JSON")
	return cmd
}

func loadWorkload(path string) (*requests.Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}
	var workload requests.Workload
	if err := yaml.Unmarshal(data, &workload); err != nil {
		return nil, fmt.Errorf("parse workload %s: %w", path, err)
	}
	return &workload, nil
}

func printResponse(w io.Writer, response responses.ScheduleResponse) error {
	fmt.Fprintf(w, "=== %s ===\n", response.Algorithm)
	for _, line := range response.Log {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tNAME\tBURST\tTURNAROUND\tWAITING")
	for _, d := range response.Details {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", d.ProcessId, d.Name, d.TotalBurst, d.TurnAroundTime, d.WaitingTime)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\naverage waiting: %.2f  average turnaround: %.2f  total time: %d\n",
		response.AverageWaitingTime, response.AverageTurnAroundTime, response.TotalTime)
	return nil
}
