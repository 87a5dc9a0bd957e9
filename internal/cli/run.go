package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/me/cpusched/internal/engine"
	"github.com/me/cpusched/internal/render"
	"github.com/me/cpusched/internal/scenario"
	"github.com/me/cpusched/pkg/model"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var policyFlag string
	var quantum int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Run one scheduling simulation",
		Long: `Simulate a scenario file (or the built-in sample set) under one policy
and print the gantt chart, schedule table, and aggregate metrics.

The --policy and --quantum flags override the scenario file values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args)
			if err != nil {
				return err
			}

			policy, quantum, err := resolvePolicy(sc, policyFlag, quantum)
			if err != nil {
				return err
			}

			logger.Debug("running simulation", "scenario", sc.Name, "policy", policy, "processes", len(sc.Processes))

			specs := model.NormalizeForPolicy(sc.Processes, policy)
			res, err := engine.Simulate(specs, policy, quantum)
			if err != nil {
				return fmt.Errorf("simulate: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			render.WriteResult(os.Stdout, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&policyFlag, "policy", "p", "", "Scheduling policy (fcfs, sjf, srt, priority, rr)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the raw simulation result as JSON")

	return cmd
}

// loadScenario reads the scenario file named in args, or falls back to the
// built-in sample set.
func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.Sample(), nil
	}
	return scenario.Load(args[0])
}

// resolvePolicy merges flag and scenario-file settings. Flags win, then the
// file values, then FCFS.
func resolvePolicy(sc *scenario.Scenario, policyFlag string, quantumFlag int) (model.Policy, int, error) {
	name := policyFlag
	if name == "" {
		name = sc.Policy
	}
	if name == "" {
		name = model.PolicyFCFS.String()
	}
	policy, err := model.ParsePolicy(name)
	if err != nil {
		return "", 0, err
	}

	quantum := quantumFlag
	if quantum == 0 {
		quantum = sc.Quantum
	}
	if policy.NeedsQuantum() && quantum <= 0 {
		return "", 0, fmt.Errorf("policy %s requires a positive quantum (use --quantum)", policy)
	}
	return policy, quantum, nil
}
