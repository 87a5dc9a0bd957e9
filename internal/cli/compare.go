package cli

import (
	"fmt"
	"os"

	"github.com/me/cpusched/internal/engine"
	"github.com/me/cpusched/internal/render"
	"github.com/me/cpusched/pkg/model"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var quantum int
	var full bool

	cmd := &cobra.Command{
		Use:   "compare [scenario.yaml]",
		Short: "Run every policy over one process set",
		Long: `Simulate the scenario under all five policies and print a summary table.
With --full, the complete per-policy output is printed as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args)
			if err != nil {
				return err
			}

			q := quantum
			if q == 0 {
				q = sc.Quantum
			}
			if q <= 0 {
				return fmt.Errorf("round robin requires a positive quantum (use --quantum)")
			}

			var results []*model.SimulationResult
			for _, policy := range model.AllPolicies() {
				specs := model.NormalizeForPolicy(sc.Processes, policy)
				res, err := engine.Simulate(specs, policy, q)
				if err != nil {
					return fmt.Errorf("simulate %s: %w", policy, err)
				}
				results = append(results, res)
			}

			if full {
				for _, res := range results {
					render.WriteResult(os.Stdout, res)
					fmt.Println()
				}
			}
			render.WriteComparison(os.Stdout, results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum")
	cmd.Flags().BoolVar(&full, "full", false, "Print full per-policy results before the summary")

	return cmd
}
