package cli

import (
	"fmt"
	"os"

	"github.com/me/cpusched/pkg/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the supported scheduling policies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Policy", "Preemptive", "Needs Quantum"})
			for _, p := range model.AllPolicies() {
				table.Append([]string{
					p.String(),
					fmt.Sprint(p.Preemptive()),
					fmt.Sprint(p.NeedsQuantum()),
				})
			}
			table.Render()
		},
	}
}
