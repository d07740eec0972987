package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/application/advisor/queries"
)

// NewDashboardCommand creates the dashboard command
func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the full analytics dashboard",
		Long: `Show the descriptive snapshot statistics together with the market
analysis: totals, per-crop distribution, diversity and concentration
indices, efficiency score and the per-crop verdicts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			response, err := env.mediator.Send(env.commandContext(), &queries.DashboardQuery{})
			if err != nil {
				return fmt.Errorf("failed to build dashboard: %w", err)
			}

			result, ok := response.(*queries.DashboardResult)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			fmt.Printf("Reports: %d   Total area: %.1f ha   Avg field: %.2f ha\n",
				result.Summary.TotalReports, result.Summary.TotalArea, result.Summary.AverageFieldSize)
			fmt.Printf("Diversity (Shannon): %.3f   Concentration (Herfindahl): %.3f   Efficiency: %.1f\n\n",
				result.DiversityIndex, result.Concentration, result.EfficiencyScore)

			if len(result.Summary.Distribution) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "CROP\tREPORTS\tAREA (HA)")
				for _, dist := range result.Summary.Distribution {
					fmt.Fprintf(w, "%s\t%d\t%.1f\n", dist.CropType, dist.Count, dist.TotalArea)
				}
				w.Flush()
				fmt.Println()
			}

			printMarketReport(&result.Market)
			return nil
		},
	}

	return cmd
}
