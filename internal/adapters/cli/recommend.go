package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/application/advisor/queries"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

// NewRecommendCommand creates the recommend command
func NewRecommendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [crops...]",
		Short: "Rank planting opportunities",
		Long: `Rank crops by planting opportunity: underfilled markets first.
Without arguments every known and reported crop is ranked.

Examples:
  agromap recommend
  agromap recommend wheat cotton potato`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			cropTypes := make([]crop.CropType, 0, len(args))
			for _, arg := range args {
				cropTypes = append(cropTypes, crop.ParseCropType(arg))
			}

			response, err := env.mediator.Send(env.commandContext(), &queries.RankOpportunitiesQuery{CropTypes: cropTypes})
			if err != nil {
				return fmt.Errorf("failed to rank opportunities: %w", err)
			}

			ranking, ok := response.(*supply.OpportunityRanking)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			if len(ranking.Recommendations) == 0 {
				fmt.Println("No rankable crops (check capacity and price configuration)")
				printCropFailures(ranking.Failures)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tCROP\tOPPORTUNITY\tVERDICT\tWHY")
			for i, rec := range ranking.Recommendations {
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\t%s\n",
					i+1, rec.CropType, rec.OpportunityScore, rec.Recommendation, rec.Reasoning)
			}
			w.Flush()

			printCropFailures(ranking.Failures)
			return nil
		},
	}

	return cmd
}
