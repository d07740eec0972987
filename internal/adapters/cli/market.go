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

// NewMarketCommand creates the market command with subcommands
func NewMarketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Analyze market saturation per crop",
		Long: `Compute supply scores, saturation levels and market recommendations
from the current report snapshot.

Examples:
  agromap market analyze
  agromap market analyze wheat cotton`,
	}

	cmd.AddCommand(newMarketAnalyzeCommand())

	return cmd
}

func newMarketAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [crops...]",
		Short: "Run the market analysis",
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

			response, err := env.mediator.Send(env.commandContext(), &queries.AnalyzeMarketsQuery{CropTypes: cropTypes})
			if err != nil {
				return fmt.Errorf("failed to analyze markets: %w", err)
			}

			report, ok := response.(*supply.MarketReport)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			printMarketReport(report)
			return nil
		},
	}

	return cmd
}

func printMarketReport(report *supply.MarketReport) {
	if len(report.Analyses) == 0 && len(report.Failures) == 0 {
		fmt.Println("Nothing to analyze")
		return
	}

	if len(report.Analyses) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CROP\tAREA (HA)\tFARMS\tPRICE (UZS/KG)\tTREND\tSCORE\tSATURATION\tRISK\tVERDICT")
		for _, a := range report.Analyses {
			fmt.Fprintf(w, "%s\t%.1f\t%d\t%.0f\t%s\t%.1f\t%s\t%s\t%s\n",
				a.CropType, a.TotalPlantedArea, a.NumberOfFarms, a.CurrentPrice,
				a.PriceTrend, a.SupplyScore, a.SaturationLevel, a.RiskAssessment,
				a.Recommendation)
		}
		w.Flush()
	}

	printCropFailures(report.Failures)
}

func printCropFailures(failures []supply.CropFailure) {
	if len(failures) == 0 {
		return
	}

	fmt.Println()
	for _, failure := range failures {
		fmt.Printf("skipped %s: %v\n", failure.CropType, failure.Err)
	}
}
