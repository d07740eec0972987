package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/application/advisor/commands"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// NewReportCommand creates the report command with subcommands
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Submit and inspect farmer crop reports",
		Long: `Manage farmer planting reports, the raw input to every analysis.

Examples:
  agromap report submit --crop wheat --area 12.5 --lat 41.31 --lon 69.28
  agromap report submit --crop cotton --area 40 --lat 40.1 --lon 67.8 --planting-date 2026-04-10
  agromap report list --crop wheat
  agromap report count --crop potato`,
	}

	cmd.AddCommand(newReportSubmitCommand())
	cmd.AddCommand(newReportListCommand())
	cmd.AddCommand(newReportCountCommand())

	return cmd
}

func newReportSubmitCommand() *cobra.Command {
	var (
		cropName     string
		area         float64
		latitude     float64
		longitude    float64
		plantingDate string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Record a new crop report",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			var date *time.Time
			if plantingDate != "" {
				parsed, err := time.Parse("2006-01-02", plantingDate)
				if err != nil {
					return fmt.Errorf("invalid --planting-date (want YYYY-MM-DD): %w", err)
				}
				date = &parsed
			}

			response, err := env.mediator.Send(env.commandContext(), &commands.SubmitCropReportCommand{
				CropType:     cropName,
				AreaHectares: area,
				Latitude:     latitude,
				Longitude:    longitude,
				PlantingDate: date,
			})
			if err != nil {
				return fmt.Errorf("failed to submit report: %w", err)
			}

			result, ok := response.(*commands.SubmitCropReportResult)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			report := result.Report
			fmt.Printf("Report %s recorded: %s, %.2f ha at (%.4f, %.4f)\n",
				report.ID(), report.CropType(), report.AreaHectares(),
				report.Latitude(), report.Longitude())
			return nil
		},
	}

	cmd.Flags().StringVar(&cropName, "crop", "", "Crop type (required)")
	cmd.Flags().Float64Var(&area, "area", 0, "Planted area in hectares (required)")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "Field latitude (required)")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "Field longitude (required)")
	cmd.Flags().StringVar(&plantingDate, "planting-date", "", "Planting date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("crop")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func newReportListCommand() *cobra.Command {
	var (
		cropName string
		sinceRaw string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored crop reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := env.commandContext()

			var reports []*crop.CropReport
			switch {
			case sinceRaw != "":
				cutoff, err := time.Parse("2006-01-02", sinceRaw)
				if err != nil {
					return fmt.Errorf("invalid --since (want YYYY-MM-DD): %w", err)
				}
				reports, err = env.reports.FindSince(ctx, cutoff)
				if err != nil {
					return fmt.Errorf("failed to list reports: %w", err)
				}
			case cropName != "":
				reports, err = env.reports.FindByCropType(ctx, crop.ParseCropType(cropName))
				if err != nil {
					return fmt.Errorf("failed to list reports: %w", err)
				}
			default:
				reports, err = env.reports.FindAll(ctx)
				if err != nil {
					return fmt.Errorf("failed to list reports: %w", err)
				}
			}

			if len(reports) == 0 {
				fmt.Println("No reports found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCROP\tAREA (HA)\tLOCATION\tPLANTED\tREPORTED")
			for _, report := range reports {
				planted := "-"
				if d := report.PlantingDate(); d != nil {
					planted = d.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.4f, %.4f\t%s\t%s\n",
					report.ID(), report.CropType(), report.AreaHectares(),
					report.Latitude(), report.Longitude(), planted,
					report.CreatedAt().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&cropName, "crop", "", "Filter by crop type")
	cmd.Flags().StringVar(&sinceRaw, "since", "", "Only reports on or after this date, YYYY-MM-DD")

	return cmd
}

func newReportCountCommand() *cobra.Command {
	var cropName string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count reports for a crop type",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			cropType := crop.ParseCropType(cropName)
			count, err := env.reports.CountByCropType(env.commandContext(), cropType)
			if err != nil {
				return fmt.Errorf("failed to count reports: %w", err)
			}

			fmt.Printf("%d report(s) for %s\n", count, cropType)
			return nil
		},
	}

	cmd.Flags().StringVar(&cropName, "crop", "", "Crop type (required)")
	_ = cmd.MarkFlagRequired("crop")

	return cmd
}
