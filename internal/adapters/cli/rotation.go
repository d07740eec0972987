package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/application/advisor/queries"
)

// NewRotationCommand creates the rotation command
func NewRotationCommand() *cobra.Command {
	var (
		previousCrop string
		asOfRaw      string
	)

	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Suggest rotation crops for a field",
		Long: `Suggest what to plant after the previous crop, with sowing windows.
Without --previous every known crop is listed.

Examples:
  agromap rotation --previous wheat
  agromap rotation --previous cotton --date 2026-09-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			var asOf time.Time
			if asOfRaw != "" {
				asOf, err = time.Parse("2006-01-02", asOfRaw)
				if err != nil {
					return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
				}
			}

			response, err := env.mediator.Send(env.commandContext(), &queries.RotationAdviceQuery{
				PreviousCrop: previousCrop,
				AsOf:         asOf,
			})
			if err != nil {
				return fmt.Errorf("failed to compute rotation advice: %w", err)
			}

			result, ok := response.(*queries.RotationAdviceResult)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			if len(result.Candidates) == 0 {
				fmt.Println("No rotation candidates")
				return nil
			}

			if previousCrop != "" {
				fmt.Printf("After %s:\n", result.PreviousCrop)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CROP\tSOWING WINDOW\tOPEN NOW")
			for _, candidate := range result.Candidates {
				window := "-"
				open := "-"
				if candidate.Window != nil {
					window = fmt.Sprintf("%s - %s",
						candidate.Window.StartMonth, candidate.Window.EndMonth)
					if candidate.InWindowNow {
						open = "yes"
					} else {
						open = "no"
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", candidate.CropType, window, open)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&previousCrop, "previous", "", "Crop previously grown on the field")
	cmd.Flags().StringVar(&asOfRaw, "date", "", "Reference date for window checks, YYYY-MM-DD (default today)")

	return cmd
}
