package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/arca-booking/internal"
	"github.com/iksnae/arca-booking/internal/export"
	"github.com/spf13/cobra"
)

var (
	eventsGym      int
	eventsDate     string
	eventsFormat   string
	eventsOutput   string
	eventsUsername string
)

// eventsCmd lists bookable events without the interactive flow
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List bookable events for a gym and date",
	Long: `List the bookable events of one gym on one date, in text, json, jsonl,
yaml or md format. Dates may be YYYY-MM-DD or MM-DD; the latter is expanded
with the configured default year.

Use 'arca-booking gyms' to see gym IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if eventsGym <= 0 {
			return &internal.ValidationError{Field: "gym", Reason: "--gym is required"}
		}

		exporter, err := export.NewExporter(eventsFormat)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		day, err := internal.NormalizeDate(eventsDate, cfg.DefaultYear)
		if err != nil {
			return err
		}

		client, err := login(cmd.Context(), cmd, cfg, eventsUsername)
		if err != nil {
			return err
		}

		var events []internal.Event
		err = internal.ShowProgress(cmd.Context(), fmt.Sprintf("Fetching events for gym %d on %s", eventsGym, day), func() error {
			var fetchErr error
			events, fetchErr = client.GetEvents(cmd.Context(), day, eventsGym)
			return fetchErr
		})
		if err != nil {
			return err
		}

		listing := &export.Listing{
			GymID:  eventsGym,
			Date:   day,
			Events: internal.FormatEvents(events, internal.LocalClock{}),
		}
		internal.LogDebug("%d of %d events are bookable", len(listing.Events), len(events))

		if eventsOutput == "" {
			return exporter.Export(listing, cmd.OutOrStdout())
		}
		if err := writeListing(exporter, listing, eventsOutput); err != nil {
			return err
		}
		internal.PrintSuccess(fmt.Sprintf("Exported %d event(s) to %s", len(listing.Events), eventsOutput))
		return nil
	},
}

// writeListing exports to path, creating parent directories as needed
func writeListing(exporter export.Exporter, listing *export.Listing, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := exporter.Export(listing, file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to export events: %w", err)
	}
	if err := file.Close(); err != nil {
		internal.LogWarn("Failed to close file %s: %v", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntVar(&eventsGym, "gym", 0, "Gym ID")
	eventsCmd.Flags().StringVar(&eventsDate, "date", "", "Date as YYYY-MM-DD or MM-DD")
	eventsCmd.Flags().StringVarP(&eventsFormat, "format", "f", "text", "Output format (text, json, jsonl, yaml, md)")
	eventsCmd.Flags().StringVarP(&eventsOutput, "output", "o", "", "Write to this file instead of stdout")
	eventsCmd.Flags().StringVar(&eventsUsername, "username", "", "Account email")
}
