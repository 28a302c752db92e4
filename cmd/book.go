package cmd

import (
	"fmt"

	"github.com/iksnae/arca-booking/internal"
	"github.com/iksnae/arca-booking/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	bookUsername    string
	bookSkipSummary bool
	bookPrompt      string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Log in and book a class (default)",
	Long: `Walk through the booking flow: log in, show the account summary, pick a
gym, enter a date (YYYY-MM-DD, or MM-DD for the configured year), pick a
bookable class and book it.

Leaving a question empty stops the run without booking anything.`,
	RunE: runBook,
}

func addBookFlags(c *cobra.Command) {
	c.Flags().StringVar(&bookUsername, "username", "", "Account email (skips the email prompt)")
	c.Flags().BoolVar(&bookSkipSummary, "skip-summary", false, "Do not show the account summary after login")
	c.Flags().StringVar(&bookPrompt, "prompt", "", "Prompt style: plain or tui (default from config)")
}

func runBook(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	kind := cfg.Prompt
	if bookPrompt != "" {
		kind = bookPrompt
	}
	out := cmd.OutOrStdout()
	prompter, err := prompt.New(kind, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	username := bookUsername
	if username == "" {
		username = cfg.Username
	}

	wf := internal.NewWorkflow(newClient(cfg), prompter, out, internal.WorkflowOptions{
		Username:    username,
		Password:    cfg.Password,
		Year:        cfg.DefaultYear,
		SkipSummary: bookSkipSummary,
	})
	outcome, err := wf.Run(cmd.Context())
	if err != nil {
		internal.LogError("Booking workflow failed: %v", err)
		return err
	}

	switch outcome.State {
	case internal.StateBooked:
		internal.LogInfo("Booked event %d at gym %d on %s", outcome.EventID, outcome.GymID, outcome.Date)
		return nil
	case internal.StateBookingFailed:
		return fmt.Errorf("booking failed: %w", outcome.Err)
	default:
		return fmt.Errorf("stopped at %s: %w", outcome.FailedAt, outcome.Err)
	}
}

func init() {
	addBookFlags(bookCmd)
	rootCmd.AddCommand(bookCmd)
}
