package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/iksnae/arca-booking/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	baseURL    string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arca-booking",
	Short: "Book classes at Arca gyms from the terminal",
	Long: `An interactive client for the Arca gym booking service.

Run without a subcommand to log in, see your account summary, pick a gym,
a date and a bookable class, and book it.

Features:
  • Guided booking with a plain or full-screen prompt
  • Account summary: announcement, invitations, notifications, friends, bookings
  • Non-interactive event listings (text, JSON, JSONL, YAML, Markdown)

Quick Start:
  arca-booking                              # Book a class
  arca-booking summary                      # Show the account summary
  arca-booking events --gym 7 --date 12-25  # List bookable classes

Credentials can be supplied with ARCA_USERNAME and ARCA_PASSWORD.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: runBook,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		internal.PrintError(os.Stderr, fmt.Sprintf("Error: %v", err))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.arca-booking/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Arca API base URL (overrides config and ARCA_BASE_URL)")
	addBookFlags(rootCmd)

	rootCmd.SilenceErrors = true
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
