package cmd

import (
	"github.com/iksnae/arca-booking/internal"
	"github.com/spf13/cobra"
)

var summaryUsername string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the account summary",
	Long: `Log in and print the account summary: announcement, unread invitations,
badges, unread push notifications, friend requests, friendships, bookings,
the recent activity feed and the gym catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := login(cmd.Context(), cmd, cfg, summaryUsername)
		if err != nil {
			return err
		}
		return internal.NewReporter(client, cmd.OutOrStdout()).Run(cmd.Context())
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryUsername, "username", "", "Account email")
	rootCmd.AddCommand(summaryCmd)
}
