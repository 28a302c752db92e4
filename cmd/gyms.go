package cmd

import (
	"github.com/iksnae/arca-booking/internal"
	"github.com/spf13/cobra"
)

var gymsUsername string

var gymsCmd = &cobra.Command{
	Use:   "gyms",
	Short: "List the gyms and their IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := login(cmd.Context(), cmd, cfg, gymsUsername)
		if err != nil {
			return err
		}

		var gyms []internal.Gym
		err = internal.ShowProgress(cmd.Context(), "Fetching gyms", func() error {
			var fetchErr error
			gyms, fetchErr = client.GetGyms(cmd.Context())
			return fetchErr
		})
		if err != nil {
			return err
		}
		internal.PrintGyms(cmd.OutOrStdout(), gyms)
		return nil
	},
}

func init() {
	gymsCmd.Flags().StringVar(&gymsUsername, "username", "", "Account email")
	rootCmd.AddCommand(gymsCmd)
}
