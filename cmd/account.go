package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/iksnae/arca-booking/internal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var accountUsername string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show account settings, outstanding debt and card status",
	Long:  `Log in and print the settings, pay-debt and authorize-card records as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := login(cmd.Context(), cmd, cfg, accountUsername)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		var settings, debt, card internal.Record
		steps := []internal.ProgressStep{
			{Message: "Fetching settings", Fn: func() (err error) {
				settings, err = client.GetSettings(ctx)
				return err
			}},
			{Message: "Fetching pay debt", Fn: func() (err error) {
				debt, err = client.GetPayDebt(ctx)
				return err
			}},
			{Message: "Fetching card authorization", Fn: func() (err error) {
				card, err = client.GetAuthorizeCard(ctx)
				return err
			}},
		}
		if err := internal.ShowProgressWithSteps(ctx, steps); err != nil {
			return err
		}

		doc := yaml.Node{Kind: yaml.MappingNode}
		for _, section := range []struct {
			name   string
			record internal.Record
		}{
			{"settings", settings},
			{"pay_debt", debt},
			{"authorize_card", card},
		} {
			value, err := recordNode(section.record)
			if err != nil {
				return fmt.Errorf("%s: %w", section.name, err)
			}
			doc.Content = append(doc.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: section.name},
				value)
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(&doc)
	},
}

// recordNode turns a raw service record into a YAML node, keeping the
// service's values but sorting keys
func recordNode(record internal.Record) (*yaml.Node, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var plain map[string]interface{}
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := node.Encode(plain); err != nil {
		return nil, err
	}
	return &node, nil
}

func init() {
	accountCmd.Flags().StringVar(&accountUsername, "username", "", "Account email")
	rootCmd.AddCommand(accountCmd)
}
