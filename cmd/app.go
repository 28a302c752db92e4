package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/arca-booking/internal"
	"github.com/iksnae/arca-booking/internal/prompt"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies the persistent flags on top
func loadConfig() (*internal.Config, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	internal.LogDebug("Using API at %s", cfg.BaseURL)
	return cfg, nil
}

func newClient(cfg *internal.Config) *internal.Client {
	return internal.NewClient(internal.NewHTTPTransport(cfg.BaseURL, cfg.Timeout))
}

// login authenticates a client for the non-interactive commands. Missing
// credentials are asked for on stderr so stdout stays clean for output.
func login(ctx context.Context, cmd *cobra.Command, cfg *internal.Config, username string) (*internal.Client, error) {
	if username == "" {
		username = cfg.Username
	}
	password := cfg.Password

	if username == "" || password == "" {
		p, err := prompt.New(cfg.Prompt, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		if username == "" {
			if username, err = p.Input("Enter your email: "); err != nil {
				return nil, err
			}
		}
		if username == "" {
			return nil, &internal.ValidationError{Field: "username", Reason: "empty"}
		}
		if password == "" {
			if password, err = p.Password("Enter your password: "); err != nil {
				return nil, err
			}
		}
		if password == "" {
			return nil, &internal.ValidationError{Field: "password", Reason: "empty"}
		}
	}

	client := newClient(cfg)
	var session *internal.Session
	err := internal.ShowProgress(ctx, fmt.Sprintf("Logging in as %s", username), func() error {
		session = client.Login(ctx, username, password)
		if !session.Authenticated() {
			return &internal.AuthenticationError{Username: username}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	internal.LogDebug("Logged in as user %s", session.UserID)
	return client, nil
}
