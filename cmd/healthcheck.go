package cmd

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/arca-booking/internal"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that arca-booking can reach the Arca service",
	Long: `Check the health of arca-booking by verifying:
  • Configuration loading and validation
  • Reachability of the Arca API
  • Login with the configured credentials (ARCA_USERNAME / ARCA_PASSWORD)
  • Access to the gym catalog

This command is useful for debugging configuration and network issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctx := cmd.Context()
		say := func(a ...interface{}) { _, _ = fmt.Fprintln(out, a...) }

		say(sectionStyle.Render("🔍 Arca Booking Health Check"))
		say()

		// Step 1: Configuration
		say(infoStyle.Render("Step 1: Loading configuration..."))
		cfg, err := loadConfig()
		if err != nil {
			say(errorStyle.Render("❌ Configuration is invalid:"), err)
			return err
		}
		say(successStyle.Render("✅ Configuration loaded"))
		if healthcheckVerbose {
			_, _ = fmt.Fprintf(out, "   Base URL: %s\n", cfg.BaseURL)
			_, _ = fmt.Fprintf(out, "   Timeout: %s\n", cfg.Timeout)
			_, _ = fmt.Fprintf(out, "   Prompt: %s\n", cfg.Prompt)
		}
		say()

		// Step 2: Reachability. Any HTTP answer counts, the endpoint needs a token.
		say(infoStyle.Render("Step 2: Contacting the Arca API..."))
		transport := internal.NewHTTPTransport(cfg.BaseURL, cfg.Timeout)
		resp, err := transport.Do(ctx, &internal.Request{
			Method: http.MethodGet,
			Path:   internal.PathGyms,
			Header: http.Header{"User-Agent": {internal.UserAgent}},
		})
		if err != nil {
			say(errorStyle.Render("❌ Arca API unreachable:"), err)
			return fmt.Errorf("arca API unreachable: %w", err)
		}
		say(successStyle.Render("✅ Arca API answered"))
		if healthcheckVerbose {
			_, _ = fmt.Fprintf(out, "   Status: %d\n", resp.StatusCode)
		}
		say()

		// Step 3: Login
		say(infoStyle.Render("Step 3: Checking credentials..."))
		if cfg.Username == "" || cfg.Password == "" {
			internal.PrintWarning(out, "No credentials configured, skipping login")
			_, _ = fmt.Fprintf(out, "   Set %s and %s to test login\n", internal.EnvUsername, internal.EnvPassword)
			say()
			say(sectionStyle.Render("📊 Summary"))
			say(successStyle.Render("✅ Arca API reachable"))
			return nil
		}
		client := newClient(cfg)
		session := client.Login(ctx, cfg.Username, cfg.Password)
		if !session.Authenticated() {
			authErr := &internal.AuthenticationError{Username: cfg.Username}
			say(errorStyle.Render("❌ Login failed"))
			return authErr
		}
		say(successStyle.Render("✅ Logged in"))
		if healthcheckVerbose {
			_, _ = fmt.Fprintf(out, "   User: %s\n", session.UserID)
		}
		if session.PasswordUpdateRequired {
			internal.PrintWarning(out, "The service asks for a password update")
		}
		say()

		// Step 4: Gyms
		say(infoStyle.Render("Step 4: Fetching the gym catalog..."))
		gyms, err := client.GetGyms(ctx)
		if err != nil {
			say(errorStyle.Render("❌ Failed to fetch gyms:"), err)
			return err
		}
		say(successStyle.Render(fmt.Sprintf("✅ Found %d gym(s)", len(gyms))))
		say()

		say(sectionStyle.Render("📊 Summary"))
		say(successStyle.Render("✅ arca-booking is ready to book"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed diagnostic information")
}
