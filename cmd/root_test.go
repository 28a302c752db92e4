package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iksnae/arca-booking/internal"
	"github.com/iksnae/arca-booking/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of the command tree to its default so
// tests sharing rootCmd do not see each other's values
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// isolate clears credentials and points HOME at an empty directory
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", testutil.CreateTempDir(t))
	for _, name := range []string{internal.EnvBaseURL, internal.EnvUsername, internal.EnvPassword, internal.EnvPrompt} {
		t.Setenv(name, "")
	}
}

func withCredentials(t *testing.T) {
	t.Helper()
	t.Setenv(internal.EnvUsername, testutil.TestUsername)
	t.Setenv(internal.EnvPassword, testutil.TestPassword)
}

// executeCommand runs the root command with args and stdin, returning
// everything written to stdout and stderr
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "version flag",
			args: []string{"--version"},
			want: "dev",
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: "arca-booking",
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, err := executeCommand(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"book", "summary", "gyms", "events", "account", "healthcheck"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s command not found in root command", name)
		}
	}
}

func TestRootCommand_InvalidBaseURL(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "gyms", "--base-url", "not a url")
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("error = %v, want base_url validation failure", err)
	}
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "gyms", "--config", "/nonexistent/arca.yaml")
	if err == nil {
		t.Error("an explicit missing config file should fail")
	}
}
